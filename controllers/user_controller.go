package controllers

import (
	"errors"
	"net/http"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (h *UserController) Me(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	user, err := h.Svc.FindByID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

type UpdateUserInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	NewPassword     *string `json:"newPassword"`
	CurrentPassword *string `json:"currentPassword"`
}

// Update modifies the caller's own profile. The path id must match the
// authenticated principal.
func (h *UserController) Update(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	if c.Param("id") != principal.ID {
		abortWithError(c, http.StatusForbidden, "You are not allowed to update this user")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.Svc.UpdateProfile(c.Request.Context(), principal.ID, services.ProfileUpdate{
		Name:            input.Name,
		Email:           input.Email,
		NewPassword:     input.NewPassword,
		CurrentPassword: input.CurrentPassword,
	})
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, services.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrCurrentPasswordRequired):
		abortWithError(c, http.StatusForbidden, "Current password is required")
	case errors.Is(err, services.ErrCurrentPasswordMismatch):
		abortWithError(c, http.StatusForbidden, "Current password does not match")
	default:
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
