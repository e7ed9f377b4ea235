package controllers

import (
	"errors"
	"net/http"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc       *services.AuthService
	CookieTTL int // seconds
}

func NewAuthController(svc *services.AuthService, cookieTTL int) *AuthController {
	return &AuthController{Svc: svc, CookieTTL: cookieTTL}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Svc.Register(c.Request.Context(), input.Name, input.Email, input.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			abortWithError(c, http.StatusBadRequest, "E-mail already registered")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusCreated)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			abortWithError(c, http.StatusUnauthorized, "E-mail or password wrong")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.SetCookie(middlewares.CookieName, token, h.CookieTTL, "/", "", false, true)
	c.Status(http.StatusOK)
}
