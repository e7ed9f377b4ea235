package controllers

import (
	"errors"
	"net/http"
	"time"

	"dailydiet/middlewares"
	"dailydiet/models"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals   *services.MealService
	Users   *services.UserService
	Metrics *services.MetricsService
}

func NewMealController(meals *services.MealService, users *services.UserService, metrics *services.MetricsService) *MealController {
	return &MealController{Meals: meals, Users: users, Metrics: metrics}
}

type CreateMealInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Diet        *bool     `json:"diet" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

func (h *MealController) Create(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	meal, err := h.Meals.Create(c.Request.Context(), principal.ID,
		input.Name, input.Description, *input.Diet, input.Date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) List(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	if _, err := h.Users.FindByID(c.Request.Context(), principal.ID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	meals, err := h.Meals.ListByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, meals)
}

type UpdateMealInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Diet        *bool      `json:"diet"`
	Date        *time.Time `json:"date"`
}

func (h *MealController) Update(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	meal, err := h.loadOwnedMeal(c, principal.ID, "You are not authorized to update this meal")
	if err != nil {
		return
	}

	updated, err := h.Meals.Update(c.Request.Context(), meal.ID, services.MealUpdate{
		Name:        input.Name,
		Description: input.Description,
		Diet:        input.Diet,
		Date:        input.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, "Meal not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *MealController) Delete(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	meal, err := h.loadOwnedMeal(c, principal.ID, "You are not authorized to delete this meal")
	if err != nil {
		return
	}

	if err := h.Meals.Delete(c.Request.Context(), meal.ID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, "Meal not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MealController) GetMetrics(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	if _, err := h.Users.FindByID(c.Request.Context(), principal.ID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics, err := h.Metrics.Metrics(c.Request.Context(), principal.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// loadOwnedMeal enforces the ownership policy on mutating routes: the
// meal must exist and belong to the principal. On failure it writes the
// response and returns an error so the handler just returns.
func (h *MealController) loadOwnedMeal(c *gin.Context, ownerID, forbiddenMsg string) (*models.Meal, error) {
	if _, err := h.Users.FindByID(c.Request.Context(), ownerID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return nil, err
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return nil, err
	}

	m, err := h.Meals.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, "Meal not found")
			return nil, err
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return nil, err
	}

	if m.UserID != ownerID {
		abortWithError(c, http.StatusForbidden, forbiddenMsg)
		return nil, errors.New("forbidden")
	}

	return m, nil
}
