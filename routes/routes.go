package routes

import (
	"dailydiet/config"
	"dailydiet/controllers"
	"dailydiet/middlewares"
	"dailydiet/services"
	"dailydiet/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers into a gin engine. All
// dependencies flow in through cfg and db; nothing is package-level.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	tokens := utils.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)

	authSvc := services.NewAuthService(db, tokens)
	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)
	metricsSvc := services.NewMetricsService(db)

	authCtl := controllers.NewAuthController(authSvc, int(cfg.JWT.TTL.Seconds()))
	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc, userSvc, metricsSvc)
	healthCtl := controllers.NewHealthController(db)

	r := gin.Default()

	r.GET("/healthz", healthCtl.Check)

	// Public routes
	r.POST("/users", authCtl.Register)
	r.POST("/sessions", authCtl.Login)

	// Protected user routes
	users := r.Group("/users")
	users.Use(middlewares.Authenticated(tokens))
	{
		users.GET("/me", userCtl.Me)
		users.PUT("/:id", userCtl.Update)
	}

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.Authenticated(tokens))
	{
		meals.POST("", mealCtl.Create)
		meals.GET("", mealCtl.List)
		meals.GET("/metrics", mealCtl.GetMetrics)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	return r
}
