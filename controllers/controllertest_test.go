package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dailydiet/middlewares"
	"dailydiet/services"
	"dailydiet/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	tokens *utils.TokenService
}

// newTestEnv builds the protected routes on top of sqlmock-backed
// services, with a real auth guard.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	tokens := utils.NewTokenService("test-secret", time.Hour)
	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)
	metricsSvc := services.NewMetricsService(db)

	userCtl := NewUserController(userSvc)
	mealCtl := NewMealController(mealSvc, userSvc, metricsSvc)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	users := r.Group("/users")
	users.Use(middlewares.Authenticated(tokens))
	{
		users.GET("/me", userCtl.Me)
		users.PUT("/:id", userCtl.Update)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.Authenticated(tokens))
	{
		meals.POST("", mealCtl.Create)
		meals.GET("", mealCtl.List)
		meals.GET("/metrics", mealCtl.GetMetrics)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	return &testEnv{router: r, mock: mock, tokens: tokens}
}

// do performs an authenticated request as the given user.
func (e *testEnv) do(t *testing.T, userID, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	tok, err := e.tokens.Sign(userID)
	require.NoError(t, err)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middlewares.CookieName, Value: tok})

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

var userRows = []string{"id", "name", "email", "password", "created_at", "updated_at"}

var mealRows = []string{"id", "name", "description", "diet", "date", "user_id", "created_at", "updated_at"}
