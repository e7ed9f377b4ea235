package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortWithError writes the shared error body shape used on every
// failure response.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      http.StatusText(status),
		"statusCode": status,
		"message":    message,
	})
}
