package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"expgrowth/internal/api/models"
)

// ErrorHandler middleware recovers panics into a JSON error envelope
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("ErrorHandler: recovered panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", msg))
	})
}
