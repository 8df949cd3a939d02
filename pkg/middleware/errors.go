package middleware

import (
	"videau/pkg/apperror"
	"videau/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Abort records err for ErrorHandler and stops the handler chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler is the only place error bodies are written. It must be
// registered before any handler that calls Abort.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Error("Some error happens on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

		status, message := apperror.Response(err)
		c.JSON(status, gin.H{"error": message})
	}
}

// NotFound answers routes nothing else matched.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		Abort(c, apperror.New(apperror.KindRouteNotFound, "Endpoint not found"))
	}
}
