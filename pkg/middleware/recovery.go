package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into an uncoded error so ErrorHandler
// answers 500 {"error": "General error"}. It must be registered after
// ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		Abort(c, fmt.Errorf("panic recovered: %v", recovered))
	})
}
