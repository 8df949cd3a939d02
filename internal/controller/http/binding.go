package http

import (
	"videau/pkg/apperror"
	"videau/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// bind rejects malformed bodies before they reach a use case.
func bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		middleware.Abort(c, apperror.Wrap(apperror.KindValidation, err.Error(), err))
		return false
	}
	return true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.Abort(c, apperror.Wrap(apperror.KindValidation, err.Error(), err))
		return false
	}
	return true
}
