package http

import (
	"videau/internal/usecase"
	"videau/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// VideoOwnerGuard lets the request through only when the caller owns the
// video named by :idVideo. It must run after the auth middleware.
func VideoOwnerGuard(ownership usecase.OwnershipUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ownership.CheckVideoOwner(c.Request.Context(), c.Param("idVideo"), middleware.UserID(c)); err != nil {
			middleware.Abort(c, err)
			return
		}
		c.Next()
	}
}

// CommentOwnerGuard is VideoOwnerGuard for the comment named by :idComment.
func CommentOwnerGuard(ownership usecase.OwnershipUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ownership.CheckCommentOwner(c.Request.Context(), c.Param("idComment"), middleware.UserID(c)); err != nil {
			middleware.Abort(c, err)
			return
		}
		c.Next()
	}
}
