package http

import (
	"net/http"

	"videau/internal/usecase"
	"videau/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

// GetComment godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        idComment path string true "Comment ID"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/get/{idComment} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentUseCase.GetComment(c.Request.Context(), c.Param("idComment"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// CreateComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Param        request body CreateCommentRequest true "Comment"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/create/{idVideo} [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), middleware.UserID(c), c.Param("idVideo"), req.toInput())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      Update an owned comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idComment path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "Fields to change"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/update/{idComment} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), c.Param("idComment"), req.toChanges())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete an owned comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo   path string true "Video ID"
// @Param        idComment path string true "Comment ID"
// @Success      200  {string}  string  "Succesfully deleted"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/delete/{idVideo}/{idComment} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.Param("idVideo"), c.Param("idComment")); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, "Succesfully deleted")
}
