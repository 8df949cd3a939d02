package http

import (
	"time"

	"videau/internal/entity"
	"videau/internal/usecase"
)

// RegisterRequest binds from JSON or from multipart/form-data, where an
// "avatar" file part may accompany the fields.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Avatar   string `json:"avatar" form:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" form:"name"`
	Username *string `json:"username" form:"username"`
	Password *string `json:"password" form:"password"`
	Avatar   *string `json:"avatar" form:"avatar"`
}

type CreateVideoRequest struct {
	URL         string     `json:"url" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Date        *time.Time `json:"date"`
}

// UpdateVideoRequest has no owner or comments field; those are not client editable.
type UpdateVideoRequest struct {
	URL         *string    `json:"url"`
	Title       *string    `json:"title"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type CreateCommentRequest struct {
	Text string     `json:"text" binding:"required"`
	Date *time.Time `json:"date"`
}

type UpdateCommentRequest struct {
	Text *string    `json:"text"`
	Date *time.Time `json:"date"`
}

func (r RegisterRequest) toInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:     r.Name,
		Username: r.Username,
		Password: r.Password,
		Avatar:   r.Avatar,
	}
}

func (r UpdateUserRequest) toInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:     r.Name,
		Username: r.Username,
		Password: r.Password,
		Avatar:   r.Avatar,
	}
}

func (r CreateVideoRequest) toInput() usecase.CreateVideoInput {
	return usecase.CreateVideoInput{
		URL:         r.URL,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

func (r UpdateVideoRequest) toChanges() entity.VideoChanges {
	return entity.VideoChanges{
		URL:         r.URL,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

func (r CreateCommentRequest) toInput() usecase.CreateCommentInput {
	return usecase.CreateCommentInput{Text: r.Text, Date: r.Date}
}

func (r UpdateCommentRequest) toChanges() entity.CommentChanges {
	return entity.CommentChanges{Text: r.Text, Date: r.Date}
}
