package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"videau/internal/usecase"
	"videau/pkg/apperror"
	"videau/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

var avatarExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// avatarFile opens the optional "avatar" part of a multipart request. The
// returned closer is never nil.
func avatarFile(c *gin.Context) (*usecase.AvatarUpload, func(), error) {
	noop := func() {}

	file, err := c.FormFile("avatar")
	if err != nil {
		return nil, noop, nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !avatarExtensions[ext] {
		return nil, noop, apperror.New(apperror.KindValidation, "Invalid image format. Only jpg, jpeg, png, gif, webp are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return nil, noop, apperror.Wrap(apperror.KindValidation, "Failed to process file", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	upload := &usecase.AvatarUpload{Body: src, Filename: file.Filename, ContentType: contentType}
	return upload, func() { src.Close() }, nil
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user; an optional avatar file is uploaded to object storage
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	avatar, closeAvatar, err := avatarFile(c)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	defer closeAvatar()

	input := req.toInput()
	input.AvatarFile = avatar

	user, err := h.userUseCase.Register(c.Request.Context(), input)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary      Login
// @Description  Check credentials and return a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	token, err := h.userUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetUser godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/get [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update current user
// @Description  Only the fields present are changed; the password is rehashed when given
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/update [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	avatar, closeAvatar, err := avatarFile(c)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	defer closeAvatar()

	input := req.toInput()
	input.AvatarFile = avatar

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {string}  string  "User deleted"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/delete [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Request.Context(), middleware.UserID(c)); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, "User deleted")
}
