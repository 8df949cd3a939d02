package http

import (
	"net/http"

	"videau/internal/usecase"
	"videau/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase}
}

// ListVideos godoc
// @Summary      List videos
// @Description  Every video with its owner populated
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.VideoWithAuthor
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoUseCase.ListVideos(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// ListByCategory godoc
// @Summary      List videos of a category
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        section path string true "Category"
// @Success      200  {array}   entity.VideoWithAuthor
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos/category/{section} [get]
func (h *VideoHandler) ListByCategory(c *gin.Context) {
	videos, err := h.videoUseCase.ListByCategory(c.Request.Context(), c.Param("section"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo godoc
// @Summary      Video detail
// @Description  The video with its owner and its comments, each with its author
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Success      200  {object}  entity.VideoDetail
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/detail/{idVideo} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.GetVideo(c.Request.Context(), c.Param("idVideo"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// CreateVideo godoc
// @Summary      Create a video
// @Description  The caller becomes the owner and the video is appended to their myVideos
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateVideoRequest true "Video"
// @Success      200  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/myvideos/create [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoUseCase.CreateVideo(c.Request.Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// ListMyVideos godoc
// @Summary      Videos created by the caller
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.VideoWithAuthor
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/myvideos/created [get]
func (h *VideoHandler) ListMyVideos(c *gin.Context) {
	videos, err := h.videoUseCase.ListMyVideos(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// ListFavourites godoc
// @Summary      Videos the caller marked as favourite
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.VideoWithAuthor
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/myvideos/favourite [get]
func (h *VideoHandler) ListFavourites(c *gin.Context) {
	videos, err := h.videoUseCase.ListFavourites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// UpdateVideo godoc
// @Summary      Update an owned video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Param        request body UpdateVideoRequest true "Fields to change"
// @Success      200  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/myvideos/update/{idVideo} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoUseCase.UpdateVideo(c.Request.Context(), c.Param("idVideo"), req.toChanges())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete an owned video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Success      200  {string}  string  "Deleted successfully"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/myvideos/delete/{idVideo} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.DeleteVideo(c.Request.Context(), middleware.UserID(c), c.Param("idVideo")); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, "Deleted successfully")
}

// AddFavourite godoc
// @Summary      Mark a video as favourite
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Success      200  {string}  string  "Added!"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos/favourite/{idVideo} [patch]
func (h *VideoHandler) AddFavourite(c *gin.Context) {
	if err := h.videoUseCase.AddFavourite(c.Request.Context(), middleware.UserID(c), c.Param("idVideo")); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, "Added!")
}

// RemoveFavourite godoc
// @Summary      Remove a video from favourites
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        idVideo path string true "Video ID"
// @Success      200  {string}  string  "Removed!"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos/myvideos/favourite/delete/{idVideo} [patch]
func (h *VideoHandler) RemoveFavourite(c *gin.Context) {
	if err := h.videoUseCase.RemoveFavourite(c.Request.Context(), middleware.UserID(c), c.Param("idVideo")); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, "Removed!")
}
