package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"playtube/video-app/internal/repository"
	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoHandler holds the video service dependency plus the directory
// multipart uploads are staged in before the media host takes over.
type VideoHandler struct {
	videoService service.VideoService
	tempDir      string
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService service.VideoService, tempDir string) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		tempDir:      tempDir,
	}
}

// VideoListData is the catalog listing body. This endpoint predates
// the uniform envelope and serves this object flat, with no
// statusCode/message/success wrapper.
type VideoListData struct {
	TotalVideos int64       `json:"totalVideos"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int64       `json:"currentPage"`
	Videos      interface{} `json:"videos"`
}

// List handles GET /videos.
func (h *VideoHandler) List(c *gin.Context) {
	page, errPage := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, errLimit := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if errPage != nil || errLimit != nil || page <= 0 || limit <= 0 {
		c.Error(NewError(http.StatusBadRequest, "Invalid pagination parameters"))
		return
	}

	filter := repository.VideoListFilter{
		Page:    page,
		Limit:   limit,
		Query:   c.Query("query"),
		SortBy:  c.Query("sortBy"),
		SortAsc: c.Query("sortType") == "asc",
	}
	if raw := c.Query("userId"); raw != "" {
		owner, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.Error(NewError(http.StatusBadRequest, "Invalid userId"))
			return
		}
		filter.Owner = &owner
	}

	videos, total, err := h.videoService.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch videos"))
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, VideoListData{
		TotalVideos: total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Videos:      videos,
	})
}

// stageUpload copies one multipart file into the temp directory under
// a uuid name and returns the local path.
func (h *VideoHandler) stageUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	localPath := filepath.Join(h.tempDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// Publish handles POST /videos (multipart).
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.Error(NewError(http.StatusBadRequest, "Title and description are required"))
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		c.Error(NewError(http.StatusBadRequest, "Video file is required"))
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		c.Error(NewError(http.StatusBadRequest, "Thumbnail file is required"))
		return
	}

	videoPath, err := h.stageUpload(c, videoFile)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to store uploaded video"))
		return
	}
	thumbnailPath, err := h.stageUpload(c, thumbnailFile)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to store uploaded thumbnail"))
		return
	}

	video, err := h.videoService.Publish(c.Request.Context(), userID, title, description, videoPath, thumbnailPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoUploadFailed):
			c.Error(NewError(http.StatusBadRequest, "Video upload failed"))
		case errors.Is(err, service.ErrThumbnailUploadFailed):
			c.Error(NewError(http.StatusBadRequest, "Thumbnail upload failed"))
		default:
			c.Error(NewError(http.StatusInternalServerError, "Failed to publish video"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, video, "Video published successfully"))
}

// GetByID handles GET /videos/:videoId.
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoService.GetByID(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Video not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to fetch video"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, video, "Video fetched successfully"))
}

// UpdateMedia handles PATCH /videos/:videoId (multipart). Both files
// are required; a missing video still reports success, with null data.
func (h *VideoHandler) UpdateMedia(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		c.Error(NewError(http.StatusBadRequest, "Video file is required"))
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		c.Error(NewError(http.StatusBadRequest, "Thumbnail file is required"))
		return
	}

	videoPath, err := h.stageUpload(c, videoFile)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to store uploaded video"))
		return
	}
	thumbnailPath, err := h.stageUpload(c, thumbnailFile)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to store uploaded thumbnail"))
		return
	}

	video, err := h.videoService.UpdateMedia(c.Request.Context(), videoID, videoPath, thumbnailPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoUploadFailed):
			c.Error(NewError(http.StatusBadRequest, "Video upload failed"))
		case errors.Is(err, service.ErrThumbnailUploadFailed):
			c.Error(NewError(http.StatusBadRequest, "Thumbnail upload failed"))
		default:
			c.Error(NewError(http.StatusInternalServerError, "Failed to update video"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, video, "Video updated successfully"))
}

// Delete handles DELETE /videos/:videoId.
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoService.Delete(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Video not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to delete video"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, video, "Video deleted successfully"))
}

// TogglePublish handles PATCH /videos/toggle/publish/:videoId.
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoService.TogglePublish(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Video not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to toggle publish status"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, video, "Publish status toggled successfully"))
}
