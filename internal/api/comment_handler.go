package api

import (
	"errors"
	"net/http"
	"strconv"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler holds the comment service dependency.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddCommentRequest defines the expected JSON for creating a comment.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest defines the expected JSON for editing a comment.
type UpdateCommentRequest struct {
	NewComment string `json:"newComment"`
}

// pageParam reads an int64 query parameter, falling back to the
// default when missing or non-numeric. Zero and negative values are
// passed through untouched.
func pageParam(c *gin.Context, name string, fallback int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

// List handles GET /comments/:videoId.
func (h *CommentHandler) List(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}
	page := pageParam(c, "page", 1)
	limit := pageParam(c, "limit", 10)

	comments, err := h.commentService.ListForVideo(c.Request.Context(), videoID, page, limit)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch comments"))
		return
	}
	if len(comments) == 0 {
		c.Error(NewError(http.StatusBadRequest, "No comments found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, comments, "Comments fetched successfully"))
}

// Add handles POST /comments/:videoId.
func (h *CommentHandler) Add(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), videoID, userID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrCommentContentRequired) {
			c.Error(NewError(http.StatusBadRequest, "Content is required"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to add comment"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, comment, "Comment added successfully"))
}

// Update handles PATCH /comments/c/:commentId. A missing comment still
// reports success, with null data.
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), commentID, req.NewComment)
	if err != nil {
		if errors.Is(err, service.ErrCommentContentRequired) {
			c.Error(NewError(http.StatusBadRequest, "Content is required"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to update comment"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, comment, "Comment updated successfully"))
}

// Delete handles DELETE /comments/c/:commentId. The delete filter
// quirk means the reported count is informational only.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}

	deleted, err := h.commentService.Delete(c.Request.Context(), commentID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to delete comment"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, gin.H{"deletedCount": deleted}, "Comment deleted successfully"))
}
