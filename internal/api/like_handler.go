package api

import (
	"errors"
	"net/http"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// LikeHandler holds the like service dependency.
type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo handles POST /likes/toggle/v/:videoId.
func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	like, liked, err := h.likeService.ToggleVideoLike(c.Request.Context(), videoID, userID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Video not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to toggle video like"))
		}
		return
	}

	message := "Video unliked"
	if liked {
		message = "Video liked"
	}
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, like, message))
}

// ToggleComment handles POST /likes/toggle/c/:commentId.
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	like, liked, err := h.likeService.ToggleCommentLike(c.Request.Context(), commentID, userID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Comment not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to toggle comment like"))
		}
		return
	}

	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, like, message))
}

// ToggleTweet handles POST /likes/toggle/t/:tweetId.
func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	like, liked, err := h.likeService.ToggleTweetLike(c.Request.Context(), tweetID, userID)
	if err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			c.Error(NewError(http.StatusBadRequest, "Tweet not found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to toggle tweet like"))
		}
		return
	}

	message := "Tweet unliked"
	if liked {
		message = "Tweet liked"
	}
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, like, message))
}

// LikedVideos handles GET /likes/videos. An empty list is still a 200.
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	videos, err := h.likeService.LikedVideos(c.Request.Context(), userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch liked videos"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, videos, "Liked videos fetched successfully"))
}
