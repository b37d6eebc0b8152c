package api

import (
	"errors"
	"net/http"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TweetHandler holds the tweet service dependency.
type TweetHandler struct {
	tweetService service.TweetService
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(tweetService service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// TweetRequest defines the expected JSON for creating or editing a
// tweet.
type TweetRequest struct {
	Content string `json:"content"`
}

// Create handles POST /tweets.
func (h *TweetHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	tweet, err := h.tweetService.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrTweetContentRequired) {
			c.Error(NewError(http.StatusBadRequest, "Content is required"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to create tweet"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, tweet, "Tweet created successfully"))
}

// ListByUser handles GET /tweets/user and GET /tweets/user/:userId.
// Without a userId the requester's own tweets are returned.
func (h *TweetHandler) ListByUser(c *gin.Context) {
	var owner primitive.ObjectID
	if raw := c.Param("userId"); raw != "" {
		var err error
		owner, err = primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.Error(NewError(http.StatusBadRequest, "Invalid userId"))
			return
		}
	} else {
		requester, ok := currentUserID(c)
		if !ok {
			return
		}
		owner = requester
	}

	tweets, err := h.tweetService.ListByUser(c.Request.Context(), owner)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch tweets"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, tweets, "Tweets fetched successfully"))
}

// Update handles PATCH /tweets/:tweetId. A missing tweet still reports
// success, with null data.
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	tweet, err := h.tweetService.Update(c.Request.Context(), tweetID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrTweetContentRequired) {
			c.Error(NewError(http.StatusBadRequest, "Content is required"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to update tweet"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, tweet, "Tweet updated successfully"))
}

// Delete handles DELETE /tweets/:tweetId. The delete filter quirk
// means the reported count is informational only.
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}

	deleted, err := h.tweetService.Delete(c.Request.Context(), tweetID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to delete tweet"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, gin.H{"deletedCount": deleted}, "Tweet deleted successfully"))
}
