package api

import (
	"net/http"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler holds the subscription service dependency.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle handles POST /subscriptions/c/:channelId. Unsubscribing
// reports null data.
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, ok := objectIDParam(c, "channelId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subscription, subscribed, err := h.subscriptionService.Toggle(c.Request.Context(), channelID, userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to toggle subscription"))
		return
	}

	if !subscribed {
		c.JSON(http.StatusOK, NewResponse(http.StatusOK, nil, "Unsubscribed successfully"))
		return
	}
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, subscription, "Subscribed successfully"))
}

// Subscribers handles GET /subscriptions/c/:channelId.
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	channelID, ok := objectIDParam(c, "channelId")
	if !ok {
		return
	}

	subscribers, err := h.subscriptionService.Subscribers(c.Request.Context(), channelID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch subscribers"))
		return
	}
	if len(subscribers) == 0 {
		c.Error(NewError(http.StatusBadRequest, "No subscribers found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, subscribers, "Subscribers fetched successfully"))
}

// SubscribedChannels handles GET /subscriptions/u/:subscriberId. The
// pipeline matches on the requester's id, not the path parameter; the
// parameter is still validated.
func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	if _, ok := objectIDParam(c, "subscriberId"); !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	channels, err := h.subscriptionService.SubscribedChannels(c.Request.Context(), userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch subscribed channels"))
		return
	}
	if len(channels) == 0 {
		c.Error(NewError(http.StatusBadRequest, "No subscribed channels found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, channels, "Subscribed channels fetched successfully"))
}
