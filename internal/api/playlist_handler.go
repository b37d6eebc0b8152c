package api

import (
	"errors"
	"net/http"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaylistHandler holds the playlist service dependency.
type PlaylistHandler struct {
	playlistService service.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(playlistService service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// PlaylistRequest defines the expected JSON for creating or editing a
// playlist. Neither field is validated; empty playlists are accepted.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /playlists.
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	playlist, err := h.playlistService.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to create playlist"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlist, "Playlist created successfully"))
}

// UserPlaylists handles GET /playlists/user/:userId. The pipeline
// matches on the requester's id, not the path parameter; the parameter
// is still validated.
func (h *PlaylistHandler) UserPlaylists(c *gin.Context) {
	if _, ok := objectIDParam(c, "userId"); !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	playlists, err := h.playlistService.UserPlaylists(c.Request.Context(), userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch playlists"))
		return
	}
	if len(playlists) == 0 {
		c.Error(NewError(http.StatusBadRequest, "No playlists found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlists, "Playlists fetched successfully"))
}

// GetByID handles GET /playlists/:playlistId. The lookup runs against
// the playlistId field quirk, so the data is always an empty list.
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlists, err := h.playlistService.GetByPlaylistID(c.Request.Context(), playlistID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch playlist"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlists, "Playlist fetched successfully"))
}

// AddVideo handles PATCH /playlists/add/:videoId/:playlistId. The
// update overwrites the playlist's video list with the single video.
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlistService.AddVideo(c.Request.Context(), playlistID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrPlaylistUpdateFailed) {
			// Historical status: the failure is reported inside a
			// 200-coded error envelope.
			c.Error(NewError(http.StatusOK, "Video addition failed"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to add video to playlist"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlist, "Video added to playlist successfully"))
}

// RemoveVideo handles PATCH /playlists/remove/:videoId/:playlistId.
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), playlistID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlaylistNotFound):
			c.Error(NewError(http.StatusNotFound, "Playlist not found"))
		case errors.Is(err, service.ErrVideoNotInPlaylist):
			c.Error(NewError(http.StatusNotFound, "Video not found in playlist"))
		default:
			c.Error(NewError(http.StatusInternalServerError, "Failed to remove video from playlist"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlist, "Video removed from playlist successfully"))
}

// Delete handles DELETE /playlists/:playlistId.
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlistService.Delete(c.Request.Context(), playlistID)
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.Error(NewError(http.StatusBadRequest, "No playlist found"))
		} else {
			c.Error(NewError(http.StatusInternalServerError, "Failed to delete playlist"))
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlist, "Playlist deleted successfully"))
}

// Update handles PATCH /playlists/:playlistId. Name and description
// are stored as given; a missing playlist still reports success, with
// null data.
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	playlist, err := h.playlistService.Update(c.Request.Context(), playlistID, req.Name, req.Description)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to update playlist"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, playlist, "Playlist updated successfully"))
}
