package service

import (
	"context"
	"errors"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrVideoNotInPlaylist   = errors.New("video not found in playlist")
	ErrPlaylistUpdateFailed = errors.New("playlist update failed")
)

// PlaylistService handles playlist CRUD and video membership.
type PlaylistService interface {
	Create(ctx context.Context, owner primitive.ObjectID, name, description string) (*domain.Playlist, error)
	UserPlaylists(ctx context.Context, owner primitive.ObjectID) ([]bson.M, error)
	GetByPlaylistID(ctx context.Context, playlistID primitive.ObjectID) ([]domain.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*domain.Playlist, error)
	Delete(ctx context.Context, playlistID primitive.ObjectID) (*domain.Playlist, error)
	Update(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*domain.Playlist, error)
}

// playlistService implements the PlaylistService interface.
type playlistService struct {
	playlistRepo repository.PlaylistRepository
}

// NewPlaylistService creates a new instance of playlistService.
func NewPlaylistService(playlistRepo repository.PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

// Create stores a new empty playlist. Name and description are accepted
// as-is, empty values included.
func (s *playlistService) Create(ctx context.Context, owner primitive.ObjectID, name, description string) (*domain.Playlist, error) {
	playlist := &domain.Playlist{
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []primitive.ObjectID{},
	}
	playlistID, err := s.playlistRepo.Create(ctx, playlist)
	if err != nil {
		return nil, err
	}
	playlist.ID = playlistID
	return playlist, nil
}

// UserPlaylists returns a user's playlists with their published videos
// joined in.
func (s *playlistService) UserPlaylists(ctx context.Context, owner primitive.ObjectID) ([]bson.M, error) {
	return s.playlistRepo.ByOwnerWithVideos(ctx, owner)
}

// GetByPlaylistID looks a playlist up by the non-existent playlistId
// field and therefore always returns an empty slice. Kept as-is until
// the lookup is migrated to _id.
func (s *playlistService) GetByPlaylistID(ctx context.Context, playlistID primitive.ObjectID) ([]domain.Playlist, error) {
	return s.playlistRepo.FindByPlaylistID(ctx, playlistID)
}

// AddVideo sets the playlist's video list to exactly the given video,
// discarding whatever was there before.
func (s *playlistService) AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.SetVideos(ctx, playlistID, []primitive.ObjectID{videoID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaylistUpdateFailed
		}
		return nil, err
	}
	return playlist, nil
}

// RemoveVideo drops one video from the playlist's list and persists the
// filtered list.
func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	remaining := make([]primitive.ObjectID, 0, len(playlist.Videos))
	for _, id := range playlist.Videos {
		if id != videoID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == len(playlist.Videos) {
		return nil, ErrVideoNotInPlaylist
	}

	updated, err := s.playlistRepo.SetVideos(ctx, playlistID, remaining)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a playlist and returns the deleted document.
func (s *playlistService) Delete(ctx context.Context, playlistID primitive.ObjectID) (*domain.Playlist, error) {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return s.playlistRepo.Delete(ctx, playlistID)
}

// Update replaces name and description. A missing playlist yields a nil
// document, which the endpoint reports as success with null data.
func (s *playlistService) Update(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.UpdateDetails(ctx, playlistID, name, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return playlist, nil
}
