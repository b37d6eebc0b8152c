package service

import (
	"context"
	"errors"
	"strings"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"
	"playtube/video-app/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrVideoUploadFailed     = errors.New("video upload failed")
	ErrThumbnailUploadFailed = errors.New("thumbnail upload failed")
)

// VideoService handles the video catalog: listing, publishing, media
// replacement and deletion.
type VideoService interface {
	List(ctx context.Context, filter repository.VideoListFilter) ([]domain.Video, int64, error)
	// Publish uploads the staged video and thumbnail files to the media
	// host and stores the resulting catalog entry.
	Publish(ctx context.Context, owner primitive.ObjectID, title, description, videoPath, thumbnailPath string) (*domain.Video, error)
	GetByID(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error)
	// UpdateMedia replaces a video's media and thumbnail with freshly
	// uploaded files.
	UpdateMedia(ctx context.Context, videoID primitive.ObjectID, videoPath, thumbnailPath string) (*domain.Video, error)
	Delete(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error)
	TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error)
}

// videoService implements the VideoService interface.
type videoService struct {
	videoRepo repository.VideoRepository
	media     storage.MediaStorage
}

// NewVideoService creates a new instance of videoService.
func NewVideoService(videoRepo repository.VideoRepository, media storage.MediaStorage) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		media:     media,
	}
}

// List returns one page of the catalog plus the total match count.
func (s *videoService) List(ctx context.Context, filter repository.VideoListFilter) ([]domain.Video, int64, error) {
	return s.videoRepo.List(ctx, filter)
}

// Publish uploads both staged files and creates the catalog entry. The
// new video starts unpublished; TogglePublish flips it live.
func (s *videoService) Publish(ctx context.Context, owner primitive.ObjectID, title, description, videoPath, thumbnailPath string) (*domain.Video, error) {
	videoUpload := s.media.Upload(ctx, videoPath)
	if videoUpload == nil {
		return nil, ErrVideoUploadFailed
	}
	thumbnailUpload := s.media.Upload(ctx, thumbnailPath)
	if thumbnailUpload == nil {
		return nil, ErrThumbnailUploadFailed
	}

	video := &domain.Video{
		Title:       title,
		Description: description,
		VideoFiles:  videoUpload.URL,
		Thumbnail:   thumbnailUpload.URL,
		Duration:    videoUpload.Duration,
		IsPublished: false,
		Owner:       owner,
	}
	videoID, err := s.videoRepo.Create(ctx, video)
	if err != nil {
		return nil, err
	}
	video.ID = videoID
	return video, nil
}

// GetByID fetches one video by its id.
func (s *videoService) GetByID(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// UpdateMedia uploads replacement files and swaps them into the
// document. The previous media host assets are left in place. A missing
// video yields a nil document, reported as success with null data.
func (s *videoService) UpdateMedia(ctx context.Context, videoID primitive.ObjectID, videoPath, thumbnailPath string) (*domain.Video, error) {
	videoUpload := s.media.Upload(ctx, videoPath)
	if videoUpload == nil {
		return nil, ErrVideoUploadFailed
	}
	thumbnailUpload := s.media.Upload(ctx, thumbnailPath)
	if thumbnailUpload == nil {
		return nil, ErrThumbnailUploadFailed
	}

	video, err := s.videoRepo.UpdateMedia(ctx, videoID, videoUpload.URL, videoUpload.Duration, thumbnailUpload.URL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return video, nil
}

// Delete removes the hosted video asset first, then the document. The
// thumbnail asset is not cleaned up.
func (s *videoService) Delete(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.media.Delete(ctx, publicIDFromURL(video.VideoFiles)); err != nil {
		return nil, err
	}

	return s.videoRepo.Delete(ctx, videoID)
}

// TogglePublish flips a video's published flag.
func (s *videoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.videoRepo.SetPublished(ctx, videoID, !video.IsPublished)
}

// publicIDFromURL recovers the media host public id from a delivery
// URL: the last path segment, cut at the first dot. Public ids that
// themselves contain dots come back truncated; such ids never occur
// here because uploads are staged under uuid file names.
func publicIDFromURL(url string) string {
	segment := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		segment = url[i+1:]
	}
	if i := strings.Index(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	return segment
}
