package service

import (
	"context"
	"errors"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCommentContentRequired = errors.New("comment content is required")
)

// CommentService handles comment reads and writes for videos.
type CommentService interface {
	ListForVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) ([]domain.Comment, error)
	Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*domain.Comment, error)
	Update(ctx context.Context, commentID primitive.ObjectID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, commentID primitive.ObjectID) (int64, error)
}

// commentService implements the CommentService interface.
type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new instance of commentService.
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// ListForVideo returns one page of a video's comments, newest first.
// Page and limit are forwarded untouched; callers apply the defaults.
func (s *commentService) ListForVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) ([]domain.Comment, error) {
	return s.commentRepo.ListByVideo(ctx, videoID, page, limit)
}

// Add creates a comment on a video owned by the given user.
func (s *commentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, ErrCommentContentRequired
	}

	comment := &domain.Comment{
		Content: content,
		Video:   videoID,
		Owner:   owner,
	}
	commentID, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = commentID
	return comment, nil
}

// Update replaces a comment's content. A missing comment is not an
// error: the caller gets a nil document and reports success with null
// data, matching the long-standing behavior of the endpoint.
func (s *commentService) Update(ctx context.Context, commentID primitive.ObjectID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, ErrCommentContentRequired
	}

	comment, err := s.commentRepo.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

// Delete forwards to the repository's (defective) delete and reports
// the removed count.
func (s *commentService) Delete(ctx context.Context, commentID primitive.ObjectID) (int64, error) {
	return s.commentRepo.Delete(ctx, commentID)
}
