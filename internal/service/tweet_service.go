package service

import (
	"context"
	"errors"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTweetContentRequired = errors.New("tweet content is required")
)

// TweetService handles tweet reads and writes.
type TweetService interface {
	Create(ctx context.Context, owner primitive.ObjectID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, owner primitive.ObjectID) ([]domain.Tweet, error)
	Update(ctx context.Context, tweetID primitive.ObjectID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, tweetID primitive.ObjectID) (int64, error)
}

// tweetService implements the TweetService interface.
type tweetService struct {
	tweetRepo repository.TweetRepository
}

// NewTweetService creates a new instance of tweetService.
func NewTweetService(tweetRepo repository.TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

// Create posts a new tweet for the given owner.
func (s *tweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, ErrTweetContentRequired
	}

	tweet := &domain.Tweet{
		Content: content,
		Owner:   owner,
	}
	tweetID, err := s.tweetRepo.Create(ctx, tweet)
	if err != nil {
		return nil, err
	}
	tweet.ID = tweetID
	return tweet, nil
}

// ListByUser returns all tweets of one user; an empty list is a valid
// result.
func (s *tweetService) ListByUser(ctx context.Context, owner primitive.ObjectID) ([]domain.Tweet, error) {
	return s.tweetRepo.ListByOwner(ctx, owner)
}

// Update replaces a tweet's content. A missing tweet yields a nil
// document, which the endpoint reports as success with null data.
func (s *tweetService) Update(ctx context.Context, tweetID primitive.ObjectID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, ErrTweetContentRequired
	}

	tweet, err := s.tweetRepo.UpdateContent(ctx, tweetID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tweet, nil
}

// Delete forwards to the repository's (defective) delete and reports
// the removed count.
func (s *tweetService) Delete(ctx context.Context, tweetID primitive.ObjectID) (int64, error) {
	return s.tweetRepo.Delete(ctx, tweetID)
}
