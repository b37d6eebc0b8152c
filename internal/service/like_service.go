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
	ErrVideoNotFound   = errors.New("video not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrTweetNotFound   = errors.New("tweet not found")
)

// LikeService implements the two-state like toggle for videos, comments
// and tweets. Like existence per (user, target) pair is the only state;
// counts are derived at read time by the aggregations.
type LikeService interface {
	// ToggleVideoLike flips the like of a user on a video. The bool
	// reports the new state: true when a like was created, false when
	// an existing like was removed (the removed like is returned).
	ToggleVideoLike(ctx context.Context, videoID, userID primitive.ObjectID) (*domain.Like, bool, error)
	ToggleCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*domain.Like, bool, error)
	ToggleTweetLike(ctx context.Context, tweetID, userID primitive.ObjectID) (*domain.Like, bool, error)
	LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
}

// likeService implements the LikeService interface.
type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
}

// NewLikeService creates a new instance of likeService.
func NewLikeService(
	likeRepo repository.LikeRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// ToggleVideoLike flips the like of a user on a video.
func (s *likeService) ToggleVideoLike(ctx context.Context, videoID, userID primitive.ObjectID) (*domain.Like, bool, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrVideoNotFound
		}
		return nil, false, err
	}
	return s.toggle(ctx, domain.VideoTarget(videoID), userID)
}

// ToggleCommentLike flips the like of a user on a comment.
func (s *likeService) ToggleCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*domain.Like, bool, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrCommentNotFound
		}
		return nil, false, err
	}
	return s.toggle(ctx, domain.CommentTarget(commentID), userID)
}

// ToggleTweetLike flips the like of a user on a tweet.
func (s *likeService) ToggleTweetLike(ctx context.Context, tweetID, userID primitive.ObjectID) (*domain.Like, bool, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrTweetNotFound
		}
		return nil, false, err
	}
	return s.toggle(ctx, domain.TweetTarget(tweetID), userID)
}

// toggle is the shared transition: presence of a matching like record
// decides between delete and create. The read and the write are two
// separate operations; concurrent toggles by the same user on the same
// target can race.
func (s *likeService) toggle(ctx context.Context, target domain.LikeTarget, userID primitive.ObjectID) (*domain.Like, bool, error) {
	existing, err := s.likeRepo.FindByTarget(ctx, target, userID)
	if err == nil {
		if err := s.likeRepo.DeleteByTarget(ctx, target, userID); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	like := domain.NewLike(target, userID)
	likeID, err := s.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, false, err
	}
	like.ID = likeID
	return like, true, nil
}

// LikedVideos returns the denormalized liked-video listing for a user.
func (s *likeService) LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	return s.likeRepo.LikedVideos(ctx, userID)
}
