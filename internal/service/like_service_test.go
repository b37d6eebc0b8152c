package service

import (
	"context"
	"errors"
	"testing"

	"playtube/video-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newLikeFixture(t *testing.T) (LikeService, *mockLikeRepo, *mockVideoRepo, *mockCommentRepo, *mockTweetRepo) {
	t.Helper()
	likeRepo := newMockLikeRepo()
	videoRepo := newMockVideoRepo()
	commentRepo := newMockCommentRepo()
	tweetRepo := newMockTweetRepo()
	svc := NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	return svc, likeRepo, videoRepo, commentRepo, tweetRepo
}

func TestToggleVideoLike(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("double toggle returns to the original state", func(t *testing.T) {
		svc, likeRepo, videoRepo, _, _ := newLikeFixture(t)
		videoID, _ := videoRepo.Create(ctx, &domain.Video{Title: "first"})

		like, liked, err := svc.ToggleVideoLike(ctx, videoID, userID)
		if err != nil {
			t.Fatalf("first toggle: %v", err)
		}
		if !liked {
			t.Fatal("first toggle should create the like")
		}
		if like == nil || like.Video == nil || *like.Video != videoID {
			t.Fatalf("created like does not reference the video: %+v", like)
		}
		if len(likeRepo.likes) != 1 {
			t.Fatalf("expected 1 stored like, got %d", len(likeRepo.likes))
		}

		_, liked, err = svc.ToggleVideoLike(ctx, videoID, userID)
		if err != nil {
			t.Fatalf("second toggle: %v", err)
		}
		if liked {
			t.Fatal("second toggle should remove the like")
		}
		if len(likeRepo.likes) != 0 {
			t.Fatalf("expected no stored likes, got %d", len(likeRepo.likes))
		}
	})

	t.Run("unknown video is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newLikeFixture(t)

		_, _, err := svc.ToggleVideoLike(ctx, primitive.NewObjectID(), userID)
		if !errors.Is(err, ErrVideoNotFound) {
			t.Fatalf("expected ErrVideoNotFound, got %v", err)
		}
	})

	t.Run("likes by different users are independent", func(t *testing.T) {
		svc, likeRepo, videoRepo, _, _ := newLikeFixture(t)
		videoID, _ := videoRepo.Create(ctx, &domain.Video{Title: "shared"})
		otherUser := primitive.NewObjectID()

		if _, _, err := svc.ToggleVideoLike(ctx, videoID, userID); err != nil {
			t.Fatal(err)
		}
		if _, _, err := svc.ToggleVideoLike(ctx, videoID, otherUser); err != nil {
			t.Fatal(err)
		}
		if len(likeRepo.likes) != 2 {
			t.Fatalf("expected 2 stored likes, got %d", len(likeRepo.likes))
		}
	})
}

func TestToggleCommentLike(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("toggles a comment like on and off", func(t *testing.T) {
		svc, likeRepo, _, commentRepo, _ := newLikeFixture(t)
		commentID, _ := commentRepo.Create(ctx, &domain.Comment{Content: "nice"})

		_, liked, err := svc.ToggleCommentLike(ctx, commentID, userID)
		if err != nil || !liked {
			t.Fatalf("first toggle: liked=%v err=%v", liked, err)
		}
		_, liked, err = svc.ToggleCommentLike(ctx, commentID, userID)
		if err != nil || liked {
			t.Fatalf("second toggle: liked=%v err=%v", liked, err)
		}
		if len(likeRepo.likes) != 0 {
			t.Fatalf("expected no stored likes, got %d", len(likeRepo.likes))
		}
	})

	t.Run("unknown comment is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newLikeFixture(t)

		_, _, err := svc.ToggleCommentLike(ctx, primitive.NewObjectID(), userID)
		if !errors.Is(err, ErrCommentNotFound) {
			t.Fatalf("expected ErrCommentNotFound, got %v", err)
		}
	})
}

func TestToggleTweetLike(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("tweet like does not collide with a video like of the same id holder", func(t *testing.T) {
		svc, likeRepo, videoRepo, _, tweetRepo := newLikeFixture(t)
		videoID, _ := videoRepo.Create(ctx, &domain.Video{Title: "v"})
		tweetID, _ := tweetRepo.Create(ctx, &domain.Tweet{Content: "t"})

		if _, _, err := svc.ToggleVideoLike(ctx, videoID, userID); err != nil {
			t.Fatal(err)
		}
		if _, _, err := svc.ToggleTweetLike(ctx, tweetID, userID); err != nil {
			t.Fatal(err)
		}
		if len(likeRepo.likes) != 2 {
			t.Fatalf("expected 2 stored likes, got %d", len(likeRepo.likes))
		}
	})

	t.Run("unknown tweet is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newLikeFixture(t)

		_, _, err := svc.ToggleTweetLike(ctx, primitive.NewObjectID(), userID)
		if !errors.Is(err, ErrTweetNotFound) {
			t.Fatalf("expected ErrTweetNotFound, got %v", err)
		}
	})
}
