package service

import (
	"context"
	"errors"
	"testing"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"delivery url", "https://res.cloudinary.com/demo/video/upload/v123/abc123.mp4", "abc123"},
		{"no extension", "https://res.cloudinary.com/demo/video/upload/abc123", "abc123"},
		{"bare segment", "abc123.mov", "abc123"},
		{"dotted name is cut at the first dot", "https://host/a.b.c.mp4", "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := publicIDFromURL(tc.url); got != tc.want {
				t.Errorf("publicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestVideoPublish(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("stores urls and probed duration", func(t *testing.T) {
		repo := newMockVideoRepo()
		media := newMockMediaStorage()
		media.uploads["/tmp/v.mp4"] = &storage.UploadResult{URL: "https://cdn/v.mp4", PublicID: "v", Duration: 42.5}
		media.uploads["/tmp/t.png"] = &storage.UploadResult{URL: "https://cdn/t.png", PublicID: "t"}
		svc := NewVideoService(repo, media)

		video, err := svc.Publish(ctx, owner, "title", "desc", "/tmp/v.mp4", "/tmp/t.png")
		if err != nil {
			t.Fatalf("publish: %v", err)
		}
		if video.VideoFiles != "https://cdn/v.mp4" || video.Thumbnail != "https://cdn/t.png" {
			t.Errorf("urls %q / %q", video.VideoFiles, video.Thumbnail)
		}
		if video.Duration != 42.5 {
			t.Errorf("duration = %v, want 42.5", video.Duration)
		}
		if video.IsPublished {
			t.Error("new video must start unpublished")
		}
		if video.Owner != owner {
			t.Errorf("owner = %v, want %v", video.Owner, owner)
		}
	})

	t.Run("failed video upload aborts before the thumbnail", func(t *testing.T) {
		repo := newMockVideoRepo()
		media := newMockMediaStorage()
		media.uploads["/tmp/t.png"] = &storage.UploadResult{URL: "https://cdn/t.png"}
		svc := NewVideoService(repo, media)

		_, err := svc.Publish(ctx, owner, "title", "desc", "/tmp/missing.mp4", "/tmp/t.png")
		if !errors.Is(err, ErrVideoUploadFailed) {
			t.Fatalf("expected ErrVideoUploadFailed, got %v", err)
		}
		if len(repo.videos) != 0 {
			t.Error("no video should be stored after a failed upload")
		}
	})

	t.Run("failed thumbnail upload is reported separately", func(t *testing.T) {
		media := newMockMediaStorage()
		media.uploads["/tmp/v.mp4"] = &storage.UploadResult{URL: "https://cdn/v.mp4"}
		svc := NewVideoService(newMockVideoRepo(), media)

		_, err := svc.Publish(ctx, owner, "title", "desc", "/tmp/v.mp4", "/tmp/missing.png")
		if !errors.Is(err, ErrThumbnailUploadFailed) {
			t.Fatalf("expected ErrThumbnailUploadFailed, got %v", err)
		}
	})
}

func TestVideoDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the hosted asset by derived public id", func(t *testing.T) {
		repo := newMockVideoRepo()
		media := newMockMediaStorage()
		svc := NewVideoService(repo, media)
		videoID, _ := repo.Create(ctx, &domain.Video{
			Title:      "t",
			VideoFiles: "https://res.cloudinary.com/demo/video/upload/v1/clip42.mp4",
		})

		deleted, err := svc.Delete(ctx, videoID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if deleted.ID != videoID {
			t.Errorf("deleted %v, want %v", deleted.ID, videoID)
		}
		if len(media.deleted) != 1 || media.deleted[0] != "clip42" {
			t.Errorf("media deletes = %v, want [clip42]", media.deleted)
		}
		if len(repo.videos) != 0 {
			t.Error("video still stored after delete")
		}
	})

	t.Run("missing video is rejected", func(t *testing.T) {
		svc := NewVideoService(newMockVideoRepo(), newMockMediaStorage())

		_, err := svc.Delete(ctx, primitive.NewObjectID())
		if !errors.Is(err, ErrVideoNotFound) {
			t.Fatalf("expected ErrVideoNotFound, got %v", err)
		}
	})
}

func TestVideoTogglePublish(t *testing.T) {
	ctx := context.Background()
	repo := newMockVideoRepo()
	svc := NewVideoService(repo, newMockMediaStorage())
	videoID, _ := repo.Create(ctx, &domain.Video{Title: "t"})

	video, err := svc.TogglePublish(ctx, videoID)
	if err != nil {
		t.Fatal(err)
	}
	if !video.IsPublished {
		t.Error("first toggle should publish")
	}

	video, err = svc.TogglePublish(ctx, videoID)
	if err != nil {
		t.Fatal(err)
	}
	if video.IsPublished {
		t.Error("second toggle should unpublish")
	}
}

func TestVideoUpdateMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("missing video reports success with no document", func(t *testing.T) {
		media := newMockMediaStorage()
		media.uploads["/tmp/v.mp4"] = &storage.UploadResult{URL: "https://cdn/v.mp4", Duration: 3}
		media.uploads["/tmp/t.png"] = &storage.UploadResult{URL: "https://cdn/t.png"}
		svc := NewVideoService(newMockVideoRepo(), media)

		video, err := svc.UpdateMedia(ctx, primitive.NewObjectID(), "/tmp/v.mp4", "/tmp/t.png")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if video != nil {
			t.Errorf("expected nil video, got %+v", video)
		}
	})

	t.Run("swaps media and duration", func(t *testing.T) {
		repo := newMockVideoRepo()
		media := newMockMediaStorage()
		media.uploads["/tmp/v.mp4"] = &storage.UploadResult{URL: "https://cdn/v2.mp4", Duration: 7}
		media.uploads["/tmp/t.png"] = &storage.UploadResult{URL: "https://cdn/t2.png"}
		svc := NewVideoService(repo, media)
		videoID, _ := repo.Create(ctx, &domain.Video{Title: "t", VideoFiles: "old", Thumbnail: "old", Duration: 1})

		video, err := svc.UpdateMedia(ctx, videoID, "/tmp/v.mp4", "/tmp/t.png")
		if err != nil {
			t.Fatal(err)
		}
		if video.VideoFiles != "https://cdn/v2.mp4" || video.Thumbnail != "https://cdn/t2.png" || video.Duration != 7 {
			t.Errorf("got %q/%q/%v", video.VideoFiles, video.Thumbnail, video.Duration)
		}
	})
}
