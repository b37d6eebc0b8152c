package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVideoCommentsPipeline(t *testing.T) {
	videoID := primitive.NewObjectID()
	pipeline := videoCommentsPipeline(videoID, 3, 10)

	if len(pipeline) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(pipeline))
	}

	match := pipeline[0][0]
	if match.Key != "$match" {
		t.Fatalf("first stage is %s, want $match", match.Key)
	}
	if got := match.Value.(bson.M)["video"]; got != videoID {
		t.Errorf("match video = %v, want %v", got, videoID)
	}

	sort := pipeline[1][0]
	if sort.Key != "$sort" || sort.Value.(bson.M)["createdAt"] != -1 {
		t.Errorf("second stage %v, want sort createdAt desc", sort)
	}

	if skip := pipeline[2][0]; skip.Key != "$skip" || skip.Value != int64(20) {
		t.Errorf("skip stage %v, want $skip 20", skip)
	}
	if limit := pipeline[3][0]; limit.Key != "$limit" || limit.Value != int64(10) {
		t.Errorf("limit stage %v, want $limit 10", limit)
	}
}

// The delete filter targets a commentId field that comment documents do
// not carry. Guard that it stays off _id so the documented no-op
// behavior is not silently changed.
func TestCommentDeleteFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter := commentDeleteFilter(id)

	if _, ok := filter["_id"]; ok {
		t.Error("delete filter must not target _id")
	}
	if filter["commentId"] != id {
		t.Errorf("expected commentId filter on %v, got %v", id, filter)
	}
}
