package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweets store their id under _id; the delete filter's tweetId field
// never matches. Guard the no-op so it is not silently "fixed" without
// revisiting the API contract.
func TestTweetDeleteFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter := tweetDeleteFilter(id)

	if _, ok := filter["_id"]; ok {
		t.Error("delete filter must not target _id")
	}
	if filter["tweetId"] != id {
		t.Errorf("expected tweetId filter on %v, got %v", id, filter)
	}
}
