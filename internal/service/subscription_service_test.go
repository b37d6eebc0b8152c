package service

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubscriptionToggle(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	channelID := primitive.NewObjectID()

	t.Run("double toggle returns to the original state", func(t *testing.T) {
		repo := newMockSubscriptionRepo()
		svc := NewSubscriptionService(repo)

		sub, subscribed, err := svc.Toggle(ctx, channelID, userID)
		if err != nil {
			t.Fatalf("first toggle: %v", err)
		}
		if !subscribed {
			t.Fatal("first toggle should subscribe")
		}
		if sub.Subscriber != userID || sub.Channel != channelID {
			t.Fatalf("stored pair %v->%v, want %v->%v", sub.Subscriber, sub.Channel, userID, channelID)
		}

		removed, subscribed, err := svc.Toggle(ctx, channelID, userID)
		if err != nil {
			t.Fatalf("second toggle: %v", err)
		}
		if subscribed {
			t.Fatal("second toggle should unsubscribe")
		}
		if removed.ID != sub.ID {
			t.Errorf("removed %v, want %v", removed.ID, sub.ID)
		}
		if len(repo.subscriptions) != 0 {
			t.Fatalf("expected no stored subscriptions, got %d", len(repo.subscriptions))
		}
	})

	t.Run("channel existence is not checked", func(t *testing.T) {
		// Channels are just user ids; an id with no matching user still
		// accepts subscriptions.
		svc := NewSubscriptionService(newMockSubscriptionRepo())

		_, subscribed, err := svc.Toggle(ctx, primitive.NewObjectID(), userID)
		if err != nil || !subscribed {
			t.Fatalf("subscribed=%v err=%v", subscribed, err)
		}
	})

	t.Run("subscriptions to different channels coexist", func(t *testing.T) {
		repo := newMockSubscriptionRepo()
		svc := NewSubscriptionService(repo)
		other := primitive.NewObjectID()

		if _, _, err := svc.Toggle(ctx, channelID, userID); err != nil {
			t.Fatal(err)
		}
		if _, _, err := svc.Toggle(ctx, other, userID); err != nil {
			t.Fatal(err)
		}
		if len(repo.subscriptions) != 2 {
			t.Fatalf("expected 2 subscriptions, got %d", len(repo.subscriptions))
		}
	})
}
