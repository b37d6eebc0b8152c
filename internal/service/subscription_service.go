package service

import (
	"context"
	"errors"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionService handles the subscribe/unsubscribe toggle and the
// two directional listings.
type SubscriptionService interface {
	// Toggle flips a user's subscription to a channel. The bool reports
	// the new state: true when the subscription was created, false when
	// it was removed.
	Toggle(ctx context.Context, channelID, subscriberID primitive.ObjectID) (*domain.Subscription, bool, error)
	Subscribers(ctx context.Context, channelID primitive.ObjectID) ([]bson.M, error)
	SubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID) ([]bson.M, error)
}

// subscriptionService implements the SubscriptionService interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

// Toggle flips a user's subscription to a channel. The channel ID is
// not checked against the users collection; subscribing to an unknown
// ID succeeds.
func (s *subscriptionService) Toggle(ctx context.Context, channelID, subscriberID primitive.ObjectID) (*domain.Subscription, bool, error) {
	existing, err := s.subscriptionRepo.FindByPair(ctx, subscriberID, channelID)
	if err == nil {
		if err := s.subscriptionRepo.DeleteByID(ctx, existing.ID); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	subscription := &domain.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
	}
	subscriptionID, err := s.subscriptionRepo.Create(ctx, subscription)
	if err != nil {
		return nil, false, err
	}
	subscription.ID = subscriptionID
	return subscription, true, nil
}

// Subscribers returns the grouped subscriber listing for a channel.
func (s *subscriptionService) Subscribers(ctx context.Context, channelID primitive.ObjectID) ([]bson.M, error) {
	return s.subscriptionRepo.ChannelSubscribers(ctx, channelID)
}

// SubscribedChannels returns the channels a user subscribes to.
func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID) ([]bson.M, error) {
	return s.subscriptionRepo.SubscribedChannels(ctx, subscriberID)
}
