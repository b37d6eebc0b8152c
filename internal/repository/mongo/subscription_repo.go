package mongo

import (
	"context"
	"errors"
	"time"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const subscriptionCollectionName = "subscriptions"

// mongoSubscriptionRepository implements the repository.SubscriptionRepository interface using MongoDB.
type mongoSubscriptionRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriptionRepository creates a new instance of mongoSubscriptionRepository.
func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &mongoSubscriptionRepository{
		collection: db.Collection(subscriptionCollectionName),
	}
}

// Create inserts a new subscription document.
func (r *mongoSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	if sub.Subscriber == primitive.NilObjectID || sub.Channel == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("subscription subscriber and channel are required")
	}

	sub.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// FindByPair looks up the subscription of a subscriber to a channel, if any.
func (r *mongoSubscriptionRepository) FindByPair(ctx context.Context, subscriber, channel primitive.ObjectID) (*domain.Subscription, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}

	var sub domain.Subscription
	err := r.collection.FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// DeleteByID removes a subscription document by its ObjectID.
func (r *mongoSubscriptionRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrDeleteFailed
	}
	return nil
}

// channelSubscribersPipeline groups a channel's subscriptions with the
// joined subscriber users and the total count, one row per channel.
func channelSubscribersPipeline(channel primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"channel": channel}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "channelSubscribers",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":                  "$channel",
			"subscribers":          bson.M{"$push": "$channelSubscribers"},
			"totalSubscriberCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"channelSubscribers":     "$subscribers",
			"channelSubscriberCount": "$totalSubscriberCount",
		}}},
	}
}

// ChannelSubscribers returns the grouped subscriber listing of a channel.
func (r *mongoSubscriptionRepository) ChannelSubscribers(ctx context.Context, channel primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, channelSubscribersPipeline(channel))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// subscribedChannelsPipeline lists a user's subscriptions with the
// joined channel user, keeping only a few public channel fields.
func subscribedChannelsPipeline(subscriber primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"subscriber": subscriber}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channelDetails",
		}}},
		{{Key: "$project", Value: bson.M{
			"channel": 1,
			"channelDetails": bson.M{
				"username": 1,
				"email":    1,
				"avatar":   1,
			},
		}}},
	}
}

// SubscribedChannels returns the channels a user subscribed to.
func (r *mongoSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, subscribedChannelsPipeline(subscriber))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// EnsureSubscriptionIndexes creates necessary indexes for the subscriptions collection.
func EnsureSubscriptionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "channel", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
