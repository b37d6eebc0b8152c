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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tweetCollectionName = "tweets"

// mongoTweetRepository implements the repository.TweetRepository interface using MongoDB.
type mongoTweetRepository struct {
	collection *mongo.Collection
}

// NewMongoTweetRepository creates a new instance of mongoTweetRepository.
func NewMongoTweetRepository(db *mongo.Database) repository.TweetRepository {
	return &mongoTweetRepository{
		collection: db.Collection(tweetCollectionName),
	}
}

// Create inserts a new tweet document.
func (r *mongoTweetRepository) Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error) {
	if tweet.Owner == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("tweet owner is required")
	}

	tweet.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tweet)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a tweet by its ObjectID.
func (r *mongoTweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error) {
	var tweet domain.Tweet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

// ListByOwner retrieves all tweets of a single owner.
func (r *mongoTweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Tweet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := []domain.Tweet{}
	if err = cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// UpdateContent replaces a tweet's content and returns the updated document.
func (r *mongoTweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Tweet, error) {
	update := bson.M{
		"$set": bson.M{
			"content":   content,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet domain.Tweet
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

// tweetDeleteFilter mirrors commentDeleteFilter: tweets store their id
// under _id, so the "tweetId" field filter never matches anything.
func tweetDeleteFilter(id primitive.ObjectID) bson.M {
	return bson.M{"tweetId": id}
}

// Delete removes tweets matching the historical delete filter and
// reports how many documents went away (zero, in practice).
func (r *mongoTweetRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, tweetDeleteFilter(id))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureTweetIndexes creates necessary indexes for the tweets collection.
func EnsureTweetIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
