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

const likeCollectionName = "likes"

// mongoLikeRepository implements the repository.LikeRepository interface using MongoDB.
type mongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new instance of mongoLikeRepository.
func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	return &mongoLikeRepository{
		collection: db.Collection(likeCollectionName),
	}
}

// Create inserts a new like document.
func (r *mongoLikeRepository) Create(ctx context.Context, like *domain.Like) (primitive.ObjectID, error) {
	if _, ok := like.Target(); !ok {
		return primitive.NilObjectID, errors.New("like target is required")
	}
	if like.LikedBy == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("like owner is required")
	}

	like.ID = primitive.NewObjectID()
	like.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, like)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// likeTargetFilter matches the single like a user holds on a target.
func likeTargetFilter(target domain.LikeTarget, likedBy primitive.ObjectID) bson.M {
	return bson.M{
		target.Field(): target.ID,
		"likedBy":      likedBy,
	}
}

// FindByTarget looks up the like a user holds on a target, if any.
func (r *mongoLikeRepository) FindByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) (*domain.Like, error) {
	var like domain.Like
	err := r.collection.FindOne(ctx, likeTargetFilter(target, likedBy)).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

// DeleteByTarget removes the like a user holds on a target.
func (r *mongoLikeRepository) DeleteByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, likeTargetFilter(target, likedBy))
	return err
}

// likedVideosPipeline assembles the liked-video listing: every like the
// user holds on a video, joined with the video, the video's owner
// (username and avatar only) and the video's like count. Rows come out
// as {video: {...}}.
func likedVideosPipeline(likedBy primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy": likedBy,
			"video":   bson.M{"$ne": nil},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "video",
			"foreignField": "_id",
			"as":           "videoDetails",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         "users",
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "videoOwner",
					"pipeline": bson.A{
						bson.M{"$project": bson.M{
							"username": 1,
							"avatar":   1,
						}},
					},
				}},
				bson.M{"$lookup": bson.M{
					"from":         "likes",
					"localField":   "_id",
					"foreignField": "video",
					"as":           "videoLikes",
				}},
				bson.M{"$addFields": bson.M{
					"likesCount": bson.M{"$size": "$videoLikes"},
				}},
				bson.M{"$project": bson.M{
					"_id":         1,
					"title":       1,
					"description": 1,
					"videoFiles":  1,
					"thumbnail":   1,
					"duration":    1,
					"likesCount":  1,
					"videoOwner.username": bson.M{"$arrayElemAt": bson.A{"$videoOwner.username", 0}},
					"videoOwner.avatar":   bson.M{"$arrayElemAt": bson.A{"$videoOwner.avatar", 0}},
				}},
			},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"video": bson.M{"$arrayElemAt": bson.A{"$videoDetails", 0}},
		}}},
	}
}

// LikedVideos returns the denormalized liked-video listing rows for a user.
func (r *mongoLikeRepository) LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, likedVideosPipeline(likedBy))
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

// EnsureLikeIndexes creates necessary indexes for the likes collection.
// The (target, likedBy) pairs are looked up on every toggle.
func EnsureLikeIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "video", Value: 1}, {Key: "likedBy", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "comment", Value: 1}, {Key: "likedBy", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tweet", Value: 1}, {Key: "likedBy", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
