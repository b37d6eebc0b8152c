package mongo

import (
	"context"

	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoDashboardRepository implements repository.DashboardRepository.
// Both aggregations start from the users collection and fan out to
// videos, likes and subscriptions.
type mongoDashboardRepository struct {
	collection *mongo.Collection
}

// NewMongoDashboardRepository creates a new instance of mongoDashboardRepository.
func NewMongoDashboardRepository(db *mongo.Database) repository.DashboardRepository {
	return &mongoDashboardRepository{
		collection: db.Collection(userCollectionName),
	}
}

// channelStatsPipeline computes per-channel totals: video count, summed
// views, like count over all of the channel's videos and subscriber
// count. One row per matched user.
func channelStatsPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "_id",
			"foreignField": "owner",
			"as":           "uploadedVideos",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"videoFiles":  1,
					"title":       1,
					"thumbnail":   1,
					"isPublished": 1,
					"views":       1,
				}},
				bson.M{"$lookup": bson.M{
					"from":         "likes",
					"localField":   "_id",
					"foreignField": "video",
					"as":           "videoLikes",
				}},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": "$uploadedVideos"},
			"totalViews":  bson.M{"$sum": "$uploadedVideos.views"},
			"totalVideoLikes": bson.M{"$sum": bson.M{
				"$map": bson.M{
					"input": "$uploadedVideos",
					"as":    "video",
					"in":    bson.M{"$size": "$$video.videoLikes"},
				},
			}},
			"totalSubscribers": bson.M{"$size": "$subscribers"},
		}}},
		{{Key: "$project", Value: bson.M{
			"username":         1,
			"email":            1,
			"fullName":         1,
			"avatar":           1,
			"uploadedVideos":   1,
			"totalVideos":      1,
			"totalViews":       1,
			"totalVideoLikes":  1,
			"subscribers":      1,
			"totalSubscribers": 1,
		}}},
	}
}

// ChannelStats runs the channel statistics aggregation for one user.
func (r *mongoDashboardRepository) ChannelStats(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, channelStatsPipeline(userID))
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

// channelVideosPipeline collects every video owned by the user into a
// single myVideos array.
func channelVideosPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "_id",
			"foreignField": "owner",
			"as":           "myVideos",
		}}},
		{{Key: "$project", Value: bson.M{
			"myVideos": 1,
		}}},
	}
}

// ChannelVideos returns the videos uploaded by the user, one row with a
// myVideos array.
func (r *mongoDashboardRepository) ChannelVideos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, channelVideosPipeline(userID))
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
