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

const videoCollectionName = "videos"

// mongoVideoRepository implements the repository.VideoRepository interface using MongoDB.
type mongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new instance of mongoVideoRepository.
func NewMongoVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &mongoVideoRepository{
		collection: db.Collection(videoCollectionName),
	}
}

// Create inserts a new video document.
func (r *mongoVideoRepository) Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error) {
	if video.Owner == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("video owner is required")
	}

	video.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, video)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a video by its ObjectID.
func (r *mongoVideoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// videoListQuery builds the match document for the video listing.
func videoListQuery(filter repository.VideoListFilter) bson.M {
	query := bson.M{}
	if filter.Query != "" {
		regex := primitive.Regex{Pattern: filter.Query, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": regex}},
			bson.M{"description": bson.M{"$regex": regex}},
		}
	}
	if filter.Owner != nil {
		query["owner"] = *filter.Owner
	}
	return query
}

// videoListSort builds the sort document. The sort field is whatever
// the caller supplied; only the empty value gets a default.
func videoListSort(filter repository.VideoListFilter) bson.D {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := -1
	if filter.SortAsc {
		order = 1
	}
	return bson.D{{Key: sortBy, Value: order}}
}

// List returns one page of videos matching the filter plus the total
// number of matches.
func (r *mongoVideoRepository) List(ctx context.Context, filter repository.VideoListFilter) ([]domain.Video, int64, error) {
	query := videoListQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSkip((filter.Page - 1) * filter.Limit).
		SetLimit(filter.Limit).
		SetSort(videoListSort(filter))

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// UpdateMedia replaces the stored media URLs and duration of a video.
func (r *mongoVideoRepository) UpdateMedia(ctx context.Context, id primitive.ObjectID, videoURL string, duration float64, thumbnailURL string) (*domain.Video, error) {
	update := bson.M{
		"$set": bson.M{
			"videoFiles": videoURL,
			"duration":   duration,
			"thumbnail":  thumbnailURL,
			"updatedAt":  time.Now().UTC(),
		},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// SetPublished sets the publish flag of a video.
func (r *mongoVideoRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*domain.Video, error) {
	update := bson.M{
		"$set": bson.M{
			"isPublished": published,
			"updatedAt":   time.Now().UTC(),
		},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *mongoVideoRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video domain.Video
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// Delete removes a video document and returns the removed document.
func (r *mongoVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// EnsureVideoIndexes creates necessary indexes for the videos collection.
func EnsureVideoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
