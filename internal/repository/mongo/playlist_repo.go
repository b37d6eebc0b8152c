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

const playlistCollectionName = "playlists"

// mongoPlaylistRepository implements the repository.PlaylistRepository interface using MongoDB.
type mongoPlaylistRepository struct {
	collection *mongo.Collection
}

// NewMongoPlaylistRepository creates a new instance of mongoPlaylistRepository.
func NewMongoPlaylistRepository(db *mongo.Database) repository.PlaylistRepository {
	return &mongoPlaylistRepository{
		collection: db.Collection(playlistCollectionName),
	}
}

// Create inserts a new playlist document.
func (r *mongoPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error) {
	if playlist.Owner == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("playlist owner is required")
	}

	playlist.ID = primitive.NewObjectID()
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, playlist)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a playlist by its ObjectID.
func (r *mongoPlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// playlistIDFieldFilter is the filter the get-by-id endpoint has always
// used. Known quirk: playlists keep their id under _id, not under a
// "playlistId" field, so the lookup comes back empty and the endpoint
// serves an empty list.
func playlistIDFieldFilter(id primitive.ObjectID) bson.M {
	return bson.M{"playlistId": id}
}

// FindByPlaylistID looks playlists up by the historical "playlistId"
// field filter.
func (r *mongoPlaylistRepository) FindByPlaylistID(ctx context.Context, id primitive.ObjectID) ([]domain.Playlist, error) {
	cursor, err := r.collection.Find(ctx, playlistIDFieldFilter(id))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	playlists := []domain.Playlist{}
	if err = cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// userPlaylistsPipeline joins a user's playlists with their published
// videos and annotates each row with the video total and an isOwner
// flag comparing the requester against the playlist owner.
func userPlaylistsPipeline(owner primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": owner}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "playlistVideos",
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"isPublished": true}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": "$playlistVideos"},
			"isOwner": bson.M{"$cond": bson.M{
				"if":   bson.M{"$eq": bson.A{owner, "$owner"}},
				"then": true,
				"else": false,
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"name":        1,
			"description": 1,
			"totalVideos": 1,
			"createdAt":   1,
			"updatedAt":   1,
			"isOwner":     1,
			"playlistVideos": bson.M{
				"_id":         1,
				"title":       1,
				"description": 1,
				"views":       1,
				"videoFiles":  1,
				"thumbnail":   1,
				"duration":    1,
			},
		}}},
	}
}

// ByOwnerWithVideos returns a user's playlists joined with their
// published videos.
func (r *mongoPlaylistRepository) ByOwnerWithVideos(ctx context.Context, owner primitive.ObjectID) ([]bson.M, error) {
	cursor, err := r.collection.Aggregate(ctx, userPlaylistsPipeline(owner))
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

// SetVideos replaces the playlist's whole videos array and returns the
// updated document.
func (r *mongoPlaylistRepository) SetVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) (*domain.Playlist, error) {
	if videos == nil {
		videos = []primitive.ObjectID{}
	}
	update := bson.M{
		"$set": bson.M{
			"videos":    videos,
			"updatedAt": time.Now().UTC(),
		},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// UpdateDetails replaces a playlist's name and description.
func (r *mongoPlaylistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Playlist, error) {
	update := bson.M{
		"$set": bson.M{
			"name":        name,
			"description": description,
			"updatedAt":   time.Now().UTC(),
		},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *mongoPlaylistRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist domain.Playlist
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// Delete removes a playlist document and returns the removed document.
func (r *mongoPlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// EnsurePlaylistIndexes creates necessary indexes for the playlists collection.
func EnsurePlaylistIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
