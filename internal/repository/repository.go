package repository

import (
	"context"

	"playtube/video-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// VideoListFilter describes the search, sort and pagination options of
// the video listing endpoint.
type VideoListFilter struct {
	Page    int64
	Limit   int64
	Query   string // case-insensitive substring over title/description
	SortBy  string
	SortAsc bool
	Owner   *primitive.ObjectID
}

// VideoRepository defines the interface for interacting with video data.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	// List returns one page of videos plus the total number of matches.
	List(ctx context.Context, filter VideoListFilter) ([]domain.Video, int64, error)
	UpdateMedia(ctx context.Context, id primitive.ObjectID, videoURL string, duration float64, thumbnailURL string) (*domain.Video, error)
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*domain.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
}

// CommentRepository defines the interface for interacting with comment data.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	// ListByVideo returns one page of a video's comments, newest first.
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) ([]domain.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error)
	// Delete reports how many documents were removed. See the mongo
	// implementation for the filter quirk that makes this count zero.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TweetRepository defines the interface for interacting with tweet data.
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Tweet, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// LikeRepository defines the interface for interacting with like data.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) (primitive.ObjectID, error)
	FindByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) (*domain.Like, error)
	DeleteByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) error
	// LikedVideos returns the denormalized liked-video listing rows.
	LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]bson.M, error)
}

// PlaylistRepository defines the interface for interacting with playlist data.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
	// FindByPlaylistID looks playlists up by a "playlistId" document
	// field; see the mongo implementation for why this returns nothing.
	FindByPlaylistID(ctx context.Context, id primitive.ObjectID) ([]domain.Playlist, error)
	// ByOwnerWithVideos returns a user's playlists joined with their
	// published videos, annotated with totals and ownership.
	ByOwnerWithVideos(ctx context.Context, owner primitive.ObjectID) ([]bson.M, error)
	SetVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) (*domain.Playlist, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
}

// SubscriptionRepository defines the interface for interacting with subscription data.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error)
	FindByPair(ctx context.Context, subscriber, channel primitive.ObjectID) (*domain.Subscription, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// ChannelSubscribers groups a channel's subscriptions with the
	// joined subscriber users and a total count.
	ChannelSubscribers(ctx context.Context, channel primitive.ObjectID) ([]bson.M, error)
	// SubscribedChannels lists the channels a user subscribed to with
	// selected channel fields joined in.
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]bson.M, error)
}

// DashboardRepository runs the channel statistics aggregations. They
// are rooted in the users collection.
type DashboardRepository interface {
	ChannelStats(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
	ChannelVideos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
}
