package service

import (
	"context"

	"playtube/video-app/internal/domain"
	"playtube/video-app/internal/repository"
	"playtube/video-app/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stateful in-memory repository fakes. They implement just enough of
// each interface for the service tests; unused methods return zero
// values.

type mockVideoRepo struct {
	videos map[primitive.ObjectID]*domain.Video
}

func newMockVideoRepo() *mockVideoRepo {
	return &mockVideoRepo{videos: make(map[primitive.ObjectID]*domain.Video)}
}

func (m *mockVideoRepo) Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *video
	stored.ID = id
	m.videos[id] = &stored
	return id, nil
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	video, ok := m.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *video
	return &copied, nil
}

func (m *mockVideoRepo) List(ctx context.Context, filter repository.VideoListFilter) ([]domain.Video, int64, error) {
	videos := make([]domain.Video, 0, len(m.videos))
	for _, v := range m.videos {
		videos = append(videos, *v)
	}
	return videos, int64(len(videos)), nil
}

func (m *mockVideoRepo) UpdateMedia(ctx context.Context, id primitive.ObjectID, videoURL string, duration float64, thumbnailURL string) (*domain.Video, error) {
	video, ok := m.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	video.VideoFiles = videoURL
	video.Duration = duration
	video.Thumbnail = thumbnailURL
	copied := *video
	return &copied, nil
}

func (m *mockVideoRepo) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*domain.Video, error) {
	video, ok := m.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	video.IsPublished = published
	copied := *video
	return &copied, nil
}

func (m *mockVideoRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	video, ok := m.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.videos, id)
	return video, nil
}

type mockCommentRepo struct {
	comments map[primitive.ObjectID]*domain.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[primitive.ObjectID]*domain.Comment)}
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *comment
	stored.ID = id
	m.comments[id] = &stored
	return id, nil
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (m *mockCommentRepo) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, c := range m.comments {
		if c.Video == videoID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	comment.Content = content
	copied := *comment
	return &copied, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	// Mirrors the production filter quirk: nothing matches.
	return 0, nil
}

type mockTweetRepo struct {
	tweets map[primitive.ObjectID]*domain.Tweet
}

func newMockTweetRepo() *mockTweetRepo {
	return &mockTweetRepo{tweets: make(map[primitive.ObjectID]*domain.Tweet)}
}

func (m *mockTweetRepo) Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *tweet
	stored.ID = id
	m.tweets[id] = &stored
	return id, nil
}

func (m *mockTweetRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error) {
	tweet, ok := m.tweets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *tweet
	return &copied, nil
}

func (m *mockTweetRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	for _, tw := range m.tweets {
		if tw.Owner == owner {
			tweets = append(tweets, *tw)
		}
	}
	return tweets, nil
}

func (m *mockTweetRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Tweet, error) {
	tweet, ok := m.tweets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tweet.Content = content
	copied := *tweet
	return &copied, nil
}

func (m *mockTweetRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}

type likeKey struct {
	field   string
	id      primitive.ObjectID
	likedBy primitive.ObjectID
}

type mockLikeRepo struct {
	likes map[likeKey]*domain.Like
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[likeKey]*domain.Like)}
}

func (m *mockLikeRepo) Create(ctx context.Context, like *domain.Like) (primitive.ObjectID, error) {
	target, ok := like.Target()
	if !ok {
		return primitive.NilObjectID, repository.ErrUpdateFailed
	}
	id := primitive.NewObjectID()
	stored := *like
	stored.ID = id
	m.likes[likeKey{target.Field(), target.ID, like.LikedBy}] = &stored
	return id, nil
}

func (m *mockLikeRepo) FindByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) (*domain.Like, error) {
	like, ok := m.likes[likeKey{target.Field(), target.ID, likedBy}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *like
	return &copied, nil
}

func (m *mockLikeRepo) DeleteByTarget(ctx context.Context, target domain.LikeTarget, likedBy primitive.ObjectID) error {
	delete(m.likes, likeKey{target.Field(), target.ID, likedBy})
	return nil
}

func (m *mockLikeRepo) LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]bson.M, error) {
	return []bson.M{}, nil
}

type mockPlaylistRepo struct {
	playlists map[primitive.ObjectID]*domain.Playlist
}

func newMockPlaylistRepo() *mockPlaylistRepo {
	return &mockPlaylistRepo{playlists: make(map[primitive.ObjectID]*domain.Playlist)}
}

func (m *mockPlaylistRepo) Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *playlist
	stored.ID = id
	m.playlists[id] = &stored
	return id, nil
}

func (m *mockPlaylistRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	playlist, ok := m.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *playlist
	copied.Videos = append([]primitive.ObjectID(nil), playlist.Videos...)
	return &copied, nil
}

func (m *mockPlaylistRepo) FindByPlaylistID(ctx context.Context, id primitive.ObjectID) ([]domain.Playlist, error) {
	// Mirrors the production field filter quirk: nothing matches.
	return []domain.Playlist{}, nil
}

func (m *mockPlaylistRepo) ByOwnerWithVideos(ctx context.Context, owner primitive.ObjectID) ([]bson.M, error) {
	var rows []bson.M
	for _, p := range m.playlists {
		if p.Owner == owner {
			rows = append(rows, bson.M{"name": p.Name})
		}
	}
	return rows, nil
}

func (m *mockPlaylistRepo) SetVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) (*domain.Playlist, error) {
	playlist, ok := m.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	playlist.Videos = append([]primitive.ObjectID(nil), videos...)
	copied := *playlist
	copied.Videos = append([]primitive.ObjectID(nil), playlist.Videos...)
	return &copied, nil
}

func (m *mockPlaylistRepo) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Playlist, error) {
	playlist, ok := m.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	playlist.Name = name
	playlist.Description = description
	copied := *playlist
	return &copied, nil
}

func (m *mockPlaylistRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	playlist, ok := m.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.playlists, id)
	return playlist, nil
}

type subscriptionKey struct {
	subscriber primitive.ObjectID
	channel    primitive.ObjectID
}

type mockSubscriptionRepo struct {
	subscriptions map[subscriptionKey]*domain.Subscription
}

func newMockSubscriptionRepo() *mockSubscriptionRepo {
	return &mockSubscriptionRepo{subscriptions: make(map[subscriptionKey]*domain.Subscription)}
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *sub
	stored.ID = id
	m.subscriptions[subscriptionKey{sub.Subscriber, sub.Channel}] = &stored
	return id, nil
}

func (m *mockSubscriptionRepo) FindByPair(ctx context.Context, subscriber, channel primitive.ObjectID) (*domain.Subscription, error) {
	sub, ok := m.subscriptions[subscriptionKey{subscriber, channel}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *sub
	return &copied, nil
}

func (m *mockSubscriptionRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	for key, sub := range m.subscriptions {
		if sub.ID == id {
			delete(m.subscriptions, key)
			return nil
		}
	}
	return repository.ErrDeleteFailed
}

func (m *mockSubscriptionRepo) ChannelSubscribers(ctx context.Context, channel primitive.ObjectID) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (m *mockSubscriptionRepo) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]bson.M, error) {
	return []bson.M{}, nil
}

// mockMediaStorage returns canned upload results keyed by local path;
// unknown paths fail the upload, like the real adapter does.
type mockMediaStorage struct {
	uploads map[string]*storage.UploadResult
	deleted []string
	failAll bool
}

func newMockMediaStorage() *mockMediaStorage {
	return &mockMediaStorage{uploads: make(map[string]*storage.UploadResult)}
}

func (m *mockMediaStorage) Upload(ctx context.Context, localPath string) *storage.UploadResult {
	if m.failAll {
		return nil
	}
	return m.uploads[localPath]
}

func (m *mockMediaStorage) Delete(ctx context.Context, publicID string) error {
	m.deleted = append(m.deleted, publicID)
	return nil
}
