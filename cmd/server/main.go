package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playtube/video-app/internal/api"
	"playtube/video-app/internal/config"
	"playtube/video-app/internal/repository/mongo"
	"playtube/video-app/internal/service"
	"playtube/video-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Starting PlayTube server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("Could not load config")
	}
	logrus.Info("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer func() {
		logrus.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure user indexes")
		}
		if err := mongo.EnsureVideoIndexes(ctx, appDB.Collection("videos")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure video indexes")
		}
		if err := mongo.EnsureCommentIndexes(ctx, appDB.Collection("comments")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure comment indexes")
		}
		if err := mongo.EnsureTweetIndexes(ctx, appDB.Collection("tweets")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure tweet indexes")
		}
		if err := mongo.EnsureLikeIndexes(ctx, appDB.Collection("likes")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure like indexes")
		}
		if err := mongo.EnsurePlaylistIndexes(ctx, appDB.Collection("playlists")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure playlist indexes")
		}
		if err := mongo.EnsureSubscriptionIndexes(ctx, appDB.Collection("subscriptions")); err != nil {
			logrus.WithError(err).Warn("Failed to ensure subscription indexes")
		}
		logrus.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	logrus.Info("Initializing media storage...")
	if err := os.MkdirAll(cfg.Upload.TempDir, 0o755); err != nil {
		logrus.WithError(err).Fatal("Failed to create upload temp directory")
	}
	mediaStorage, err := storage.NewCloudinaryStorage(cfg.Cloudinary)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize Cloudinary storage")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)
	commentRepo := mongo.NewMongoCommentRepository(appDB)
	tweetRepo := mongo.NewMongoTweetRepository(appDB)
	likeRepo := mongo.NewMongoLikeRepository(appDB)
	playlistRepo := mongo.NewMongoPlaylistRepository(appDB)
	subscriptionRepo := mongo.NewMongoSubscriptionRepository(appDB)
	dashboardRepo := mongo.NewMongoDashboardRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	videoService := service.NewVideoService(videoRepo, mediaStorage)
	commentService := service.NewCommentService(commentRepo)
	tweetService := service.NewTweetService(tweetRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(api.ErrorEnvelope())

	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		cfg.Upload.TempDir,
		authService,
		commentService,
		dashboardService,
		likeService,
		playlistService,
		subscriptionService,
		tweetService,
		videoService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.WithField("address", cfg.Server.Address).Info("Server starting")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exiting.")
}
