package api

import (
	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full API surface under /api/v1.
// Healthcheck and auth are open; everything else sits behind the JWT
// middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	uploadTempDir string,
	authService service.AuthService,
	commentService service.CommentService,
	dashboardService service.DashboardService,
	likeService service.LikeService,
	playlistService service.PlaylistService,
	subscriptionService service.SubscriptionService,
	tweetService service.TweetService,
	videoService service.VideoService,
) {
	authHandler := NewAuthHandler(authService)
	commentHandler := NewCommentHandler(commentService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	likeHandler := NewLikeHandler(likeService)
	playlistHandler := NewPlaylistHandler(playlistService)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService)
	tweetHandler := NewTweetHandler(tweetService)
	videoHandler := NewVideoHandler(videoService, uploadTempDir)

	authMiddleware := AuthMiddleware(jwtSecret)

	apiV1 := router.Group("/api/v1")

	apiV1.GET("/healthcheck", Healthcheck)

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		commentGroup := protected.Group("/comments")
		{
			commentGroup.GET("/:videoId", commentHandler.List)
			commentGroup.POST("/:videoId", commentHandler.Add)
			commentGroup.PATCH("/c/:commentId", commentHandler.Update)
			commentGroup.DELETE("/c/:commentId", commentHandler.Delete)
		}

		dashboardGroup := protected.Group("/dashboard")
		{
			dashboardGroup.GET("/stats", dashboardHandler.Stats)
			dashboardGroup.GET("/videos", dashboardHandler.Videos)
		}

		likeGroup := protected.Group("/likes")
		{
			likeGroup.POST("/toggle/v/:videoId", likeHandler.ToggleVideo)
			likeGroup.POST("/toggle/c/:commentId", likeHandler.ToggleComment)
			likeGroup.POST("/toggle/t/:tweetId", likeHandler.ToggleTweet)
			likeGroup.GET("/videos", likeHandler.LikedVideos)
		}

		playlistGroup := protected.Group("/playlists")
		{
			playlistGroup.POST("", playlistHandler.Create)
			playlistGroup.GET("/user/:userId", playlistHandler.UserPlaylists)
			playlistGroup.GET("/:playlistId", playlistHandler.GetByID)
			playlistGroup.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
			playlistGroup.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
			playlistGroup.DELETE("/:playlistId", playlistHandler.Delete)
			playlistGroup.PATCH("/:playlistId", playlistHandler.Update)
		}

		subscriptionGroup := protected.Group("/subscriptions")
		{
			subscriptionGroup.POST("/c/:channelId", subscriptionHandler.Toggle)
			subscriptionGroup.GET("/c/:channelId", subscriptionHandler.Subscribers)
			subscriptionGroup.GET("/u/:subscriberId", subscriptionHandler.SubscribedChannels)
		}

		tweetGroup := protected.Group("/tweets")
		{
			tweetGroup.POST("", tweetHandler.Create)
			tweetGroup.GET("/user", tweetHandler.ListByUser)
			tweetGroup.GET("/user/:userId", tweetHandler.ListByUser)
			tweetGroup.PATCH("/:tweetId", tweetHandler.Update)
			tweetGroup.DELETE("/:tweetId", tweetHandler.Delete)
		}

		videoGroup := protected.Group("/videos")
		{
			videoGroup.GET("", videoHandler.List)
			videoGroup.POST("", videoHandler.Publish)
			videoGroup.GET("/:videoId", videoHandler.GetByID)
			videoGroup.PATCH("/:videoId", videoHandler.UpdateMedia)
			videoGroup.DELETE("/:videoId", videoHandler.Delete)
			videoGroup.PATCH("/toggle/publish/:videoId", videoHandler.TogglePublish)
		}
	}
}
