package service

import (
	"context"

	"playtube/video-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardService exposes the channel owner's aggregate stats and
// video inventory.
type DashboardService interface {
	Stats(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
	Videos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(dashboardRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// Stats returns the channel-wide totals for one user.
func (s *dashboardService) Stats(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	return s.dashboardRepo.ChannelStats(ctx, userID)
}

// Videos returns the user's uploaded videos, joined per user document.
func (s *dashboardService) Videos(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	return s.dashboardRepo.ChannelVideos(ctx, userID)
}
