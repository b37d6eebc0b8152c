package storage

import (
	"context"
	"os"

	"playtube/video-app/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// cloudinaryStorage implements the MediaStorage interface against Cloudinary.
type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a new Cloudinary-backed media storage service.
func NewCloudinaryStorage(cfg config.CloudinaryConfig) (MediaStorage, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary")
	}

	logrus.WithField("cloud", cfg.CloudName).Info("media storage initialized")
	return &cloudinaryStorage{cld: cld}, nil
}

// Upload pushes the file at localPath to Cloudinary with auto-detected
// resource type. The local file is removed on both the success and the
// failure path; an upload failure is logged and surfaces as a nil
// result rather than an error.
func (s *cloudinaryStorage) Upload(ctx context.Context, localPath string) *UploadResult {
	if localPath == "" {
		return nil
	}
	defer func() {
		if err := os.Remove(localPath); err != nil {
			logrus.WithError(err).WithField("path", localPath).Warn("failed to remove temp file")
		}
	}()

	// Probe before the file disappears; the host derives the same
	// number but only exposes it reliably for video resource types.
	duration := probeDuration(localPath)

	resp, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil || resp == nil || resp.SecureURL == "" {
		logrus.WithError(err).WithField("path", localPath).Error("media upload failed")
		return nil
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Duration: duration,
	}
}

// Delete removes an asset by public id. The resource type must be
// named explicitly; "auto" is not accepted on deletion.
func (s *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "video",
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete media asset")
	}
	return nil
}

// probeDuration reads the container duration of a local media file via
// ffprobe. Non-media files simply probe to zero.
func probeDuration(path string) float64 {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0
	}
	return gjson.Get(out, "format.duration").Float()
}
