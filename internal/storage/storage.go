package storage

import (
	"context"
)

// UploadResult describes an asset that landed on the media host.
type UploadResult struct {
	URL      string  // canonical (secure) URL of the asset
	PublicID string  // host-side identifier, needed for deletion
	Duration float64 // seconds; zero for non-video assets
}

// MediaStorage defines the interface to the external media host.
type MediaStorage interface {
	// Upload pushes a local temporary file to the media host. The temp
	// file is removed whether or not the upload succeeds. A failed
	// upload yields nil; callers must treat nil as the failure signal.
	Upload(ctx context.Context, localPath string) *UploadResult

	// Delete removes an asset from the media host by its public id.
	// Unlike Upload, failures here propagate.
	Delete(ctx context.Context, publicID string) error
}
