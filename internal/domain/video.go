package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is an uploaded video. The media files themselves live on the
// external media host; only their URLs are stored here.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFiles  string             `bson:"videoFiles" json:"videoFiles"` // URL on the media host
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`   // URL on the media host
	Duration    float64            `bson:"duration" json:"duration"`     // Seconds, derived at upload time
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Views       int64              `bson:"views" json:"views"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
