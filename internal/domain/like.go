package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeTargetKind names the kind of entity a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is a tagged reference to exactly one likeable entity.
// Constructing a Like through NewLike keeps the "exactly one target"
// invariant out of reach of callers.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   primitive.ObjectID
}

func VideoTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeTargetVideo, ID: id}
}

func CommentTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeTargetComment, ID: id}
}

func TweetTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeTargetTweet, ID: id}
}

// Field returns the document field the target is stored under. The
// read-side $lookup stages join likes on these field names.
func (t LikeTarget) Field() string {
	return string(t.Kind)
}

// Like records that a user liked exactly one of a video, a comment or a
// tweet. On disk the target is spread over three optional references so
// aggregation joins on "video"/"comment"/"tweet" stay flat; in code the
// target is only ever set through NewLike.
type Like struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Video     *primitive.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *primitive.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	Tweet     *primitive.ObjectID `bson:"tweet,omitempty" json:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// NewLike builds a Like for the given target, setting exactly one of
// the three reference fields.
func NewLike(target LikeTarget, likedBy primitive.ObjectID) *Like {
	l := &Like{LikedBy: likedBy}
	id := target.ID
	switch target.Kind {
	case LikeTargetVideo:
		l.Video = &id
	case LikeTargetComment:
		l.Comment = &id
	case LikeTargetTweet:
		l.Tweet = &id
	}
	return l
}

// Target reconstructs the tagged target from the stored shape.
func (l *Like) Target() (LikeTarget, bool) {
	switch {
	case l.Video != nil:
		return VideoTarget(*l.Video), true
	case l.Comment != nil:
		return CommentTarget(*l.Comment), true
	case l.Tweet != nil:
		return TweetTarget(*l.Tweet), true
	}
	return LikeTarget{}, false
}
