package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrPostNotFound = errors.New("post not found")

// Reply is embedded in its parent post and is never addressable on its own.
// Username is a snapshot of the author's display name at creation time; it is
// not updated when the author later renames.
type Reply struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	AuthorID  string             `json:"authorId" bson:"authorId"`
	Username  string             `json:"username" bson:"username"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Post is a top-level forum entry. Replies is append-only: entries keep
// insertion order and are never reordered or removed. AuthorID loosely
// references User.UserID with no referential integrity.
type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	AuthorID  string             `json:"authorId" bson:"authorId"`
	Username  string             `json:"username" bson:"username"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Replies   []Reply            `json:"replies" bson:"replies"`
}
