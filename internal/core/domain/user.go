package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")

// User is an anonymous forum identity. The 10-digit UserID is the only
// credential: whoever knows it can log in as this user and rename it.
type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Username  string             `json:"username" bson:"username"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	LastLogin time.Time          `json:"lastLogin" bson:"lastLogin"`
}
