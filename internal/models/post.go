package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a feed entry stored in the "posts" collection.
// Username and UserAvatar are captured from the author at creation
// time and are not updated when the profile later changes.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string             `json:"user_id" bson:"user_id"`
	Username   string             `json:"username" bson:"username"`
	UserAvatar string             `json:"user_avatar,omitempty" bson:"user_avatar,omitempty"`
	ImageURL   string             `json:"image_url" bson:"image_url"`
	Caption    string             `json:"caption,omitempty" bson:"caption,omitempty"`
	Location   string             `json:"location,omitempty" bson:"location,omitempty"`
	Likes      []string           `json:"likes" bson:"likes"`
	Comments   []Comment          `json:"comments" bson:"comments"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// Comment is an append-only sub-record of a Post. The ID is generated
// client-side from a timestamp plus a random suffix.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Caption  string `json:"caption,omitempty" validate:"omitempty,max=2200"`
	Location string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
