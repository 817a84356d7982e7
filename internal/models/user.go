package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the profile document stored in the "users" collection,
// keyed by the identity provider UID. Followers and Following hold
// the mirrored sides of every follow edge: A follows B exactly when
// B is in A.Following and A is in B.Followers.
type User struct {
	UID       string    `json:"uid" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Followers []string  `json:"followers" bson:"followers"`
	Following []string  `json:"following" bson:"following"`
	Posts     []string  `json:"posts" bson:"posts"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// SignUpRequest defines the request body for creating an account
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
}

// SignInRequest carries the provider ID token obtained by the client
// after password sign-in; the server exchanges it for a session token.
type SignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// ResetPasswordRequest defines the request body for a password reset
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest defines the request body for editing a profile
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Image string `json:"image,omitempty" validate:"omitempty,url"`
}

// SessionClaims are custom claims extending standard jwt.RegisteredClaims
type SessionClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
