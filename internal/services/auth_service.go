package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/repositories"
)

// IdentityToken is the decoded result of a verified provider ID token.
type IdentityToken struct {
	UID   string
	Email string
	Name  string
	Image string
}

// IdentityClient abstracts the external identity provider. The real
// implementation wraps the Firebase Admin SDK; provider failures are
// surfaced as apperr.AuthError with the mapped code.
type IdentityClient interface {
	CreateAccount(ctx context.Context, email, password, name string) (uid string, err error)
	UpdateProfile(ctx context.Context, uid, name, image string) error
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityToken, error)
	RevokeSessions(ctx context.Context, uid string) error
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// AuthService coordinates the identity provider and the user profile
// collection, and issues local session tokens after provider
// verification.
type AuthService struct {
	identity IdentityClient
	users    repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService signing session tokens with
// the given secret.
func NewAuthService(identity IdentityClient, users repositories.UserRepository, secret string) *AuthService {
	return &AuthService{
		identity: identity,
		users:    users,
		secret:   []byte(secret),
		tokenTTL: 72 * time.Hour,
	}
}

// SignUp creates the provider account and the matching user document
// with empty follower, following, and post sets.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	uid, err := s.identity.CreateAccount(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UID:       uid,
		Name:      name,
		Email:     email,
		Followers: []string{},
		Following: []string{},
		Posts:     []string{},
		CreatedAt: time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies a provider ID token and exchanges it for a local
// session token. A missing profile document is created on the fly so
// accounts that predate the users collection still resolve.
func (s *AuthService) SignIn(ctx context.Context, idToken string) (string, *models.User, error) {
	token, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.GetUser(ctx, token.UID)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return "", nil, err
		}
		user = &models.User{
			UID:       token.UID,
			Name:      token.Name,
			Email:     token.Email,
			Image:     token.Image,
			Followers: []string{},
			Following: []string{},
			Posts:     []string{},
			CreatedAt: time.Now(),
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return "", nil, err
		}
	}

	session, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return session, user, nil
}

// SignOut revokes the user's provider sessions. Session tokens already
// issued expire on their own.
func (s *AuthService) SignOut(ctx context.Context, uid string) error {
	return s.identity.RevokeSessions(ctx, uid)
}

// ResetPassword returns a provider-generated password reset link for
// the email.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (string, error) {
	return s.identity.PasswordResetLink(ctx, email)
}

// UpdateProfile updates the provider profile and the user document.
// Posts created before the update keep the old denormalized name and
// avatar.
func (s *AuthService) UpdateProfile(ctx context.Context, uid, name, image string) (*models.User, error) {
	if err := s.identity.UpdateProfile(ctx, uid, name, image); err != nil {
		return nil, err
	}
	if err := s.users.UpdateProfile(ctx, uid, name, image); err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, uid)
}

// ParseSession validates a session token and returns its claims.
func (s *AuthService) ParseSession(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.NewAuth("invalid-session")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.NewAuth("invalid-session")
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	claims := &models.SessionClaims{
		UID:   user.UID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperr.NewTransient("sign session token", err)
	}
	return signed, nil
}
