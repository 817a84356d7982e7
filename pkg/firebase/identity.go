package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/services"
)

// IdentityClient implements services.IdentityClient over the Firebase
// Admin SDK, translating provider failures into the shared error
// taxonomy.
type IdentityClient struct {
	auth *auth.Client
}

// NewIdentityClient wraps a Firebase auth client
func NewIdentityClient(authClient *auth.Client) *IdentityClient {
	return &IdentityClient{auth: authClient}
}

// CreateAccount creates a provider account with email, password, and
// display name, returning the new UID.
func (c *IdentityClient) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)

	record, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return "", mapAuthErr("create account", err)
	}
	return record.UID, nil
}

// UpdateProfile updates the provider-side display name and photo URL
func (c *IdentityClient) UpdateProfile(ctx context.Context, uid, name, image string) error {
	params := (&auth.UserToUpdate{}).DisplayName(name)
	if image != "" {
		params = params.PhotoURL(image)
	}
	if _, err := c.auth.UpdateUser(ctx, uid, params); err != nil {
		return mapAuthErr("update profile", err)
	}
	return nil
}

// VerifyIDToken verifies a provider ID token and extracts the identity
func (c *IdentityClient) VerifyIDToken(ctx context.Context, idToken string) (*services.IdentityToken, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperr.NewAuth("invalid-id-token")
	}

	identity := &services.IdentityToken{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Image = picture
	}
	return identity, nil
}

// RevokeSessions revokes the user's refresh tokens
func (c *IdentityClient) RevokeSessions(ctx context.Context, uid string) error {
	if err := c.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		return mapAuthErr("revoke sessions", err)
	}
	return nil
}

// PasswordResetLink returns a provider-generated reset link for the email
func (c *IdentityClient) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := c.auth.PasswordResetLink(ctx, email)
	if err != nil {
		return "", mapAuthErr("password reset link", err)
	}
	return link, nil
}

func mapAuthErr(op string, err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return apperr.NewAuth(apperr.CodeEmailAlreadyInUse)
	case auth.IsUserNotFound(err):
		return apperr.NewAuth(apperr.CodeUserNotFound)
	default:
		return apperr.NewTransient(op, err)
	}
}
