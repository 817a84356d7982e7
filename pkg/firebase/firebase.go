// Package firebase wires the Firebase Admin SDK: app initialization
// and the identity-provider adapter used by the auth service.
package firebase

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app, its auth client, and the
// identity adapter built on top of it.
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
	Identity    *IdentityClient
}

// Init initializes the Firebase application and authentication client
// from a service-account credentials file.
func Init(ctx context.Context, credentialsPath string) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	firebaseApp, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	log.Println("Firebase app and auth client initialized.")
	return &App{
		FirebaseApp: firebaseApp,
		AuthClient:  authClient,
		Identity:    NewIdentityClient(authClient),
	}, nil
}
