package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/router"
	"github.com/snapgram/backend/pkg/config"
	"github.com/snapgram/backend/pkg/firebase"
	"github.com/snapgram/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the document store connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.Init(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Mongo, firebaseApp.AuthClient, firebaseApp.Identity)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
