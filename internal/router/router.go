package router

import (
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/snapgram/backend/internal/handlers"
	"github.com/snapgram/backend/internal/middleware"
	"github.com/snapgram/backend/internal/repositories"
	"github.com/snapgram/backend/internal/services"
	"github.com/snapgram/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client, firebaseAuthClient *fbauth.Client, identity services.IdentityClient) {
	db := mgClient.Database(cfg.MongoDatabase)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)

	// --- Services ---
	authService := services.NewAuthService(identity, userRepo, cfg.JWTSecret)
	relationshipService := services.NewRelationshipService(userRepo)
	postService := services.NewPostService(postRepo, userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes ---
	api := e.Group("/api/v1")
	if cfg.AuthMode == "firebase" {
		// Clients send provider ID tokens directly
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
		log.Println("Firebase ID-token middleware applied to /api/v1 group.")
	} else {
		api.Use(middleware.SessionAuthMiddleware(authService))
		log.Println("Session authentication middleware applied to /api/v1 group.")
	}
	authHandler.RegisterSessionRoutes(api)

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, authService)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postService, userRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(relationshipService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(postService, userRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(postService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}
