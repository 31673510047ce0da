package main

import (
	"log"

	"github.com/avelazco/social-api/internal/config"
	"github.com/avelazco/social-api/internal/database"
	"github.com/avelazco/social-api/internal/handlers"
	"github.com/avelazco/social-api/internal/repository"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	groupService := services.NewGroupService(groupRepo, userRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	postHandler := handlers.NewPostHandler(postService)
	groupHandler := handlers.NewGroupHandler(groupService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Social API is running",
		})
	})

	// User routes (read-only; users are created out-of-band by the seeder)
	r.GET("/user", userHandler.ListUsers)
	r.GET("/user/:id", userHandler.GetUser)

	// Profile routes
	r.GET("/profile", profileHandler.ListProfiles)
	r.GET("/profile/:id", profileHandler.GetProfile)
	r.POST("/profile", profileHandler.CreateProfile)

	// Post routes
	r.GET("/post", postHandler.ListPosts)
	r.POST("/post", postHandler.CreatePost)

	// Group and membership routes
	r.GET("/group", groupHandler.ListGroups)
	r.POST("/group", groupHandler.CreateGroup)
	r.GET("/user_groups", groupHandler.ListMemberships)
	r.POST("/user_group", groupHandler.AddMembership)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
