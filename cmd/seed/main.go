package main

import (
	"flag"
	"log"

	"github.com/avelazco/social-api/internal/config"
	"github.com/avelazco/social-api/internal/database"
	"github.com/avelazco/social-api/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 8, "Number of users to create")
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	numGroups := flag.Int("groups", 3, "Number of groups to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	s := seed.NewSeeder(database.GetDB())

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *numPosts, *numGroups); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d posts, %d groups", *numUsers, *numPosts, *numGroups)
	log.Println("All seeded users have the password: password123")
}
