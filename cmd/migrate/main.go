package main

import (
	"log"

	"github.com/sociable/social-api/config"
	"github.com/sociable/social-api/internal/database"
)

// Standalone migration runner for deployments where the API process should
// not own schema changes.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("migrations applied")
}
