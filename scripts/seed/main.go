package main

import (
	"context"
	"log"

	"github.com/tubenotes/tubenotes/internal/adapter/repository"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
	"github.com/tubenotes/tubenotes/internal/infrastructure/database"
	"github.com/tubenotes/tubenotes/pkg/config"
)

// Seeds the default format templates into an empty store. A no-op when any
// template already exists, so it is safe to run repeatedly.
func main() {
	log.Println("🌱 Seeding default format templates...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	repo := repository.NewTemplateRepository(db)

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list templates: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("✅ Store already has %d template(s), nothing to do", len(existing))
		return
	}

	defaults := entities.DefaultTemplates()
	if err := repo.InsertDefaults(ctx, defaults); err != nil {
		log.Fatalf("Failed to insert default templates: %v", err)
	}

	log.Printf("✅ Seeded %d default template(s)!", len(defaults))
}
