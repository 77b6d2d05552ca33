package main

import (
	"context"
	"log"

	"github.com/rdSoftInc/DevConnect/internal/config"
	"github.com/rdSoftInc/DevConnect/internal/mock"
	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"
	"github.com/rdSoftInc/DevConnect/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokens := utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)

	seeder := &mock.Seeder{
		Auth:     services.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, nil),
		Users:    userRepo,
		Profiles: services.NewProfileService(repository.NewProfileRepository(db), userRepo, nil),
		Posts:    services.NewPostService(repository.NewPostRepository(db), userRepo, nil),
	}
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed complete")
}
