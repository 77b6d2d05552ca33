package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rdSoftInc/DevConnect/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		if err := config.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("migration succeeded")

	case "down":
		// posts and profiles reference users, so they go first
		if err := config.Drop(db); err != nil {
			log.Fatalf("dropping tables failed: %v", err)
		}
		fmt.Println("tables dropped")

	default:
		log.Fatalf("unknown command: %s", command)
	}
}
