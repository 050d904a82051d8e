package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/insta-shop-sync/internal/migrations"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/pressly/goose/v3"
)

// Migrations are compiled in, so goose only needs a directory that exists.
const migrationsDir = "."

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|status|reset|version]")
	}

	command := os.Args[1]

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		fmt.Println("Migration rollback successful")
	case "status":
		if err := goose.Status(db, migrationsDir); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
	case "reset":
		if err := goose.Reset(db, migrationsDir); err != nil {
			log.Fatalf("Failed to reset migrations: %v", err)
		}
		fmt.Println("All migrations have been rolled back")
	case "version":
		if err := goose.Version(db, migrationsDir); err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
	default:
		log.Fatalf("Unknown command: %s", command)
	}
}
