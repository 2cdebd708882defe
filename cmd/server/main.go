package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"ai-pictionary/internal/config"
	"ai-pictionary/internal/db"
	"ai-pictionary/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Printf("running without database: %v", err)
		conn = nil
	} else {
		if err := db.ConfigurePool(conn,
			cfg.DBMaxOpenConns,
			cfg.DBMaxIdleConns,
			time.Duration(cfg.DBConnMaxLifetimeSeconds)*time.Second,
			time.Duration(cfg.DBConnMaxIdleTimeSeconds)*time.Second,
		); err != nil {
			log.Fatalf("failed to configure connection pool: %v", err)
		}
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	srv := server.New(conn, cfg)
	if err := srv.RestoreGames(); err != nil {
		log.Printf("failed to restore games: %v", err)
	}

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}
	log.Printf("ai-pictionary server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
