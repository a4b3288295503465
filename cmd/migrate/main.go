package main

import (
	"context"
	"flag"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

func main() {
	action := flag.String("action", "up", "migration direction: up or down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(context.Background(), cfg.DB, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch *action {
	case "up":
		err = database.RunMigrations(db.DB)
	case "down":
		err = database.RollbackMigrations(db.DB)
	default:
		l.Fatal("Unknown migration action", zap.String("action", *action))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("action", *action), zap.Error(err))
	}
	l.Info("Migrations finished", zap.String("action", *action))
}
