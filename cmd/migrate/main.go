package main

import (
	"flag"
	"log"

	"github.com/PeterSoManLung/FindDinning-sub001/config"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/database"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing .sql migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(string(config.GetEnvironment()))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", "error", err)
	}

	if err := database.RunMigrations(db, *dir, zlog); err != nil {
		zlog.Fatal("failed to apply migrations", "error", err)
	}
	zlog.Info("all migrations applied")
}
