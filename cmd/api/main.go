package main

import (
	"context"
	"log"

	"github.com/PeterSoManLung/FindDinning-sub001/config"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/database"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/server"
)

func main() {
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

	redisClient, err := database.NewRedisClient(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to redis", "error", err)
	}

	// Load the mood knowledge tables, applying the S3-hosted override when
	// one is configured. A missing asset falls back to the built-in tables.
	ctx := context.Background()
	s3cfg, err := config.NewS3Config(ctx, cfg.KnowledgeBucket)
	if err != nil {
		zlog.Warn("knowledge bucket unavailable, using built-in tables", "error", err)
	}
	mappings, err := knowledge.LoadMoodMappings(ctx, s3cfg, cfg.KnowledgeKey)
	if err != nil {
		zlog.Warn("knowledge asset not loaded, using built-in tables", "error", err)
	}

	srv := server.New(db, redisClient, mappings, cfg, zlog)
	if err := srv.Start(cfg.ServerPort); err != nil {
		zlog.Fatal("server shutdown failed", "error", err)
	}
	zlog.Info("server stopped")
}
