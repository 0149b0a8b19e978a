package main

import (
	"context"
	"log"
	"os"

	"aurora-store/internal/config"
	"aurora-store/internal/db"
	productrepo "aurora-store/internal/repository/product"
	"aurora-store/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, repo); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
