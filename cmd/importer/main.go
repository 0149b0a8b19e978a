package main

import (
	"context"
	"flag"
	"log"
	"os"

	"aurora-store/internal/config"
	"aurora-store/internal/db"
	"aurora-store/internal/importer"
	productrepo "aurora-store/internal/repository/product"
)

func main() {
	path := flag.String("file", "", "path to catalog CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatal("missing -file argument")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imported, err := importer.NewCSVImporter(f, repo).Run(ctx)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}

	logger.Printf("imported %d products", imported)
}
