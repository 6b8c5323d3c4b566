//go:build ignore

// seed_catalog writes a catalogue into PostgreSQL so the API can run with
// CATALOG_SOURCE=postgres.
//
//	go run scripts/seed_catalog.go [-name islet] [-file catalog.json]
//
// Without -file the built-in catalogue is seeded. Connection settings come from
// the same DB_* variables the API reads.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"islet-durians/internal/catalog"
	"islet-durians/internal/config"
	"islet-durians/internal/database"
	"islet-durians/internal/repository"
)

func main() {
	name := flag.String("name", "islet", "catalogue name")
	file := flag.String("file", "", "catalogue JSON file (.json or .json.gz); defaults to the built-in catalogue")
	flag.Parse()

	if err := run(*name, *file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(name, file string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	src := catalog.Default()
	if file != "" {
		src, err = catalog.NewFileLoader(logger).Load(ctx, file)
		if err != nil {
			return err
		}
	}

	// Refuse to seed a catalogue the API would reject.
	c, issues, err := catalog.Build(src)
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Printf("warning: %s %s: %s\n", issue.Product, issue.Size, issue.Kind)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger, database.ApplicationName("islet-durians-seed"))
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewCatalogRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.Seed(ctx, name, src); err != nil {
		return err
	}

	fmt.Printf("Seeded catalogue %q with %d products (%d issues)\n", name, c.Len(), len(issues))
	return nil
}
