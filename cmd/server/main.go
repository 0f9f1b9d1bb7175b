package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ecaretag/internal/classifier"
	"ecaretag/internal/config"
	"ecaretag/internal/metrics"
	"ecaretag/internal/server"
	"ecaretag/internal/store"
	"ecaretag/internal/taxonomy"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Load the keyword table: external YAML file if present, built-in
	// table otherwise. The table is immutable from here on.
	table, err := taxonomy.Load(cfg.TaxonomyFile)
	if err != nil {
		log.Fatalf("Failed to load taxonomy file %s: %v", cfg.TaxonomyFile, err)
	}
	if table != nil {
		log.Printf("Loaded taxonomy from %s (%d codes)", cfg.TaxonomyFile, table.Len())
	} else {
		table, err = taxonomy.New(taxonomy.DefaultEntries())
		if err != nil {
			log.Fatalf("Failed to build built-in taxonomy: %v", err)
		}
		log.Printf("Using built-in taxonomy (%d codes)", table.Len())
	}

	engine := classifier.New(table)

	// Usage counters: Postgres when configured, in-memory otherwise.
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := pg.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
		st = pg
	} else {
		log.Println("DATABASE_URL not set, keeping usage counters in memory")
		st = store.NewMemory()
	}
	defer st.Close()

	metrics.Init(st)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, table, engine, st); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
