/*
main.go - Application entry point

PURPOSE:
  One-shot reporting run over the parts-pricing database: connect, validate,
  run the preparation pipeline, print the table reports, write the chart
  artifacts, exit. With -serve, stay up afterwards and serve the generated
  artifacts for browser preview.

COMMAND-LINE FLAGS:
  -config  Path to a TOML config file (optional; defaults compiled in)
  -db      SQLite database path (overrides config)
  -out     Chart output directory (overrides config)
  -serve   Serve generated artifacts over HTTP after the run

ERROR BEHAVIOR:
  Every validation failure is fatal: missing table, empty row set, or a
  distinct-company count that does not match the configured expectation.
  There is no retry and no partial output.

EXAMPLES:
  # Run against the default database path
  ./reports

  # Explicit database and output dir
  ./reports -db=./data/parts.db -out=./out

  # Generate, then preview charts in a browser
  ./reports -serve

SEE ALSO:
  - run.go: the reporting pass itself
  - config/config.go: the TOML file format
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partsight/pricing-reports/api"
	"github.com/partsight/pricing-reports/config"
	"github.com/partsight/pricing-reports/pricing"
	"github.com/partsight/pricing-reports/store/sqlite"
)

func main() {
	// Flags
	configPath := flag.String("config", "", "path to TOML config file")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	outDir := flag.String("out", "", "chart output directory (overrides config)")
	serve := flag.Bool("serve", false, "serve generated artifacts over HTTP after the run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *outDir != "" {
		cfg.Charts.OutputDir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	artifacts, err := run(context.Background(), cfg, os.Stdout, func() (pricing.Source, error) {
		return sqlite.Open(cfg.Database.Path)
	})
	if err != nil {
		log.Fatalf("Reporting run failed: %v", err)
	}
	log.Printf("Run complete: %d chart artifact(s) in %s", len(artifacts), cfg.Charts.OutputDir)

	if !*serve {
		return
	}

	// Preview server with graceful shutdown.
	server := &http.Server{
		Addr:         cfg.Serve.Addr,
		Handler:      api.NewRouter(cfg.Charts.OutputDir, artifacts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Serving artifacts on http://localhost%s", cfg.Serve.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Preview server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down preview server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Preview server forced to shutdown: %v", err)
	}
	log.Println("Preview server stopped")
}
