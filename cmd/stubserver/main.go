package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sdb-client/internal/api"
	"sdb-client/internal/config"
	"sdb-client/internal/stub"
	"syscall"
	"time"
)

// main is the stub backend composition root.
// It serves the SDB HTTP contract from an in-memory store for local runs of
// sdbctl and for manual testing against a backend that is not the hosted one.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store := stub.NewMemoryStore()

	// Seed demo accounts, boxes and parcels when a seed file is configured.
	if cfg.SeedPath != "" {
		if err := stub.SeedFromJSON(context.Background(), store, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Seeded stub store from %s", cfg.SeedPath)
	}

	if cfg.JWTSecret == "" {
		log.Println("SDB_JWT_SECRET not set; login will not issue tokens")
	}

	router := api.NewRouter(store, cfg.JWTSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.StubPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Stub backend listening addr=:%s", cfg.StubPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("stub backend stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
