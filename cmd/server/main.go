package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"haikubot/internal/cache"
	"haikubot/internal/config"
	"haikubot/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.SlackToken == "" {
		log.Println("Warning: SLACK_TOKEN is not set; haiku replies will fail to post.")
	}

	// Initialize syllable cache
	store, err := cache.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s cache: %v", cfg.CacheBackend, err)
	}
	defer store.Close()
	log.Printf("Syllable cache ready (backend: %s)", cfg.CacheBackend)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, store, reg); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server exited")
}
