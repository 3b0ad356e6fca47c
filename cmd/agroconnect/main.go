package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agroconnect/internal/config"
	"agroconnect/internal/events"
	"agroconnect/internal/http/handlers"
	"agroconnect/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repos.OpenStore(ctx, cfg.StoreDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	pub := events.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer pub.Close()

	deps, err := handlers.NewDeps(cfg, store, pub)
	if err != nil {
		log.Fatal(err)
	}
	app := handlers.NewApp(cfg, deps)

	go func() {
		<-ctx.Done()
		log.Printf("[server] shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.Printf("[server] shutdown: %v", err)
		}
	}()

	log.Printf("[server] listening on :%s (store=%s)", cfg.Port, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("[server] listen: %v", err)
	}
}
