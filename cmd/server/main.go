package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"legalgpt-portal/config"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/logging"
	"legalgpt-portal/server"

	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.New(), os.Getenv("LEGALGPT_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// PORT overrides the listen address on hosted runtimes
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consultations, cleanup, err := server.NewConsultationService(ctx, cfg, logger)
	if err != nil {
		log.Fatal("Failed to initialize consultation service:", err)
	}
	defer cleanup()

	srv := server.New(cfg, knowledge.Default(), consultations, logger)

	log.Printf("Server starting on %s", cfg.Server.Addr)
	if err := server.Run(ctx, srv, logger); err != nil {
		log.Fatal("Server failed:", err)
	}
}
