package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"smartleave/internal/app/server"
	"smartleave/internal/domain/directory"
	"smartleave/internal/domain/leave"
	"smartleave/internal/insights"
	"smartleave/internal/platform/config"
	"smartleave/internal/platform/logging"
	"smartleave/internal/state"
	"smartleave/internal/store"
	"smartleave/internal/store/memory"
	"smartleave/internal/store/postgres"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	var (
		backing store.Store
		pinger  server.Pinger
	)
	if cfg.DatabaseURL != "" {
		pg, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pg.Close()
		backing = pg
		pinger = pg
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
		backing = memory.New()
	}

	container, err := state.Load(ctx, backing)
	if err != nil {
		logger.Fatal("state load failed", zap.Error(err))
	}

	engine := leave.NewService(container)
	dir := directory.NewService(container)
	ins := insights.New(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)

	router := server.NewRouter(server.Deps{
		Config:   cfg,
		Logger:   logger,
		State:    container,
		Engine:   engine,
		Dir:      dir,
		Insights: ins,
		Pinger:   pinger,
	})

	logger.Info("smartleave server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
