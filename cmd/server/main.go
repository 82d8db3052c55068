package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/quiplash-go/internal/api"
	apimiddleware "github.com/mcoot/quiplash-go/internal/api/middleware"
	"github.com/mcoot/quiplash-go/internal/clients/contentsafety"
	"github.com/mcoot/quiplash-go/internal/clients/translator"
	"github.com/mcoot/quiplash-go/internal/config"
	"github.com/mcoot/quiplash-go/internal/factory"
	redisstorage "github.com/mcoot/quiplash-go/internal/storage/redis"

	"golang.org/x/time/rate"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration from the environment
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	translatorCfg := translator.DefaultConfig()
	translatorCfg.Endpoint = cfg.TranslatorEndpoint
	translatorCfg.Key = cfg.TranslatorKey
	translatorCfg.Region = cfg.TranslatorRegion
	translatorCfg.Timeout = cfg.ClientTimeout

	safetyCfg := contentsafety.DefaultConfig()
	safetyCfg.Endpoint = cfg.ContentSafetyEndpoint
	safetyCfg.Key = cfg.ContentSafetyKey
	safetyCfg.Timeout = cfg.ClientTimeout

	// Build factory config
	factoryCfg := factory.Config{
		Logger:        logger,
		StorageType:   cfg.StorageType,
		Translator:    translatorCfg,
		ContentSafety: safetyCfg,
	}
	factoryCfg.Prompt.ModerationThreshold = cfg.ModerationThreshold

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Rate limiting is off unless a per-second limit is configured
	var limiter *apimiddleware.IPRateLimiter
	if cfg.RateLimitPerSecond > 0 {
		limiter = apimiddleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		PromptService: app.PromptService,
		RateLimiter:   limiter,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
