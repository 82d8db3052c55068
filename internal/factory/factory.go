package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/quiplash-go/internal/clients/contentsafety"
	"github.com/mcoot/quiplash-go/internal/clients/translator"
	"github.com/mcoot/quiplash-go/internal/dependencies/clock"
	"github.com/mcoot/quiplash-go/internal/dependencies/ident"
	"github.com/mcoot/quiplash-go/internal/services/player"
	"github.com/mcoot/quiplash-go/internal/services/prompt"
	"github.com/mcoot/quiplash-go/internal/storage"
	"github.com/mcoot/quiplash-go/internal/storage/memory"
	redisstorage "github.com/mcoot/quiplash-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	Ident ident.Generator

	// Services
	PlayerService *player.Service
	PromptService *prompt.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Translator holds translation service settings
	Translator translator.Config
	// ContentSafety holds content-safety service settings
	ContentSafety contentsafety.Config
	// Prompt holds prompt service settings (optional)
	// If zero value, defaults to prompt.DefaultConfig()
	Prompt prompt.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	id := ident.New()

	translatorClient := translator.New(cfg.Translator, logger)
	safetyClient := contentsafety.New(cfg.ContentSafety)

	// Use default prompt config if not provided
	promptCfg := cfg.Prompt
	if promptCfg.ModerationThreshold == 0 {
		promptCfg = prompt.DefaultConfig()
	}

	return newWithDependencies(store, translatorClient, safetyClient, clk, id, promptCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	trans prompt.Translator,
	analyzer prompt.Analyzer,
	clk clock.Clock,
	id ident.Generator,
	promptCfg prompt.Config,
	logger *slog.Logger,
) *App {
	// Create services
	playerService := player.New(store, clk, id, logger)
	promptService := prompt.New(store, trans, analyzer, clk, id, promptCfg, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Ident:         id,
		PlayerService: playerService,
		PromptService: promptService,
	}
}
