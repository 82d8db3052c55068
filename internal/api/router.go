package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/quiplash-go/internal/api/handler"
	"github.com/mcoot/quiplash-go/internal/api/middleware"
	"github.com/mcoot/quiplash-go/internal/services/player"
	"github.com/mcoot/quiplash-go/internal/services/prompt"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
	PromptService *prompt.Service
	// RateLimiter is optional; when nil no rate limiting is applied
	RateLimiter *middleware.IPRateLimiter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	promptHandler := handler.NewPromptHandler(cfg.PromptService)
	utilsHandler := handler.NewUtilsHandler(cfg.PlayerService, cfg.PromptService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	if cfg.RateLimiter != nil {
		r.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	// Player routes
	players := r.PathPrefix("/player").Subrouter()
	players.HandleFunc("/register", playerHandler.Register).Methods(http.MethodPost)
	players.HandleFunc("/login", playerHandler.Login).Methods(http.MethodGet, http.MethodPost)
	players.HandleFunc("/update", playerHandler.Update).Methods(http.MethodPut, http.MethodPost)

	// Prompt routes
	prompts := r.PathPrefix("/prompt").Subrouter()
	prompts.HandleFunc("/create", promptHandler.Create).Methods(http.MethodPost)
	prompts.HandleFunc("/delete", promptHandler.Delete).Methods(http.MethodPost)
	prompts.HandleFunc("/moderate", promptHandler.Moderate).Methods(http.MethodPost)

	// Utility routes
	utils := r.PathPrefix("/utils").Subrouter()
	utils.HandleFunc("/get", utilsHandler.Get).Methods(http.MethodGet, http.MethodPost)
	utils.HandleFunc("/welcome", utilsHandler.Welcome).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
