package prompt

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/mcoot/quiplash-go/internal/dependencies/clock"
	"github.com/mcoot/quiplash-go/internal/dependencies/ident"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/storage"
)

// Validation limits for prompt text
const (
	MinPromptLen = 20
	MaxPromptLen = 100
)

// Translator resolves a text into its supported-language localizations
type Translator interface {
	TranslateToAll(ctx context.Context, text string) ([]model.LocalizedText, error)
}

// Analyzer scores a text for content safety, returning the mean severity
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) (float64, error)
}

// Config holds configuration for the prompt service
type Config struct {
	// ModerationThreshold is the maximum mean severity at which a prompt is
	// still approved
	ModerationThreshold float64
}

// DefaultConfig returns default prompt service configuration
func DefaultConfig() Config {
	return Config{
		ModerationThreshold: 2.0,
	}
}

// Service handles prompt creation, deletion, and moderation
type Service struct {
	storage    storage.Storage
	translator Translator
	analyzer   Analyzer
	clock      clock.Clock
	ident      ident.Generator
	logger     *slog.Logger

	threshold float64
}

// New creates a new prompt service
func New(storage storage.Storage, translator Translator, analyzer Analyzer,
	clk clock.Clock, id ident.Generator, cfg Config, logger *slog.Logger) *Service {
	if cfg.ModerationThreshold == 0 {
		cfg.ModerationThreshold = DefaultConfig().ModerationThreshold
	}
	return &Service{
		storage:    storage,
		translator: translator,
		analyzer:   analyzer,
		clock:      clk,
		ident:      id,
		logger:     logger,
		threshold:  cfg.ModerationThreshold,
	}
}

// Create stores a new pending prompt for the player. The text is translated
// into all supported languages; if translation is unavailable the prompt is
// stored with the submitted text only
func (s *Service) Create(ctx context.Context, username, text string) (*model.Prompt, error) {
	if _, err := s.storage.GetPlayerByUsername(ctx, username); err != nil {
		return nil, err
	}

	if n := utf8.RuneCountInString(text); n < MinPromptLen || n > MaxPromptLen {
		return nil, model.ErrPromptLength
	}

	texts, err := s.translator.TranslateToAll(ctx, text)
	if err != nil || len(texts) == 0 {
		if err != nil {
			s.logger.Warn("translation unavailable, storing original text only",
				slog.String("username", username),
				slog.String("error", err.Error()))
		}
		texts = []model.LocalizedText{{Language: "en", Text: text}}
	}

	prompt := &model.Prompt{
		ID:        model.PromptID(s.ident.NewID()),
		Username:  username,
		Texts:     texts,
		Status:    model.PromptStatusPending,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePrompt(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt created",
		slog.String("username", username),
		slog.String("prompt_id", string(prompt.ID)))
	return prompt, nil
}

// Delete removes the prompt by its (username, id) point key
func (s *Service) Delete(ctx context.Context, username string, id model.PromptID) error {
	return s.storage.DeletePrompt(ctx, username, id)
}

// Moderate runs the prompt's English text through content-safety analysis and
// approves it iff the mean severity is at or below the threshold. Both the
// decision and the driving severity are persisted
func (s *Service) Moderate(ctx context.Context, username string, id model.PromptID) (*model.Prompt, error) {
	prompt, err := s.storage.GetPrompt(ctx, username, id)
	if err != nil {
		return nil, err
	}

	severity, err := s.analyzer.AnalyzeText(ctx, prompt.EnglishText())
	if err != nil {
		return nil, err
	}

	prompt.Severity = severity
	if severity <= s.threshold {
		prompt.Status = model.PromptStatusApproved
	} else {
		prompt.Status = model.PromptStatusRejected
	}

	if err := s.storage.SavePrompt(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt moderated",
		slog.String("username", username),
		slog.String("prompt_id", string(id)),
		slog.String("status", string(prompt.Status)),
		slog.Float64("severity", severity))
	return prompt, nil
}

// ListForPlayer returns all prompts owned by the player
func (s *Service) ListForPlayer(ctx context.Context, username string) ([]*model.Prompt, error) {
	return s.storage.ListPromptsForPlayer(ctx, username)
}

// List returns all stored prompts
func (s *Service) List(ctx context.Context) ([]*model.Prompt, error) {
	return s.storage.ListPrompts(ctx)
}
