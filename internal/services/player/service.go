package player

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/quiplash-go/internal/dependencies/clock"
	"github.com/mcoot/quiplash-go/internal/dependencies/ident"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/storage"
)

// Validation limits for registration
const (
	MinUsernameLen = 5
	MaxUsernameLen = 12
	MinPasswordLen = 8
	MaxPasswordLen = 12
)

// Service handles player registration, login, and score updates
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ident   ident.Generator
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, clk clock.Clock, id ident.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		ident:   id,
		logger:  logger,
	}
}

// Register creates a new player account with zeroed counters.
// Usernames must be unique and 5-12 characters; passwords 8-12 characters
func (s *Service) Register(ctx context.Context, username, password string) (*model.Player, error) {
	if n := utf8.RuneCountInString(username); n < MinUsernameLen || n > MaxUsernameLen {
		return nil, model.ErrUsernameLength
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLen || n > MaxPasswordLen {
		return nil, model.ErrPasswordLength
	}

	// Check if username exists
	_, err := s.storage.GetPlayerByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:           model.PlayerID(s.ident.NewID()),
		Username:     username,
		PasswordHash: string(hash),
		GamesPlayed:  0,
		TotalScore:   0,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("username", username))
	return player, nil
}

// Login validates credentials and returns the player
func (s *Service) Login(ctx context.Context, username, password string) (*model.Player, error) {
	player, err := s.storage.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrIncorrectPassword
	}

	return player, nil
}

// Update adds the given deltas to the player's games-played and total-score
// counters and returns the updated player
func (s *Service) Update(ctx context.Context, username string, addToGamesPlayed, addToScore int) (*model.Player, error) {
	player, err := s.storage.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	player.GamesPlayed += addToGamesPlayed
	player.TotalScore += addToScore

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Get returns the player with the given username
func (s *Service) Get(ctx context.Context, username string) (*model.Player, error) {
	return s.storage.GetPlayerByUsername(ctx, username)
}

// List returns all registered players
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}
