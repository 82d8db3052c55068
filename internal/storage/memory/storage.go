package memory

import (
	"context"
	"sync"

	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.Player
	usernameIndex map[string]model.PlayerID
	prompts       map[promptKey]*model.Prompt
}

type promptKey struct {
	username string
	id       model.PromptID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.Player),
		usernameIndex: make(map[string]model.PlayerID),
		prompts:       make(map[promptKey]*model.Prompt),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	s.usernameIndex[player.Username] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.usernameIndex, player.Username)
	}
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, player)
	}
	return players, nil
}

// Prompt operations

func (s *Storage) SavePrompt(ctx context.Context, prompt *model.Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := promptKey{username: prompt.Username, id: prompt.ID}
	s.prompts[key] = prompt
	return nil
}

func (s *Storage) GetPrompt(ctx context.Context, username string, id model.PromptID) (*model.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prompt, ok := s.prompts[promptKey{username: username, id: id}]
	if !ok {
		return nil, model.ErrPromptNotFound
	}
	return prompt, nil
}

func (s *Storage) DeletePrompt(ctx context.Context, username string, id model.PromptID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := promptKey{username: username, id: id}
	if _, ok := s.prompts[key]; !ok {
		return model.ErrPromptNotFound
	}
	delete(s.prompts, key)
	return nil
}

func (s *Storage) ListPromptsForPlayer(ctx context.Context, username string) ([]*model.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var prompts []*model.Prompt
	for key, prompt := range s.prompts {
		if key.username == username {
			prompts = append(prompts, prompt)
		}
	}
	return prompts, nil
}

func (s *Storage) ListPrompts(ctx context.Context) ([]*model.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prompts := make([]*model.Prompt, 0, len(s.prompts))
	for _, prompt := range s.prompts {
		prompts = append(prompts, prompt)
	}
	return prompts, nil
}
