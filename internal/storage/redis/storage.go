package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
//
// Documents are stored as JSON blobs under prefixed keys. Set-based indexes
// track the username -> id mapping, the full player set, and the prompt set
// per owner partition
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, usernameIndexKey(player.Username), string(player.ID), 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	// Look up player ID from username index
	playerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(playerIDStr))
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	// Fetch first so the username index entry can be removed too
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	key := playerKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Del(ctx, usernameIndexKey(player.Username))
	pipe.SRem(ctx, playersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index entry without a document
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}

// Prompt operations

func (s *Storage) SavePrompt(ctx context.Context, prompt *model.Prompt) error {
	data, err := json.Marshal(prompt)
	if err != nil {
		return err
	}

	key := promptKey(prompt.Username, prompt.ID)

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, promptsForPlayerIndexKey(prompt.Username), key)
	pipe.SAdd(ctx, promptsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPrompt(ctx context.Context, username string, id model.PromptID) (*model.Prompt, error) {
	data, err := s.client.Get(ctx, promptKey(username, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPromptNotFound
		}
		return nil, err
	}

	var prompt model.Prompt
	if err := json.Unmarshal(data, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (s *Storage) DeletePrompt(ctx context.Context, username string, id model.PromptID) error {
	key := promptKey(username, id)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrPromptNotFound
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, promptsForPlayerIndexKey(username), key)
	pipe.SRem(ctx, promptsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPromptsForPlayer(ctx context.Context, username string) ([]*model.Prompt, error) {
	return s.listPromptsByIndex(ctx, promptsForPlayerIndexKey(username))
}

func (s *Storage) ListPrompts(ctx context.Context) ([]*model.Prompt, error) {
	return s.listPromptsByIndex(ctx, promptsIndexKey())
}

func (s *Storage) listPromptsByIndex(ctx context.Context, indexKey string) ([]*model.Prompt, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Prompt{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	prompts := make([]*model.Prompt, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var prompt model.Prompt
		if err := json.Unmarshal([]byte(val.(string)), &prompt); err != nil {
			continue // Skip invalid data
		}
		prompts = append(prompts, &prompt)
	}

	return prompts, nil
}
