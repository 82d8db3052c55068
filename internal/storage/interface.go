package storage

import (
	"context"

	"github.com/mcoot/quiplash-go/internal/model"
)

// Storage defines the interface for data persistence
//
// Players are point-keyed by ID with a unique-username index. Prompts are
// partitioned by owning username; point reads and deletes require both the
// username and the prompt ID, mirroring a document store's read_item(id, pk)
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Prompt operations
	SavePrompt(ctx context.Context, prompt *model.Prompt) error
	GetPrompt(ctx context.Context, username string, id model.PromptID) (*model.Prompt, error)
	DeletePrompt(ctx context.Context, username string, id model.PromptID) error
	ListPromptsForPlayer(ctx context.Context, username string) ([]*model.Prompt, error)
	ListPrompts(ctx context.Context) ([]*model.Prompt, error)
}
