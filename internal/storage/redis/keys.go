package redis

import (
	"fmt"

	"github.com/mcoot/quiplash-go/internal/model"
)

// Key prefix for all application data
const keyPrefix = "quiplash"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// promptKey returns the Redis key for a Prompt within its owner's partition
func promptKey(username string, id model.PromptID) string {
	return fmt.Sprintf("%s:prompt:%s:%s", keyPrefix, username, id)
}

// promptsForPlayerIndexKey returns the Redis key for the SET of prompt keys
// owned by a player
func promptsForPlayerIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:prompts_for_player:%s", keyPrefix, username)
}

// promptsIndexKey returns the Redis key for the SET of all prompt keys
func promptsIndexKey() string {
	return fmt.Sprintf("%s:idx:prompts", keyPrefix)
}
