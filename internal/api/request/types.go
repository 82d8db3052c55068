package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
// Credentials may equally arrive as query parameters
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateRequest is the request body for updating a player's counters
// Both deltas are required; pointers distinguish absent from zero
type UpdateRequest struct {
	Username         string `json:"username"`
	AddToGamesPlayed *int   `json:"add_to_games_played"`
	AddToScore       *int   `json:"add_to_score"`
}

// CreatePromptRequest is the request body for creating a prompt
type CreatePromptRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// DeletePromptRequest is the request body for deleting a prompt
type DeletePromptRequest struct {
	Username string `json:"username"`
	PromptID string `json:"prompt_id"`
}

// ModeratePromptRequest is the request body for moderating a prompt
type ModeratePromptRequest struct {
	Username string `json:"username"`
	PromptID string `json:"prompt_id"`
}

// GetRequest is the request body form of the utils retrieval endpoint
// Normally these arrive as query parameters
type GetRequest struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
}
