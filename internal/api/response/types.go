package response

import (
	"time"

	"github.com/mcoot/quiplash-go/internal/model"
)

// Envelope is the response envelope carried by every endpoint
type Envelope struct {
	Result bool   `json:"result"`
	Msg    string `json:"msg"`
}

// OK returns a success envelope with the given message
func OK(msg string) Envelope {
	return Envelope{Result: true, Msg: msg}
}

// Fail returns a failure envelope with the given message
func Fail(msg string) Envelope {
	return Envelope{Result: false, Msg: msg}
}

// Player represents a player in API responses
// The password hash is never serialized
type Player struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	GamesPlayed int       `json:"games_played"`
	TotalScore  int       `json:"total_score"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		Username:    p.Username,
		GamesPlayed: p.GamesPlayed,
		TotalScore:  p.TotalScore,
		CreatedAt:   p.CreatedAt,
	}
}

// LocalizedText is one language rendering of a prompt text
type LocalizedText struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Prompt represents a prompt in API responses
type Prompt struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Texts     []LocalizedText `json:"texts"`
	Status    string          `json:"status"`
	Severity  float64         `json:"severity"`
	CreatedAt time.Time       `json:"created_at"`
}

// PromptFromModel converts a model.Prompt to a response Prompt
func PromptFromModel(p *model.Prompt) Prompt {
	texts := make([]LocalizedText, len(p.Texts))
	for i, t := range p.Texts {
		texts[i] = LocalizedText{Language: t.Language, Text: t.Text}
	}
	return Prompt{
		ID:        string(p.ID),
		Username:  p.Username,
		Texts:     texts,
		Status:    string(p.Status),
		Severity:  p.Severity,
		CreatedAt: p.CreatedAt,
	}
}

// LoginResponse is the envelope plus the authenticated player
type LoginResponse struct {
	Envelope
	Player Player `json:"player"`
}

// CreatePromptResponse is the envelope plus the new prompt's ID
type CreatePromptResponse struct {
	Envelope
	PromptID string `json:"prompt_id"`
}

// ListResponse is the payload of the utils retrieval endpoint
type ListResponse struct {
	Result bool `json:"result"`
	Data   any  `json:"data"`
}
