package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a registered player account
// PasswordHash is a bcrypt hash and must never appear in API responses
type Player struct {
	ID           PlayerID
	Username     string // unique, immutable after registration
	PasswordHash string
	GamesPlayed  int
	TotalScore   int
	CreatedAt    time.Time
}
