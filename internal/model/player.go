package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is someone who owns game sessions
type Player struct {
	ID          PlayerID  `json:"id"`
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"` // true for unregistered players
	CreatedAt   time.Time `json:"created_at"`
}

// RegisteredPlayer holds login credentials for a non-guest Player.
// Stored separately so the password hash never travels with the player record.
type RegisteredPlayer struct {
	PlayerID     PlayerID  `json:"player_id"`
	Username     string    `json:"username"`      // immutable
	PasswordHash string    `json:"password_hash"` // bcrypt
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
