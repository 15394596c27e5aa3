package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a registered portal user. Every player carries a score for each
// of the three games from the moment of registration; scores are only ever
// replaced, never removed.
type Player struct {
	ID           PlayerID  `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `json:"createdAt"`
	Scores       Scores    `json:"scores"`
}
