package model

import "time"

// PodiumSize is the number of leading entries shown as the podium
const PodiumSize = 3

// LeaderboardEntry is one row of a game's leaderboard. Entries are derived
// fresh from player records on every read and are never stored.
type LeaderboardEntry struct {
	PlayerID  PlayerID  `json:"player_id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

// Leaderboard is an ordered ranking for a single game, rank 1 first
type Leaderboard []LeaderboardEntry

// Podium returns the top entries (at most PodiumSize). It is a split over
// the already-ranked sequence, not a separate computation.
func (l Leaderboard) Podium() Leaderboard {
	if len(l) <= PodiumSize {
		return l
	}
	return l[:PodiumSize]
}

// Tail returns the entries after the podium
func (l Leaderboard) Tail() Leaderboard {
	if len(l) <= PodiumSize {
		return nil
	}
	return l[PodiumSize:]
}
