package storage

import (
	"context"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
)

// PlayerStore defines the interface for player record persistence. It is the
// only durable state in the system; everything else is derived or ephemeral.
type PlayerStore interface {
	// CreatePlayer stores a new player record. The record must arrive with
	// all three scores present (zeroed at registration).
	CreatePlayer(ctx context.Context, player *model.Player) error

	// GetPlayer retrieves a player by id, model.ErrPlayerNotFound if absent
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// ListPlayers returns all player records in no particular order
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// WriteScore replaces the single score field for one game on one player.
	// Returns model.ErrPlayerNotFound if the player does not exist.
	WriteScore(ctx context.Context, id model.PlayerID, game model.GameKey, score int) error

	// Ping verifies the backend is reachable
	Ping(ctx context.Context) error

	// Close releases backend resources
	Close() error
}
