package redis

import (
	"fmt"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
)

// Key prefix for all portal data
const keyPrefix = "kuchbhi"

// playerKey returns the Redis key for a Player document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player ids
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
