package middleware

import (
	"context"
	"net/http"

	"github.com/Rishivarshney100/kuchbhi/internal/api/apierr"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/player"
)

// PlayerIDHeader carries the persisted player identity. Clients keep the ID
// from registration and replay it on every request, so there is no login and
// no token lifecycle.
const PlayerIDHeader = "X-Player-ID"

type contextKey string

const playerContextKey contextKey = "player"

// Identity creates middleware requiring a known player identity on the
// request
func Identity(playerService *player.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := model.PlayerID(r.Header.Get(PlayerIDHeader))
			if id == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			p, err := playerService.Restore(r.Context(), id)
			if err != nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PlayerFromContext returns the player attached by Identity
func PlayerFromContext(ctx context.Context) (*model.Player, bool) {
	p, ok := ctx.Value(playerContextKey).(*model.Player)
	return p, ok
}
