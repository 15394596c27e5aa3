package scoring

import (
	"context"
	"log/slog"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
)

// Policy decides how a freshly computed score updates the stored one
type Policy string

const (
	// PolicyOverwrite unconditionally replaces the stored score with the
	// newest completed-session score, even when it is lower
	PolicyOverwrite Policy = "overwrite"

	// PolicyBestScore replaces the stored score only when the new score is
	// strictly greater; ties and lower scores are discarded without a write
	PolicyBestScore Policy = "best_score"
)

// PolicyFor returns the reconciliation policy for a game. The quiz and the
// word scramble overwrite; Tower of Hanoi keeps the best score.
func PolicyFor(game model.GameKey) Policy {
	if game == model.GameTowerOfHanoi {
		return PolicyBestScore
	}
	return PolicyOverwrite
}

// Reconciler applies the per-game write policy to the player store. Writes
// are best-effort: failures are logged and must never block the player's
// exit from a finished game, so callers are expected to ignore the returned
// error in session flow (it is surfaced for tests).
type Reconciler struct {
	store  storage.PlayerStore
	logger *slog.Logger
}

// NewReconciler creates a new Reconciler
func NewReconciler(store storage.PlayerStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
	}
}

// Reconcile writes the score for a completed session according to the
// game's policy. At most one store write happens per call; under
// PolicyBestScore a tie or lower score results in no write at all.
func (r *Reconciler) Reconcile(ctx context.Context, playerID model.PlayerID, game model.GameKey, score int) error {
	if !game.Valid() {
		return model.ErrUnknownGame
	}

	if PolicyFor(game) == PolicyBestScore {
		player, err := r.store.GetPlayer(ctx, playerID)
		if err != nil {
			r.logger.Warn("score reconciliation skipped",
				slog.String("player_id", string(playerID)),
				slog.String("game", string(game)),
				slog.String("error", err.Error()),
			)
			return err
		}

		if score <= player.Scores.Get(game) {
			r.logger.Info("score discarded by best-score policy",
				slog.String("player_id", string(playerID)),
				slog.String("game", string(game)),
				slog.Int("new_score", score),
				slog.Int("stored_score", player.Scores.Get(game)),
			)
			return nil
		}
	}

	if err := r.store.WriteScore(ctx, playerID, game, score); err != nil {
		r.logger.Warn("score write failed",
			slog.String("player_id", string(playerID)),
			slog.String("game", string(game)),
			slog.Int("score", score),
			slog.String("error", err.Error()),
		)
		return err
	}

	r.logger.Info("score saved",
		slog.String("player_id", string(playerID)),
		slog.String("game", string(game)),
		slog.Int("score", score),
	)
	return nil
}
