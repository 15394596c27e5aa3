// Package leaderboard produces ranked views of player scores. Boards are
// pure projections recomputed from player records on every read; nothing is
// cached between score writes.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
)

// DefaultLimit is the result-set size for a board
const DefaultLimit = 10

// qrSize is the pixel width of the generated share image
const qrSize = 256

// Service is the leaderboard query engine
type Service struct {
	store  storage.PlayerStore
	logger *slog.Logger
	limit  int
}

// New creates a new leaderboard service
func New(store storage.PlayerStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		limit:  DefaultLimit,
	}
}

// Top returns the ranked board for one game, at most DefaultLimit entries.
//
// Ordering is score descending with ties broken by creation timestamp
// ascending (earlier-registered accounts rank higher). Ranks are assigned
// only after the full ordering is established; assigning them during the
// score-descending pass would make the ordering among equal scores depend on
// store enumeration order.
func (s *Service) Top(ctx context.Context, game model.GameKey) (model.Leaderboard, error) {
	if !game.Valid() {
		return nil, model.ErrUnknownGame
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard for %s: %w", game, err)
	}

	entries := make(model.Leaderboard, 0, len(players))
	for _, p := range players {
		score := p.Scores.Get(game)
		if score == 0 {
			// Unplayed games stay off the board
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			PlayerID:  p.ID,
			Name:      p.Name,
			Score:     score,
			CreatedAt: p.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// All returns the boards for every game. Any store failure aborts the whole
// fetch with a single aggregate error; a partially rendered set of boards is
// never returned.
func (s *Service) All(ctx context.Context) (map[model.GameKey]model.Leaderboard, error) {
	boards := make(map[model.GameKey]model.Leaderboard, len(model.AllGames()))
	for _, game := range model.AllGames() {
		board, err := s.Top(ctx, game)
		if err != nil {
			s.logger.Error("leaderboard fetch failed",
				slog.String("game", string(game)),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("fetch leaderboards: %w", err)
		}
		boards[game] = board
	}
	return boards, nil
}

// ShareQR renders a PNG QR code pointing at a board URL
func (s *Service) ShareQR(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	return png, nil
}
