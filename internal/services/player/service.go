package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/clock"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
)

// Validation errors
var (
	ErrInvalidName   = errors.New("name is required")
	ErrInvalidEmail  = errors.New("a valid email address is required")
	ErrInvalidMobile = errors.New("mobile number must be 10 digits")
	ErrInvalidAge    = errors.New("age must be between 1 and 120")
)

// RegisterParams are the inputs collected at registration
type RegisterParams struct {
	Name         string
	Email        string
	MobileNumber string
	Age          int
}

// Validate checks the registration inputs
func (p RegisterParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	at := strings.Index(p.Email, "@")
	if at <= 0 || at == len(p.Email)-1 {
		return ErrInvalidEmail
	}
	if len(p.MobileNumber) != 10 {
		return ErrInvalidMobile
	}
	for _, c := range p.MobileNumber {
		if c < '0' || c > '9' {
			return ErrInvalidMobile
		}
	}
	if p.Age < 1 || p.Age > 120 {
		return ErrInvalidAge
	}
	return nil
}

// Service handles player registration and lookup
type Service struct {
	store  storage.PlayerStore
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new player service
func New(store storage.PlayerStore, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Register creates a player record with all three scores zeroed. The
// creation timestamp doubles as the leaderboard tie-break key and is never
// updated afterwards.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*model.Player, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:           model.PlayerID(uuid.NewString()),
		Name:         strings.TrimSpace(params.Name),
		Email:        params.Email,
		MobileNumber: params.MobileNumber,
		Age:          params.Age,
		CreatedAt:    s.clock.Now(),
		Scores:       model.Scores{},
	}

	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// Get retrieves a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

// Restore resolves a persisted current-player id back to a live record. A
// missing record means "no active player" and surfaces as
// model.ErrPlayerNotFound for the caller to treat as a clean slate.
func (s *Service) Restore(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if id == "" {
		return nil, model.ErrPlayerNotFound
	}
	return s.store.GetPlayer(ctx, id)
}
