// Package hanoi drives a single Tower of Hanoi play-through: a configurable
// disk count, legality-checked moves, and an efficiency score saved under
// the best-score policy on completion.
package hanoi

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/random"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scoring"
)

const (
	// MinDisks and MaxDisks bound the configurable puzzle size
	MinDisks = 3
	MaxDisks = 7

	// RodCount is fixed: source, auxiliary, target
	RodCount = 3

	// TargetRod is where the full tower must end up
	TargetRod = 2
)

// ErrPolicyRequiresThreeDisks is returned when the penalty scoring formula
// is requested for a puzzle larger than its fixed three-disk layout
var ErrPolicyRequiresThreeDisks = errors.New("penalty scoring only applies to the three-disk puzzle")

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Session is the ephemeral state of one puzzle play-through. Disks are
// numbered 1 (smallest) to Disks (largest); each rod is a stack with the
// top disk last.
type Session struct {
	ID       model.SessionID
	PlayerID model.PlayerID
	State    model.SessionState
	Disks    int
	Policy   scoring.HanoiPolicy
	Rods     [RodCount][]int
	Moves    int
	MinMoves int
	Score    int
}

// Config selects the puzzle layout and scoring formula for a session
type Config struct {
	// Disks is the tower height; zero means MinDisks
	Disks int

	// Policy is the scoring formula; empty means the ratio formula
	Policy scoring.HanoiPolicy
}

// Controller manages Tower of Hanoi sessions
type Controller struct {
	mu       sync.Mutex
	sessions map[model.SessionID]*Session

	reconciler *scoring.Reconciler
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new Tower of Hanoi controller
func NewController(reconciler *scoring.Reconciler, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		sessions:   make(map[model.SessionID]*Session),
		reconciler: reconciler,
		random:     rnd,
		logger:     logger,
	}
}

// Start configures and begins a session with the full tower on rod 0
func (c *Controller) Start(ctx context.Context, playerID model.PlayerID, cfg Config) (*Session, error) {
	if cfg.Disks == 0 {
		cfg.Disks = MinDisks
	}
	if cfg.Disks < MinDisks || cfg.Disks > MaxDisks {
		return nil, model.ErrInvalidDiskCount
	}
	if cfg.Policy == "" {
		cfg.Policy = scoring.HanoiRatio
	}
	if !cfg.Policy.Valid() {
		return nil, model.ErrUnknownGame
	}
	if cfg.Policy == scoring.HanoiPenalty && cfg.Disks != MinDisks {
		return nil, ErrPolicyRequiresThreeDisks
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session := &Session{
		ID:       model.SessionID(c.random.String(12, sessionIDAlphabet)),
		PlayerID: playerID,
		State:    model.SessionInProgress,
		Disks:    cfg.Disks,
		Policy:   cfg.Policy,
		MinMoves: scoring.MinMoves(cfg.Disks),
	}

	// Largest disk at the bottom of rod 0
	tower := make([]int, cfg.Disks)
	for i := range tower {
		tower[i] = cfg.Disks - i
	}
	session.Rods[0] = tower

	c.sessions[session.ID] = session

	c.logger.Info("hanoi session started",
		slog.String("session_id", string(session.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("disks", cfg.Disks),
		slog.String("policy", string(cfg.Policy)),
	)

	return snapshot(session), nil
}

// Move transfers the top disk from one rod to another. An illegal move is
// rejected without touching the move counter. Landing the full tower on the
// target rod completes the session.
func (c *Controller) Move(ctx context.Context, id model.SessionID, from, to int) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.inProgress(id)
	if err != nil {
		return nil, err
	}

	if from < 0 || from >= RodCount || to < 0 || to >= RodCount {
		return nil, model.ErrInvalidRod
	}
	if from == to {
		return nil, model.ErrInvalidMove
	}
	if len(session.Rods[from]) == 0 {
		return nil, model.ErrInvalidMove
	}

	disk := session.Rods[from][len(session.Rods[from])-1]
	if n := len(session.Rods[to]); n > 0 && session.Rods[to][n-1] < disk {
		return nil, model.ErrInvalidMove
	}

	session.Rods[from] = session.Rods[from][:len(session.Rods[from])-1]
	session.Rods[to] = append(session.Rods[to], disk)
	session.Moves++

	if len(session.Rods[TargetRod]) == session.Disks {
		c.complete(session)
	}

	return snapshot(session), nil
}

// Get returns a snapshot of a session
func (c *Controller) Get(id model.SessionID) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Abandon discards a session before completion. No score is computed or
// persisted for an abandoned play-through.
func (c *Controller) Abandon(id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[id]
	if !ok {
		return model.ErrSessionNotFound
	}

	session.State = model.SessionAbandoned
	delete(c.sessions, id)

	c.logger.Info("hanoi session abandoned", slog.String("session_id", string(id)))
	return nil
}

// inProgress fetches a session that must be accepting moves. Caller holds
// the lock.
func (c *Controller) inProgress(id model.SessionID) (*Session, error) {
	session, ok := c.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if session.State == model.SessionCompleted {
		return nil, model.ErrSessionComplete
	}
	if session.State != model.SessionInProgress {
		return nil, model.ErrSessionNotInProgress
	}
	return session, nil
}

// complete scores the solved puzzle and saves the result. Caller holds the
// lock.
func (c *Controller) complete(session *Session) {
	session.State = model.SessionCompleted
	session.Score = scoring.HanoiScore(session.Policy, session.Moves, session.MinMoves)

	c.logger.Info("hanoi session completed",
		slog.String("session_id", string(session.ID)),
		slog.Int("moves", session.Moves),
		slog.Int("min_moves", session.MinMoves),
		slog.Int("score", session.Score),
	)

	// Best-effort write; the reconciler logs failures and the player's exit
	// is never blocked on it
	_ = c.reconciler.Reconcile(context.Background(), session.PlayerID, model.GameTowerOfHanoi, session.Score)
}

// snapshot deep-copies a session so callers cannot mutate the live rods
func snapshot(session *Session) *Session {
	copied := *session
	for i, rod := range session.Rods {
		copied.Rods[i] = append([]int(nil), rod...)
	}
	return &copied
}
