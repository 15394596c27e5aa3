// Package scramble drives a single word-scramble play-through: five words at
// a chosen difficulty, one guess each under a countdown, and an additive
// score saved through the reconciliation policy on completion.
package scramble

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/random"
	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/timer"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scoring"
)

// DefaultWordTime is how long the player has per word
const DefaultWordTime = 30 * time.Second

// scrambleAttempts bounds the shuffle retries before falling back to a
// rotation
const scrambleAttempts = 10

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Session is the ephemeral state of one scramble play-through. Words holds
// the answers and is never exposed through API responses before the word is
// resolved.
type Session struct {
	ID         model.SessionID
	PlayerID   model.PlayerID
	State      model.SessionState
	Difficulty generator.Difficulty

	// Generated is false when the fallback word set was substituted
	Generated bool

	Words     []string
	Scrambled []string
	Current   int
	Correct   int
	Score     int

	// stop cancels the armed per-word countdown
	stop timer.StopFunc
}

// GuessOutcome reports how a single guess (or timeout) was judged. Word is
// the revealed answer, returned whether or not the guess matched.
type GuessOutcome struct {
	Correct bool
	Word    string
	Session Session
}

// Controller manages word scramble sessions
type Controller struct {
	mu       sync.Mutex
	sessions map[model.SessionID]*Session

	generator  *generator.Client
	reconciler *scoring.Reconciler
	scheduler  timer.Scheduler
	random     random.Random
	logger     *slog.Logger
	wordTime   time.Duration
}

// NewController creates a new word scramble controller
func NewController(
	gen *generator.Client,
	reconciler *scoring.Reconciler,
	scheduler timer.Scheduler,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions:   make(map[model.SessionID]*Session),
		generator:  gen,
		reconciler: reconciler,
		scheduler:  scheduler,
		random:     rnd,
		logger:     logger,
		wordTime:   DefaultWordTime,
	}
}

// Start configures and begins a session. The word fetch is awaited before
// the session enters play; generation failures fall back to the built-in set
// transparently.
func (c *Controller) Start(ctx context.Context, playerID model.PlayerID, difficulty string) (*Session, error) {
	diff, err := generator.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	words, generated := c.generator.Words(ctx, diff)

	c.mu.Lock()
	defer c.mu.Unlock()

	scrambled := make([]string, len(words))
	for i, w := range words {
		scrambled[i] = c.scramble(w)
	}

	session := &Session{
		ID:         model.SessionID(c.random.String(12, sessionIDAlphabet)),
		PlayerID:   playerID,
		State:      model.SessionInProgress,
		Difficulty: diff,
		Generated:  generated,
		Words:      words,
		Scrambled:  scrambled,
	}
	c.sessions[session.ID] = session
	c.armCountdown(session)

	c.logger.Info("scramble session started",
		slog.String("session_id", string(session.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("difficulty", string(diff)),
		slog.Bool("generated", generated),
	)

	return snapshot(session), nil
}

// Guess submits the player's attempt at the current word, case-insensitively.
// Right or wrong, the answer is revealed and the session advances; the
// outstanding countdown is cancelled first.
func (c *Controller) Guess(ctx context.Context, id model.SessionID, guess string) (*GuessOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.inProgress(id)
	if err != nil {
		return nil, err
	}

	guess = strings.TrimSpace(guess)
	if guess == "" {
		return nil, model.ErrEmptyGuess
	}

	c.cancelCountdown(session)

	word := session.Words[session.Current]
	correct := strings.EqualFold(guess, word)
	if correct {
		session.Correct++
	}

	c.advance(session)

	return &GuessOutcome{
		Correct: correct,
		Word:    word,
		Session: *snapshot(session),
	}, nil
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

	c.cancelCountdown(session)
	session.State = model.SessionAbandoned
	delete(c.sessions, id)

	c.logger.Info("scramble session abandoned", slog.String("session_id", string(id)))
	return nil
}

// inProgress fetches a session that must be accepting input. Caller holds
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

// advance moves to the next word or completes the session. Caller holds the
// lock.
func (c *Controller) advance(session *Session) {
	session.Current++
	if session.Current < len(session.Words) {
		c.armCountdown(session)
		return
	}

	session.State = model.SessionCompleted
	session.Score = scoring.ScrambleScore(session.Correct)

	c.logger.Info("scramble session completed",
		slog.String("session_id", string(session.ID)),
		slog.Int("correct", session.Correct),
		slog.Int("score", session.Score),
	)

	// Best-effort write; the reconciler logs failures and the player's exit
	// is never blocked on it
	_ = c.reconciler.Reconcile(context.Background(), session.PlayerID, model.GameWordScramble, session.Score)
}

// armCountdown starts the per-word countdown. Caller holds the lock.
func (c *Controller) armCountdown(session *Session) {
	id := session.ID
	wordIdx := session.Current
	session.stop = c.scheduler.Start(c.wordTime, func() {
		c.expireWord(id, wordIdx)
	})
}

// cancelCountdown stops the armed countdown, if any. Caller holds the lock.
func (c *Controller) cancelCountdown(session *Session) {
	if session.stop != nil {
		session.stop()
		session.stop = nil
	}
}

// expireWord handles a countdown firing: the current word counts as missed
// and the session advances. A fire for a word the player has already
// resolved is stale and ignored.
func (c *Controller) expireWord(id model.SessionID, wordIdx int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[id]
	if !ok || session.State != model.SessionInProgress || session.Current != wordIdx {
		return
	}

	c.logger.Info("scramble word timed out",
		slog.String("session_id", string(id)),
		slog.Int("word", wordIdx+1),
	)
	c.advance(session)
}

// scramble shuffles a word's letters, guaranteeing the result differs from
// the original so the puzzle is never already solved. Repeated shuffles can
// land on the identity permutation, so it retries and finally falls back to
// a rotation.
func (c *Controller) scramble(word string) string {
	if len(word) < 2 {
		return word
	}

	letters := []rune(word)
	for attempt := 0; attempt < scrambleAttempts; attempt++ {
		c.random.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if shuffled := string(letters); shuffled != word {
			return shuffled
		}
	}

	// A word like "AAAA" can never scramble; rotating at least changes the
	// rune order deterministically when possible
	return string(append(letters[1:], letters[0]))
}

// snapshot copies a session for callers, leaving the countdown handle behind
func snapshot(session *Session) *Session {
	copied := *session
	copied.stop = nil
	copied.Words = append([]string(nil), session.Words...)
	copied.Scrambled = append([]string(nil), session.Scrambled...)
	return &copied
}
