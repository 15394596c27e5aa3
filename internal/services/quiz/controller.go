// Package quiz drives a single technical-quiz play-through: ten questions,
// one answer each, a countdown per question, and a percentage score saved
// through the reconciliation policy on completion.
package quiz

import (
	"context"
	"errors"
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

// ErrMissingTopic is returned when a session is started without a topic
var ErrMissingTopic = errors.New("a quiz topic is required")

// DefaultQuestionTime is how long the player has per question
const DefaultQuestionTime = 10 * time.Second

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Session is the ephemeral state of one quiz play-through. It lives only in
// its controller and is discarded on abandonment.
type Session struct {
	ID         model.SessionID
	PlayerID   model.PlayerID
	State      model.SessionState
	Topic      string
	Difficulty generator.Difficulty

	// Generated is false when the fallback question set was substituted
	Generated bool

	Questions []generator.Question
	Current   int
	Correct   int
	Score     int

	// stop cancels the armed per-question countdown
	stop timer.StopFunc
}

// AnswerOutcome reports how a single answer (or timeout) was judged
type AnswerOutcome struct {
	Correct       bool
	CorrectOption int
	Session       Session
}

// Controller manages quiz sessions
type Controller struct {
	mu       sync.Mutex
	sessions map[model.SessionID]*Session

	generator    *generator.Client
	reconciler   *scoring.Reconciler
	scheduler    timer.Scheduler
	random       random.Random
	logger       *slog.Logger
	questionTime time.Duration
}

// NewController creates a new quiz controller
func NewController(
	gen *generator.Client,
	reconciler *scoring.Reconciler,
	scheduler timer.Scheduler,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions:     make(map[model.SessionID]*Session),
		generator:    gen,
		reconciler:   reconciler,
		scheduler:    scheduler,
		random:       rnd,
		logger:       logger,
		questionTime: DefaultQuestionTime,
	}
}

// Start configures and begins a session. The question fetch is awaited
// before the session enters play; generation failures fall back to the
// built-in set transparently.
func (c *Controller) Start(ctx context.Context, playerID model.PlayerID, topic, difficulty string) (*Session, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrMissingTopic
	}
	diff, err := generator.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	questions, generated := c.generator.Questions(ctx, topic, diff)

	c.mu.Lock()
	defer c.mu.Unlock()

	session := &Session{
		ID:         model.SessionID(c.random.String(12, sessionIDAlphabet)),
		PlayerID:   playerID,
		State:      model.SessionInProgress,
		Topic:      topic,
		Difficulty: diff,
		Generated:  generated,
		Questions:  questions,
	}
	c.sessions[session.ID] = session
	c.armCountdown(session)

	c.logger.Info("quiz session started",
		slog.String("session_id", string(session.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("topic", topic),
		slog.Bool("generated", generated),
	)

	return snapshot(session), nil
}

// Answer records the player's selected option for the current question and
// advances the session. The outstanding countdown is cancelled first so a
// stale expiry cannot double-advance past the next question.
func (c *Controller) Answer(ctx context.Context, id model.SessionID, option int) (*AnswerOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.inProgress(id)
	if err != nil {
		return nil, err
	}
	if option < 0 || option >= generator.OptionCount {
		return nil, model.ErrInvalidOption
	}

	c.cancelCountdown(session)

	question := session.Questions[session.Current]
	correct := option == question.CorrectOption
	if correct {
		session.Correct++
	}

	c.advance(session)

	return &AnswerOutcome{
		Correct:       correct,
		CorrectOption: question.CorrectOption,
		Session:       *snapshot(session),
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

	c.logger.Info("quiz session abandoned", slog.String("session_id", string(id)))
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

// advance moves to the next question or completes the session. Caller holds
// the lock.
func (c *Controller) advance(session *Session) {
	session.Current++
	if session.Current < len(session.Questions) {
		c.armCountdown(session)
		return
	}

	session.State = model.SessionCompleted
	session.Score = scoring.QuizScore(session.Correct, len(session.Questions))

	c.logger.Info("quiz session completed",
		slog.String("session_id", string(session.ID)),
		slog.Int("correct", session.Correct),
		slog.Int("score", session.Score),
	)

	// Best-effort write; the reconciler logs failures and the player's exit
	// is never blocked on it
	_ = c.reconciler.Reconcile(context.Background(), session.PlayerID, model.GameTechnicalQuiz, session.Score)
}

// armCountdown starts the per-question countdown. Caller holds the lock.
func (c *Controller) armCountdown(session *Session) {
	id := session.ID
	questionIdx := session.Current
	session.stop = c.scheduler.Start(c.questionTime, func() {
		c.expireQuestion(id, questionIdx)
	})
}

// cancelCountdown stops the armed countdown, if any. Caller holds the lock.
func (c *Controller) cancelCountdown(session *Session) {
	if session.stop != nil {
		session.stop()
		session.stop = nil
	}
}

// expireQuestion handles a countdown firing: the current question counts as
// incorrect and the session advances. A fire for a question the player has
// already answered is stale and ignored.
func (c *Controller) expireQuestion(id model.SessionID, questionIdx int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[id]
	if !ok || session.State != model.SessionInProgress || session.Current != questionIdx {
		return
	}

	c.logger.Info("quiz question timed out",
		slog.String("session_id", string(id)),
		slog.Int("question", questionIdx+1),
	)
	c.advance(session)
}

// snapshot copies a session for callers, leaving the countdown handle behind
func snapshot(session *Session) *Session {
	copied := *session
	copied.stop = nil
	return &copied
}
