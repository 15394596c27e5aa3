package quiz

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/mocks"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scoring"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
)

const testPlayerID = model.PlayerID("player-1")

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	scheduler  *mocks.MockScheduler
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.ctx = context.Background()

	s.storage = memory.New()
	err := s.storage.CreatePlayer(s.ctx, &model.Player{
		ID:        testPlayerID,
		Name:      "Alice",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	s.scheduler = mocks.NewMockScheduler()
	s.random = mocks.NewMockRandom()
	s.random.QueueString("QUIZSESSION1", "QUIZSESSION2", "QUIZSESSION3")

	// No API key, so every session plays the built-in question set
	gen := generator.New(generator.Config{}, logger)
	reconciler := scoring.NewReconciler(s.storage, logger)

	s.controller = NewController(gen, reconciler, s.scheduler, s.random, logger)
}

func (s *ControllerSuite) start() *Session {
	session, err := s.controller.Start(s.ctx, testPlayerID, "Go", "easy")
	s.Require().NoError(err)
	return session
}

func (s *ControllerSuite) TestStart() {
	session := s.start()

	s.Equal(model.SessionID("QUIZSESSION1"), session.ID)
	s.Equal(model.SessionInProgress, session.State)
	s.False(session.Generated)
	s.Len(session.Questions, generator.QuestionCount)
	s.Equal(0, session.Current)
	s.Equal(1, s.scheduler.Pending())
}

func (s *ControllerSuite) TestStartRequiresTopic() {
	_, err := s.controller.Start(s.ctx, testPlayerID, "   ", "easy")
	s.ErrorIs(err, ErrMissingTopic)
	s.Equal(0, s.scheduler.Started())
}

func (s *ControllerSuite) TestStartRejectsUnknownDifficulty() {
	_, err := s.controller.Start(s.ctx, testPlayerID, "Go", "impossible")
	s.ErrorIs(err, generator.ErrInvalidDifficulty)
}

func (s *ControllerSuite) TestAnswerAdvances() {
	session := s.start()
	correct := session.Questions[0].CorrectOption

	outcome, err := s.controller.Answer(s.ctx, session.ID, correct)
	s.Require().NoError(err)
	s.True(outcome.Correct)
	s.Equal(correct, outcome.CorrectOption)
	s.Equal(1, outcome.Session.Current)
	s.Equal(1, outcome.Session.Correct)

	// The first countdown was cancelled and the next one armed
	s.Equal(1, s.scheduler.Pending())
	s.Equal(2, s.scheduler.Started())
}

func (s *ControllerSuite) TestAnswerRejectsOutOfRangeOption() {
	session := s.start()

	_, err := s.controller.Answer(s.ctx, session.ID, generator.OptionCount)
	s.ErrorIs(err, model.ErrInvalidOption)

	_, err = s.controller.Answer(s.ctx, session.ID, -1)
	s.ErrorIs(err, model.ErrInvalidOption)

	// The session did not move
	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(0, got.Current)
}

func (s *ControllerSuite) TestPerfectRunScoresHundred() {
	session := s.start()

	var last *AnswerOutcome
	for i := 0; i < generator.QuestionCount; i++ {
		got, err := s.controller.Get(session.ID)
		s.Require().NoError(err)

		last, err = s.controller.Answer(s.ctx, session.ID, got.Questions[got.Current].CorrectOption)
		s.Require().NoError(err)
	}

	s.Equal(model.SessionCompleted, last.Session.State)
	s.Equal(generator.QuestionCount, last.Session.Correct)
	s.Equal(100, last.Session.Score)
	s.Equal(0, s.scheduler.Pending())

	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(100, stored.Scores.TechnicalQuiz)
}

func (s *ControllerSuite) TestTimeoutCountsAsIncorrect() {
	session := s.start()

	s.Require().True(s.scheduler.Fire())

	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(1, got.Current)
	s.Equal(0, got.Correct)
	s.Equal(model.SessionInProgress, got.State)
}

func (s *ControllerSuite) TestAllTimeoutsScoreZero() {
	session := s.start()

	for i := 0; i < generator.QuestionCount; i++ {
		s.Require().True(s.scheduler.Fire())
	}

	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionCompleted, got.State)
	s.Equal(0, got.Score)

	// The quiz overwrites, so even a zero run is written
	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(0, stored.Scores.TechnicalQuiz)
}

func (s *ControllerSuite) TestReplayOverwritesLowerScore() {
	first := s.start()
	for i := 0; i < generator.QuestionCount; i++ {
		got, err := s.controller.Get(first.ID)
		s.Require().NoError(err)
		_, err = s.controller.Answer(s.ctx, first.ID, got.Questions[got.Current].CorrectOption)
		s.Require().NoError(err)
	}

	second := s.start()
	for i := 0; i < generator.QuestionCount; i++ {
		s.Require().True(s.scheduler.Fire())
	}
	_, err := s.controller.Get(second.ID)
	s.Require().NoError(err)

	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(0, stored.Scores.TechnicalQuiz, "latest run replaces a better stored score")
}

func (s *ControllerSuite) TestAnswerAfterCompletion() {
	session := s.start()
	for i := 0; i < generator.QuestionCount; i++ {
		s.Require().True(s.scheduler.Fire())
	}

	_, err := s.controller.Answer(s.ctx, session.ID, 0)
	s.ErrorIs(err, model.ErrSessionComplete)
}

func (s *ControllerSuite) TestAbandonDiscardsSession() {
	session := s.start()
	correct := session.Questions[0].CorrectOption
	_, err := s.controller.Answer(s.ctx, session.ID, correct)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.Abandon(session.ID))
	s.Equal(0, s.scheduler.Pending())

	_, err = s.controller.Get(session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	// No partial score leaked to the store
	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(0, stored.Scores.TechnicalQuiz)
}

func (s *ControllerSuite) TestUnknownSession() {
	_, err := s.controller.Get("missing")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.controller.Answer(s.ctx, "missing", 0)
	s.ErrorIs(err, model.ErrSessionNotFound)

	s.ErrorIs(s.controller.Abandon("missing"), model.ErrSessionNotFound)
}
