package scramble

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
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

func sortLetters(word string) string {
	letters := strings.Split(word, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

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
	s.random.QueueString("SCRAMSESSION1", "SCRAMSESSION2", "SCRAMSESSION3")

	// No API key, so every session plays the built-in word set
	gen := generator.New(generator.Config{}, logger)
	reconciler := scoring.NewReconciler(s.storage, logger)

	s.controller = NewController(gen, reconciler, s.scheduler, s.random, logger)
}

func (s *ControllerSuite) start() *Session {
	session, err := s.controller.Start(s.ctx, testPlayerID, "medium")
	s.Require().NoError(err)
	return session
}

func (s *ControllerSuite) TestStart() {
	session := s.start()

	s.Equal(model.SessionInProgress, session.State)
	s.False(session.Generated)
	s.Equal(generator.FallbackWords(generator.DifficultyMedium), session.Words)
	s.Len(session.Scrambled, generator.WordCount)
	s.Equal(1, s.scheduler.Pending())

	for i, scrambled := range session.Scrambled {
		s.NotEqual(session.Words[i], scrambled, "word %d presented unscrambled", i+1)
		s.Equal(sortLetters(session.Words[i]), sortLetters(scrambled), "word %d is not an anagram", i+1)
	}
}

func (s *ControllerSuite) TestStartRejectsUnknownDifficulty() {
	_, err := s.controller.Start(s.ctx, testPlayerID, "impossible")
	s.ErrorIs(err, generator.ErrInvalidDifficulty)
	s.Equal(0, s.scheduler.Started())
}

func (s *ControllerSuite) TestScrambleNeverIdentityEvenWhenShuffleIs() {
	s.random.ShuffleFunc = func(n int, swap func(i, j int)) {}

	session := s.start()
	for i, scrambled := range session.Scrambled {
		s.NotEqual(session.Words[i], scrambled)
	}
}

func (s *ControllerSuite) TestGuessIsCaseInsensitive() {
	session := s.start()

	outcome, err := s.controller.Guess(s.ctx, session.ID, strings.ToLower(session.Words[0]))
	s.Require().NoError(err)
	s.True(outcome.Correct)
	s.Equal(session.Words[0], outcome.Word)
	s.Equal(1, outcome.Session.Current)
	s.Equal(1, outcome.Session.Correct)
}

func (s *ControllerSuite) TestWrongGuessRevealsAndAdvances() {
	session := s.start()

	outcome, err := s.controller.Guess(s.ctx, session.ID, "WRONG")
	s.Require().NoError(err)
	s.False(outcome.Correct)
	s.Equal(session.Words[0], outcome.Word)
	s.Equal(1, outcome.Session.Current)
	s.Equal(0, outcome.Session.Correct)

	// The first countdown was cancelled and the next one armed
	s.Equal(1, s.scheduler.Pending())
	s.Equal(2, s.scheduler.Started())
}

func (s *ControllerSuite) TestEmptyGuessRejected() {
	session := s.start()

	_, err := s.controller.Guess(s.ctx, session.ID, "   ")
	s.ErrorIs(err, model.ErrEmptyGuess)

	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(0, got.Current)
}

func (s *ControllerSuite) TestPerfectRunScoresHundred() {
	session := s.start()

	var last *GuessOutcome
	for _, word := range session.Words {
		var err error
		last, err = s.controller.Guess(s.ctx, session.ID, word)
		s.Require().NoError(err)
	}

	s.Equal(model.SessionCompleted, last.Session.State)
	s.Equal(generator.WordCount*scoring.PointsPerWord, last.Session.Score)
	s.Equal(0, s.scheduler.Pending())

	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(100, stored.Scores.WordScramble)
}

func (s *ControllerSuite) TestTimeoutCountsAsMissed() {
	session := s.start()

	s.Require().True(s.scheduler.Fire())

	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(1, got.Current)
	s.Equal(0, got.Correct)
}

func (s *ControllerSuite) TestPartialRunScoresPerWord() {
	session := s.start()

	// Two correct, three timeouts: 2 * 20 = 40
	for _, word := range session.Words[:2] {
		_, err := s.controller.Guess(s.ctx, session.ID, word)
		s.Require().NoError(err)
	}
	for i := 0; i < 3; i++ {
		s.Require().True(s.scheduler.Fire())
	}

	got, err := s.controller.Get(session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionCompleted, got.State)
	s.Equal(40, got.Score)
}

func (s *ControllerSuite) TestReplayOverwritesBetterScore() {
	first := s.start()
	for _, word := range first.Words {
		_, err := s.controller.Guess(s.ctx, first.ID, word)
		s.Require().NoError(err)
	}

	second := s.start()
	for range second.Words {
		s.Require().True(s.scheduler.Fire())
	}

	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(0, stored.Scores.WordScramble, "latest run replaces a better stored score")
}

func (s *ControllerSuite) TestGuessAfterCompletion() {
	session := s.start()
	for range session.Words {
		s.Require().True(s.scheduler.Fire())
	}

	_, err := s.controller.Guess(s.ctx, session.ID, "APPLE")
	s.ErrorIs(err, model.ErrSessionComplete)
}

func (s *ControllerSuite) TestAbandonDiscardsSession() {
	session := s.start()
	_, err := s.controller.Guess(s.ctx, session.ID, session.Words[0])
	s.Require().NoError(err)

	s.Require().NoError(s.controller.Abandon(session.ID))
	s.Equal(0, s.scheduler.Pending())

	_, err = s.controller.Get(session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	stored, err := s.storage.GetPlayer(s.ctx, testPlayerID)
	s.Require().NoError(err)
	s.Equal(0, stored.Scores.WordScramble)
}
