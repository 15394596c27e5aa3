package scoring

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
)

type ReconcilerSuite struct {
	suite.Suite
	storage    *memory.Storage
	reconciler *Reconciler
	ctx        context.Context
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	s.storage = memory.New()
	s.reconciler = NewReconciler(s.storage, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	s.ctx = context.Background()

	err := s.storage.CreatePlayer(s.ctx, &model.Player{
		ID:        "player-1",
		Name:      "Alice",
		CreatedAt: time.Now(),
	})
	s.Require().NoError(err)
}

func (s *ReconcilerSuite) score(game model.GameKey) int {
	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	return player.Scores.Get(game)
}

func (s *ReconcilerSuite) TestPolicyFor() {
	s.Equal(PolicyOverwrite, PolicyFor(model.GameTechnicalQuiz))
	s.Equal(PolicyBestScore, PolicyFor(model.GameTowerOfHanoi))
	s.Equal(PolicyOverwrite, PolicyFor(model.GameWordScramble))
}

func (s *ReconcilerSuite) TestQuizOverwritesUnconditionally() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTechnicalQuiz, 80))
	s.Equal(80, s.score(model.GameTechnicalQuiz))

	// A worse replay still overwrites
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTechnicalQuiz, 40))
	s.Equal(40, s.score(model.GameTechnicalQuiz))
}

func (s *ReconcilerSuite) TestQuizOverwriteIsIdempotent() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTechnicalQuiz, 70))
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTechnicalQuiz, 70))
	s.Equal(70, s.score(model.GameTechnicalQuiz))
}

func (s *ReconcilerSuite) TestHanoiKeepsBestScore() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 80))
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 60))
	s.Equal(80, s.score(model.GameTowerOfHanoi))
}

func (s *ReconcilerSuite) TestHanoiAcceptsImprovement() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 60))
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 80))
	s.Equal(80, s.score(model.GameTowerOfHanoi))
}

func (s *ReconcilerSuite) TestHanoiDiscardsTie() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 80))
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTowerOfHanoi, 80))
	s.Equal(80, s.score(model.GameTowerOfHanoi))
}

func (s *ReconcilerSuite) TestScrambleOverwrites() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameWordScramble, 100))
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameWordScramble, 20))
	s.Equal(20, s.score(model.GameWordScramble))
}

func (s *ReconcilerSuite) TestMissingPlayerFailsSoft() {
	err := s.reconciler.Reconcile(s.ctx, "nonexistent", model.GameTowerOfHanoi, 80)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	err = s.reconciler.Reconcile(s.ctx, "nonexistent", model.GameTechnicalQuiz, 80)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ReconcilerSuite) TestUnknownGameRejected() {
	err := s.reconciler.Reconcile(s.ctx, "player-1", model.GameKey("ticTacToe"), 80)
	s.ErrorIs(err, model.ErrUnknownGame)
}

func (s *ReconcilerSuite) TestOtherScoresUntouched() {
	s.Require().NoError(s.reconciler.Reconcile(s.ctx, "player-1", model.GameTechnicalQuiz, 100))

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(100, player.Scores.TechnicalQuiz)
	s.Equal(0, player.Scores.TowerOfHanoi)
	s.Equal(0, player.Scores.WordScramble)
}
