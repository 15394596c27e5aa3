package leaderboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	epoch   time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	s.ctx = context.Background()
	s.epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (s *ServiceSuite) addPlayer(id model.PlayerID, name string, createdAt time.Time, quizScore int) {
	player := &model.Player{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
	}
	player.Scores.TechnicalQuiz = quizScore
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))
}

func (s *ServiceSuite) TestOrderingAndTieBreak() {
	// A and B tie on score; B registered earlier and must rank higher
	s.addPlayer("a", "A", s.epoch.Add(time.Hour), 50)
	s.addPlayer("b", "B", s.epoch, 50)
	s.addPlayer("c", "C", s.epoch.Add(2*time.Hour), 70)

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)
	s.Require().Len(board, 3)

	s.Equal(model.PlayerID("c"), board[0].PlayerID)
	s.Equal(70, board[0].Score)
	s.Equal(1, board[0].Rank)

	s.Equal(model.PlayerID("b"), board[1].PlayerID)
	s.Equal(50, board[1].Score)
	s.Equal(2, board[1].Rank)

	s.Equal(model.PlayerID("a"), board[2].PlayerID)
	s.Equal(50, board[2].Score)
	s.Equal(3, board[2].Rank)
}

func (s *ServiceSuite) TestRanksAreDense() {
	for i, score := range []int{90, 90, 90, 40} {
		s.addPlayer(model.PlayerID(rune('a'+i)), "P", s.epoch.Add(time.Duration(i)*time.Minute), score)
	}

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)
	s.Require().Len(board, 4)
	for i, entry := range board {
		s.Equal(i+1, entry.Rank)
	}
}

func (s *ServiceSuite) TestZeroScoresFiltered() {
	s.addPlayer("a", "A", s.epoch, 0)
	s.addPlayer("b", "B", s.epoch, 30)

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)
	s.Require().Len(board, 1)
	s.Equal(model.PlayerID("b"), board[0].PlayerID)
}

func (s *ServiceSuite) TestLimitApplied() {
	for i := 0; i < 15; i++ {
		s.addPlayer(model.PlayerID(rune('a'+i)), "P", s.epoch.Add(time.Duration(i)*time.Minute), 10+i)
	}

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)
	s.Len(board, DefaultLimit)
	s.Equal(1, board[0].Rank)
	s.Equal(DefaultLimit, board[len(board)-1].Rank)
}

func (s *ServiceSuite) TestDeterministicAcrossReads() {
	for i := 0; i < 8; i++ {
		s.addPlayer(model.PlayerID(rune('a'+i)), "P", s.epoch.Add(time.Duration(i)*time.Minute), 50)
	}

	first, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		again, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *ServiceSuite) TestPodiumSplit() {
	for i := 0; i < 5; i++ {
		s.addPlayer(model.PlayerID(rune('a'+i)), "P", s.epoch.Add(time.Duration(i)*time.Minute), 100-i*10)
	}

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)

	podium := board.Podium()
	s.Require().Len(podium, 3)
	s.Equal(1, podium[0].Rank)
	s.Equal(3, podium[2].Rank)

	tail := board.Tail()
	s.Require().Len(tail, 2)
	s.Equal(4, tail[0].Rank)
}

func (s *ServiceSuite) TestPodiumSmallBoard() {
	s.addPlayer("a", "A", s.epoch, 40)

	board, err := s.service.Top(s.ctx, model.GameTechnicalQuiz)
	s.Require().NoError(err)
	s.Len(board.Podium(), 1)
	s.Nil(board.Tail())
}

func (s *ServiceSuite) TestUnknownGame() {
	_, err := s.service.Top(s.ctx, model.GameKey("ticTacToe"))
	s.ErrorIs(err, model.ErrUnknownGame)
}

func (s *ServiceSuite) TestAllReturnsEveryBoard() {
	player := &model.Player{ID: "a", Name: "A", CreatedAt: s.epoch}
	player.Scores = model.Scores{TechnicalQuiz: 50, TowerOfHanoi: 60, WordScramble: 80}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	boards, err := s.service.All(s.ctx)
	s.Require().NoError(err)
	s.Len(boards, 3)
	s.Len(boards[model.GameTowerOfHanoi], 1)
	s.Equal(60, boards[model.GameTowerOfHanoi][0].Score)
}

// failingStore always errors, to exercise the aggregate failure path
type failingStore struct {
	storage.PlayerStore
}

func (f *failingStore) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return nil, errors.New("store unreachable")
}

func (s *ServiceSuite) TestAllFailsAsAWhole() {
	service := New(&failingStore{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	boards, err := service.All(s.ctx)
	s.Error(err)
	s.Nil(boards)
	s.Contains(err.Error(), "fetch leaderboards")
}

func (s *ServiceSuite) TestShareQR() {
	png, err := s.service.ShareQR("http://localhost:8080/leaderboard/technicalQuiz")
	s.Require().NoError(err)
	// PNG magic bytes
	s.True(bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}))
}
