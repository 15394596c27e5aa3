package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newPlayer(id model.PlayerID) *model.Player {
	return &model.Player{
		ID:           id,
		Name:         "Alice",
		Email:        "alice@example.com",
		MobileNumber: "9876543210",
		Age:          21,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *StorageSuite) TestCreateAndGetPlayer() {
	player := s.newPlayer("player-1")

	err := s.storage.CreatePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("player-1"))
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("player-2"))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestListPlayersSkipsDanglingIndexEntries() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("player-1"))

	// Simulate a document that vanished under its index entry
	s.mini.SAdd(playerIndexKey(), "ghost")

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
}

func (s *StorageSuite) TestWriteScore() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("player-1"))

	err := s.storage.WriteScore(s.ctx, "player-1", model.GameWordScramble, 60)
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(60, player.Scores.WordScramble)
	s.Equal(0, player.Scores.TechnicalQuiz)
}

func (s *StorageSuite) TestWriteScorePlayerNotFound() {
	err := s.storage.WriteScore(s.ctx, "nonexistent", model.GameWordScramble, 60)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
