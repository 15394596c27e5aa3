package player

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/mocks"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *ServiceSuite) validParams() RegisterParams {
	return RegisterParams{
		Name:         "Alice",
		Email:        "alice@example.com",
		MobileNumber: "9876543210",
		Age:          21,
	}
}

func (s *ServiceSuite) TestRegister() {
	player, err := s.service.Register(s.ctx, s.validParams())
	s.Require().NoError(err)

	s.NotEmpty(player.ID)
	s.Equal("Alice", player.Name)
	s.Equal(s.clock.CurrentTime, player.CreatedAt)
	s.Equal(model.Scores{}, player.Scores)

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player.ID, stored.ID)
	s.Equal(0, stored.Scores.TechnicalQuiz)
	s.Equal(0, stored.Scores.TowerOfHanoi)
	s.Equal(0, stored.Scores.WordScramble)
}

func (s *ServiceSuite) TestRegisterAssignsUniqueIDs() {
	first, err := s.service.Register(s.ctx, s.validParams())
	s.Require().NoError(err)
	second, err := s.service.Register(s.ctx, s.validParams())
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)
}

func (s *ServiceSuite) TestRegisterTrimsName() {
	params := s.validParams()
	params.Name = "  Alice  "

	player, err := s.service.Register(s.ctx, params)
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
}

func (s *ServiceSuite) TestValidation() {
	tests := []struct {
		name   string
		mutate func(*RegisterParams)
		err    error
	}{
		{"empty name", func(p *RegisterParams) { p.Name = "   " }, ErrInvalidName},
		{"missing at sign", func(p *RegisterParams) { p.Email = "alice.example.com" }, ErrInvalidEmail},
		{"at sign first", func(p *RegisterParams) { p.Email = "@example.com" }, ErrInvalidEmail},
		{"at sign last", func(p *RegisterParams) { p.Email = "alice@" }, ErrInvalidEmail},
		{"short mobile", func(p *RegisterParams) { p.MobileNumber = "12345" }, ErrInvalidMobile},
		{"non-digit mobile", func(p *RegisterParams) { p.MobileNumber = "98765abc10" }, ErrInvalidMobile},
		{"zero age", func(p *RegisterParams) { p.Age = 0 }, ErrInvalidAge},
		{"implausible age", func(p *RegisterParams) { p.Age = 130 }, ErrInvalidAge},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := s.validParams()
			tt.mutate(&params)
			_, err := s.service.Register(s.ctx, params)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *ServiceSuite) TestRestore() {
	player, err := s.service.Register(s.ctx, s.validParams())
	s.Require().NoError(err)

	restored, err := s.service.Restore(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player.ID, restored.ID)
}

func (s *ServiceSuite) TestRestoreEmptyID() {
	_, err := s.service.Restore(s.ctx, "")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestRestoreUnknownID() {
	_, err := s.service.Restore(s.ctx, "gone")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
