package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/dependencies/mocks"
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/storage/memory"
	"github.com/mcoot/wordcoach/internal/testutil"
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
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, random.New(), testutil.NopLogger(), DefaultConfig())
	s.ctx = context.Background()
}

// CreateGuestPlayer tests

func (s *ServiceSuite) TestCreateGuestPlayerSucceeds() {
	login, err := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.NotEmpty(login.Token)
	s.Equal("Alice", login.Player.DisplayName)
	s.True(login.Player.IsGuest)
	s.NotEmpty(login.PlayerID)
}

func (s *ServiceSuite) TestCreateGuestPlayerDefaultName() {
	login, err := s.service.CreateGuestPlayer(s.ctx, "  ")
	s.Require().NoError(err)
	s.Equal("Guest", login.Player.DisplayName)
}

func (s *ServiceSuite) TestCreateGuestPlayerPersistsPlayer() {
	login, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	player, err := s.storage.GetPlayer(s.ctx, login.PlayerID)
	s.Require().NoError(err)
	s.Equal("Alice", player.DisplayName)
}

func (s *ServiceSuite) TestIdentifiersComeFromRandomSource() {
	rng := mocks.NewMockRandom()
	rng.QueueString("player", "token")
	svc := New(s.storage, s.clock, rng, testutil.NopLogger(), DefaultConfig())

	login, err := svc.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal("p_player", string(login.PlayerID))
	s.Equal("tok_token", login.Token)
}

// RegisterPlayer tests

func (s *ServiceSuite) TestRegisterPlayerSucceeds() {
	login, err := s.service.RegisterPlayer(s.ctx, "alice", "password123", "Alice")
	s.Require().NoError(err)

	s.False(login.Player.IsGuest)
	s.Equal("Alice", login.Player.DisplayName)

	rp, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(login.PlayerID, rp.PlayerID)
	s.NotEqual("password123", rp.PasswordHash)
}

func (s *ServiceSuite) TestRegisterPlayerDisplayNameDefaultsToUsername() {
	login, err := s.service.RegisterPlayer(s.ctx, "alice", "password123", "")
	s.Require().NoError(err)
	s.Equal("alice", login.Player.DisplayName)
}

func (s *ServiceSuite) TestRegisterPlayerFailsIfUsernameExists() {
	_, _ = s.service.RegisterPlayer(s.ctx, "alice", "password123", "Alice")

	_, err := s.service.RegisterPlayer(s.ctx, "alice", "different", "Alice 2")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterPlayerValidatesInput() {
	_, err := s.service.RegisterPlayer(s.ctx, "", "password123", "Alice")
	s.ErrorIs(err, ErrMissingFields)

	_, err = s.service.RegisterPlayer(s.ctx, "alice", "short", "Alice")
	s.ErrorIs(err, ErrMissingFields)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, _ := s.service.RegisterPlayer(s.ctx, "alice", "password123", "Alice")

	login, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.Equal(registered.PlayerID, login.PlayerID)
	s.NotEqual(registered.Token, login.Token)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.RegisterPlayer(s.ctx, "alice", "password123", "Alice")

	_, err := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Validate tests

func (s *ServiceSuite) TestValidateFailsWithUnknownToken() {
	_, err := s.service.Validate("invalid_token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateFailsWhenExpired() {
	login, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.Validate(login.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestLogout() {
	login, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.service.Logout(login.Token)
	s.service.Logout("unknown_token")

	_, err := s.service.Validate(login.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestGetPlayer() {
	login, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	player, err := s.service.GetPlayer(login.Token)
	s.Require().NoError(err)
	s.Equal("Alice", player.DisplayName)

	_, err = s.service.GetPlayer("invalid_token")
	s.ErrorIs(err, ErrInvalidToken)
}

// PruneExpired tests

func (s *ServiceSuite) TestPruneExpired() {
	old, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.CreateGuestPlayer(s.ctx, "Bob")

	s.Equal(1, s.service.PruneExpired())

	_, err := s.service.Validate(old.Token)
	s.ErrorIs(err, ErrInvalidToken)
	_, err = s.service.Validate(fresh.Token)
	s.NoError(err)
}

func (s *ServiceSuite) TestRunPrunerStopsWithContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- s.service.RunPruner(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("pruner did not stop")
	}
}
