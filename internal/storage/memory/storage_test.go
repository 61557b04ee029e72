package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.Storage = New()
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestReturnedPlayerIsACopy() {
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, &model.Player{ID: "player-1", DisplayName: "Alice"}))

	p, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	p.DisplayName = "Mallory"

	again, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alice", again.DisplayName)
}
