package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	path    string
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.Ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "data", "wordcoach.db")

	st, err := New(s.Ctx, s.path)
	s.Require().NoError(err)
	s.storage = st
	s.Storage = st
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) TestDataSurvivesReopen() {
	session := &model.Session{ID: "session-1", PlayerID: "player-1", Tiles: model.NewTiles("AEBCDFG")}
	s.Require().NoError(s.storage.SaveSession(s.Ctx, session))
	s.Require().NoError(s.storage.Close())

	reopened, err := New(s.Ctx, s.path)
	s.Require().NoError(err)
	s.storage = reopened

	retrieved, err := reopened.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("AEBCDFG", retrieved.Tiles.String())
}

func (s *StorageSuite) TestChangingUsernameUpdatesLookup() {
	rp := &model.RegisteredPlayer{PlayerID: "player-1", Username: "alice"}
	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.Ctx, rp))

	rp.Username = "alice2"
	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.Ctx, rp))

	_, err := s.storage.GetRegisteredPlayerByUsername(s.Ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	found, err := s.storage.GetRegisteredPlayerByUsername(s.Ctx, "alice2")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), found.PlayerID)
}

func (s *StorageSuite) TestDuplicateDictionaryWordsCollapse() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.Ctx, []string{"cat", "cat", "dog"}))

	words, err := s.storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cat", "dog"}, words)
}
