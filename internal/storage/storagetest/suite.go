// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/storage"
)

// Suite runs the common storage tests. Backend suites embed it and set
// Storage in their SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func (s *Suite) session(id model.SessionID, playerID model.PlayerID, offset time.Duration) *model.Session {
	return &model.Session{
		ID:        id,
		PlayerID:  playerID,
		Tiles:     model.NewTiles("AEBCDFG"),
		Phase:     model.PhaseIdle,
		CreatedAt: epoch.Add(offset),
		UpdatedAt: epoch.Add(offset),
	}
}

// Player tests

func (s *Suite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   epoch,
	}

	err := s.Storage.SavePlayer(s.Ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
	s.False(retrieved.IsGuest)
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.Storage.GetPlayer(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestDeletePlayer() {
	_ = s.Storage.SavePlayer(s.Ctx, &model.Player{ID: "player-1", DisplayName: "Alice"})

	err := s.Storage.DeletePlayer(s.Ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.Storage.GetPlayer(s.Ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Registered player tests

func (s *Suite) TestSaveAndGetRegisteredPlayer() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    epoch,
	}

	err := s.Storage.SaveRegisteredPlayer(s.Ctx, rp)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetRegisteredPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("hash123", retrieved.PasswordHash)

	byName, err := s.Storage.GetRegisteredPlayerByUsername(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), byName.PlayerID)
}

func (s *Suite) TestGetRegisteredPlayerByUsernameNotFound() {
	_, err := s.Storage.GetRegisteredPlayerByUsername(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Session tests

func (s *Suite) TestSaveAndGetSession() {
	session := s.session("session-1", "player-1", 0)
	session.Word = "BEAD"
	session.Sentence = "I found a bead."
	session.Phase = model.PhaseResolved
	session.Generation = 3
	session.LastResult = &model.ValidationResult{
		IsValidWord:            true,
		CanBeMadeFromTiles:     true,
		IsGrammaticallyCorrect: true,
		Feedback:               "Excellent!",
		Score:                  7,
	}

	err := s.Storage.SaveSession(s.Ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Tiles, retrieved.Tiles)
	s.Equal("BEAD", retrieved.Word)
	s.Equal(model.PhaseResolved, retrieved.Phase)
	s.Equal(uint64(3), retrieved.Generation)
	s.Require().NotNil(retrieved.LastResult)
	s.Equal(*session.LastResult, *retrieved.LastResult)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *Suite) TestGetSessionNotFound() {
	_, err := s.Storage.GetSession(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *Suite) TestSavedSessionIsACopy() {
	session := s.session("session-1", "player-1", 0)
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, session))

	session.Word = "CHANGED"
	session.Tiles[0] = 'Z'

	retrieved, err := s.Storage.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Word)
	s.Equal("AEBCDFG", retrieved.Tiles.String())
}

func (s *Suite) TestSaveSessionOverwrites() {
	session := s.session("session-1", "player-1", 0)
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, session))

	session.Phase = model.PhaseEditing
	session.Word = "CAB"
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, session))

	retrieved, err := s.Storage.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.PhaseEditing, retrieved.Phase)
	s.Equal("CAB", retrieved.Word)
	s.Nil(retrieved.LastResult)
}

func (s *Suite) TestDeleteSession() {
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, s.session("session-1", "player-1", 0)))

	err := s.Storage.DeleteSession(s.Ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.Storage.GetSession(s.Ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	sessions, err := s.Storage.ListSessionsForPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *Suite) TestListSessionsForPlayer() {
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, s.session("session-2", "player-1", time.Minute)))
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, s.session("session-1", "player-1", 0)))
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, s.session("session-3", "player-2", 0)))

	sessions, err := s.Storage.ListSessionsForPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("session-1"), sessions[0].ID)
	s.Equal(model.SessionID("session-2"), sessions[1].ID)
}

func (s *Suite) TestListSessionsForPlayerWithNone() {
	sessions, err := s.Storage.ListSessionsForPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.NotNil(sessions)
	s.Empty(sessions)
}

// Dictionary tests

func (s *Suite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}
	err := s.Storage.SaveDictionaryWords(s.Ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *Suite) TestSaveDictionaryWordsReplaces() {
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"apple", "banana"}))
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"cherry"}))

	retrieved, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]string{"cherry"}, retrieved)
}

func (s *Suite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
