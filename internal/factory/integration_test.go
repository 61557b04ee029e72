package factory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/config"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/judge/judgetest"
	redisstorage "github.com/mcoot/wordcoach/internal/storage/redis"
	"github.com/mcoot/wordcoach/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.LoadTestDictionary()
}

func (s *IntegrationSuite) TearDownTest() {
	s.NoError(s.app.Close())
}

func (s *IntegrationSuite) guest() model.PlayerID {
	login, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Tester")
	s.Require().NoError(err)
	return login.PlayerID
}

// Test: a guest plays a full round with the offline judge
func (s *IntegrationSuite) TestCompleteRound() {
	player := s.guest()
	s.app.QueueStandardHand()

	session, err := s.app.SessionController.Start(s.ctx, player)
	s.Require().NoError(err)
	s.Equal("AEBCDFG", session.Tiles.String())
	s.Equal(model.PhaseIdle, session.Phase)

	session, err = s.app.SessionController.Edit(s.ctx, session.ID, player, "bead", "She threaded a bead onto the string.")
	s.Require().NoError(err)
	s.Equal(model.PhaseEditing, session.Phase)

	session, err = s.app.SessionController.Submit(s.ctx, session.ID, player)
	s.Require().NoError(err)
	s.Equal(model.PhaseResolved, session.Phase)
	s.Require().NotNil(session.LastResult)
	s.True(session.LastResult.Passed())
	s.Equal(7, session.LastResult.Score) // B3 E1 A1 D2

	stored, err := s.app.Storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.LastResult, stored.LastResult)
}

// Test: a word not buildable from the hand fails with a hint
func (s *IntegrationSuite) TestWrongTiles() {
	player := s.guest()
	s.app.QueueStandardHand()
	session, err := s.app.SessionController.Start(s.ctx, player)
	s.Require().NoError(err)

	_, err = s.app.SessionController.Edit(s.ctx, session.ID, player, "zebra", "A zebra ran past.")
	s.Require().NoError(err)
	session, err = s.app.SessionController.Submit(s.ctx, session.ID, player)
	s.Require().NoError(err)

	s.True(session.LastResult.IsValidWord)
	s.False(session.LastResult.CanBeMadeFromTiles)
	s.Contains(session.LastResult.Feedback, "You could make 'BADGE'.")
	s.Equal(0, session.LastResult.Score)
}

// Test: a new game discards the result and deals new tiles
func (s *IntegrationSuite) TestNewGameAfterRound() {
	player := s.guest()
	s.app.QueueStandardHand()
	session, err := s.app.SessionController.Start(s.ctx, player)
	s.Require().NoError(err)
	_, err = s.app.SessionController.Edit(s.ctx, session.ID, player, "cab", "The cab was late.")
	s.Require().NoError(err)
	_, err = s.app.SessionController.Submit(s.ctx, session.ID, player)
	s.Require().NoError(err)

	session, err = s.app.SessionController.NewGame(s.ctx, session.ID, player)
	s.Require().NoError(err)
	s.Equal(model.PhaseIdle, session.Phase)
	s.Nil(session.LastResult)
	s.Empty(session.Word)
	s.True(session.Tiles.IsPlayable())
}

// Test: the judge failure path through the wired app
func (s *IntegrationSuite) TestJudgeFailureLeavesSessionEditable() {
	fake := judgetest.New()
	app := NewTestAppWithJudge(fake)
	defer app.Close()
	fake.QueueError(errors.New("model overloaded"))

	login, err := app.AuthService.CreateGuestPlayer(s.ctx, "")
	s.Require().NoError(err)
	session, err := app.SessionController.Start(s.ctx, login.PlayerID)
	s.Require().NoError(err)
	_, err = app.SessionController.Edit(s.ctx, session.ID, login.PlayerID, "cab", "The cab was late.")
	s.Require().NoError(err)

	_, err = app.SessionController.Submit(s.ctx, session.ID, login.PlayerID)
	s.ErrorIs(err, model.ErrValidationUnavailable)

	session, err = app.SessionController.Get(s.ctx, session.ID, login.PlayerID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEditing, session.Phase)
	s.Nil(session.LastResult)
	s.Equal(1, fake.CallCount())
}

// Test: the coaching games are wired to the mock model
func (s *IntegrationSuite) TestCoachIsWired() {
	s.Require().NotNil(s.app.CoachService)
	s.app.MockLLM.QueueJSON(`{"clues":["Striped animal","Lives on the savanna"]}`)

	clues, err := s.app.CoachService.ArticulateClues(s.ctx, model.ArticulateCluesRequest{Word: "zebra", ContextText: "safari"})
	s.Require().NoError(err)
	s.Len(clues.Clues, 2)
}

func (s *IntegrationSuite) TestNewDefaultsToMemoryAndDictionaryJudge() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("bead\ncab\n"), 0o644))

	app, err := New(s.ctx, Config{DictionaryPath: path})
	s.Require().NoError(err)
	defer app.Close()

	s.Nil(app.CoachService)
	s.Nil(app.LLM)
	s.True(app.DictionaryService.IsValidWord("BEAD"))
	s.Equal(2, app.DictionaryService.WordCount())
}

func (s *IntegrationSuite) TestNewWithSQLite() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("bead\n"), 0o644))

	app, err := New(s.ctx, Config{
		StorageType:    config.StorageSQLite,
		SQLitePath:     filepath.Join(dir, "wordcoach.db"),
		DictionaryPath: path,
		Seed:           7,
	})
	s.Require().NoError(err)
	defer app.Close()

	words, err := app.Storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"bead"}, words)
}

func (s *IntegrationSuite) TestNewWithRedis() {
	mr := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(s.ctx, Config{StorageType: config.StorageRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	defer app.Close()

	login, err := app.AuthService.CreateGuestPlayer(s.ctx, "Redis")
	s.Require().NoError(err)
	s.True(mr.Exists("wordcoach:player:" + string(login.PlayerID)))
}

func (s *IntegrationSuite) TestNewRejectsBadConfig() {
	_, err := New(s.ctx, Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(s.ctx, Config{StorageType: config.StorageRedis})
	s.Error(err)

	_, err = New(s.ctx, Config{JudgeProvider: "oracle"})
	s.Error(err)

	_, err = New(s.ctx, Config{JudgeProvider: "gemini"})
	s.Error(err, "gemini judge without a model")
}

func (s *IntegrationSuite) TestFromConfig() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	cfg.Dictionary.Path = ""
	cfg.Game.HandSize = 9

	app, err := FromConfig(s.ctx, cfg, testutil.NopLogger())
	s.Require().NoError(err)
	defer app.Close()

	login, err := app.AuthService.CreateGuestPlayer(s.ctx, "")
	s.Require().NoError(err)
	session, err := app.SessionController.Start(s.ctx, login.PlayerID)
	s.Require().NoError(err)
	s.Len(session.Tiles, 9)
}
