package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(8080, cfg.Server.Port)
	s.Equal(":8080", cfg.Server.Addr())
	s.Equal("info", cfg.Log.Level)
	s.Equal(StorageMemory, cfg.Storage.Type)
	s.Equal("redis://localhost:6379", cfg.Storage.RedisURL)
	s.Equal("data/wordcoach.db", cfg.Storage.SQLitePath)
	s.Equal("data/words.txt", cfg.Dictionary.Path)
	s.Equal(JudgeDictionary, cfg.Judge.Provider)
	s.Equal(30*time.Second, cfg.Judge.Timeout)
	s.Equal("gemini-2.5-flash", cfg.Gemini.Model)
	s.Equal(7, cfg.Game.HandSize)
	s.Equal(uint64(0), cfg.Game.Seed)
	s.Equal(24*time.Hour, cfg.Auth.SessionDuration)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("WORDCOACH_STORAGE_TYPE", "redis")
	s.T().Setenv("WORDCOACH_REDIS_URL", "redis://cache:6380/2")
	s.T().Setenv("WORDCOACH_JUDGE_TIMEOUT", "5s")
	s.T().Setenv("WORDCOACH_GAME_SEED", "42")
	s.T().Setenv("WORDCOACH_SERVER_PORT", "9090")

	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(StorageRedis, cfg.Storage.Type)
	s.Equal("redis://cache:6380/2", cfg.Storage.RedisURL)
	s.Equal(5*time.Second, cfg.Judge.Timeout)
	s.Equal(uint64(42), cfg.Game.Seed)
	s.Equal(9090, cfg.Server.Port)
}

func (s *ConfigTestSuite) TestFullEnvironmentNameStillWorks() {
	s.T().Setenv("WORDCOACH_STORAGE_SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal("/tmp/x.db", cfg.Storage.SQLitePath)
}

func (s *ConfigTestSuite) TestConfigFile() {
	path := filepath.Join(s.T().TempDir(), "wordcoach.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
server:
  port: 3000
storage:
  type: sqlite
  sqlite_path: /var/lib/wordcoach.db
game:
  hand_size: 9
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(3000, cfg.Server.Port)
	s.Equal(StorageSQLite, cfg.Storage.Type)
	s.Equal("/var/lib/wordcoach.db", cfg.Storage.SQLitePath)
	s.Equal(9, cfg.Game.HandSize)
	s.Equal("debug", cfg.Log.Level)
}

func (s *ConfigTestSuite) TestEnvironmentBeatsConfigFile() {
	path := filepath.Join(s.T().TempDir(), "wordcoach.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644))
	s.T().Setenv("WORDCOACH_SERVER_PORT", "4000")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(4000, cfg.Server.Port)
}

func (s *ConfigTestSuite) TestConfigFileFromEnvironment() {
	path := filepath.Join(s.T().TempDir(), "wordcoach.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("judge:\n  timeout: 12s\n"), 0o644))
	s.T().Setenv("WORDCOACH_CONFIG", path)

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(12*time.Second, cfg.Judge.Timeout)
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestInvalidStorageType() {
	s.T().Setenv("WORDCOACH_STORAGE_TYPE", "postgres")

	_, err := Load("")
	s.Require().Error(err)
	s.Contains(err.Error(), "storage.type")
}

func (s *ConfigTestSuite) TestGeminiJudgeNeedsCredentials() {
	s.T().Setenv("WORDCOACH_JUDGE_PROVIDER", "gemini")

	_, err := Load("")
	s.Require().Error(err)
	s.Contains(err.Error(), "gemini.api_key")

	s.T().Setenv("WORDCOACH_GEMINI_API_KEY", "key")
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(JudgeGemini, cfg.Judge.Provider)
	s.True(cfg.Gemini.Enabled())
}

func (s *ConfigTestSuite) TestHandSizeTooSmall() {
	s.T().Setenv("WORDCOACH_GAME_HAND_SIZE", "3")

	_, err := Load("")
	s.Require().Error(err)
	s.Contains(err.Error(), "game.hand_size")
}

func (s *ConfigTestSuite) TestParseLevel() {
	level, err := ParseLevel("warn")
	s.Require().NoError(err)
	s.Equal(slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	s.Error(err)
}
