package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. WORDCOACH_STORAGE_TYPE
const EnvPrefix = "WORDCOACH"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Judge providers
const (
	JudgeDictionary = "dictionary"
	JudgeGemini     = "gemini"
)

// Config is the server configuration
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Storage    StorageConfig
	Dictionary DictionaryConfig
	Judge      JudgeConfig
	Gemini     GeminiConfig
	Game       GameConfig
	Auth       AuthConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns host:port for the listener
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	Type       string
	RedisURL   string `mapstructure:"redis_url"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// DictionaryConfig points at the word list used on first start
type DictionaryConfig struct {
	Path string
}

// JudgeConfig selects the word judge
type JudgeConfig struct {
	Provider string
	Timeout  time.Duration
}

// GeminiConfig configures the LLM client. Only used when a provider needs it.
type GeminiConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string
	Backend  string
	Project  string
	Location string
}

// Enabled reports whether enough is set to build a client
func (c GeminiConfig) Enabled() bool {
	return c.APIKey != "" || c.Project != ""
}

// GameConfig holds gameplay settings
type GameConfig struct {
	HandSize int    `mapstructure:"hand_size"`
	Seed     uint64 // 0 means crypto randomness
}

// AuthConfig holds login settings
type AuthConfig struct {
	SessionDuration time.Duration `mapstructure:"session_duration"`
}

var defaults = map[string]any{
	"server.host":           "",
	"server.port":           8080,
	"log.level":             "info",
	"storage.type":          StorageMemory,
	"storage.redis_url":     "redis://localhost:6379",
	"storage.sqlite_path":   "data/wordcoach.db",
	"dictionary.path":       "data/words.txt",
	"judge.provider":        JudgeDictionary,
	"judge.timeout":         30 * time.Second,
	"gemini.api_key":        "",
	"gemini.model":          "gemini-2.5-flash",
	"gemini.backend":        "gemini",
	"gemini.project":        "",
	"gemini.location":       "",
	"game.hand_size":        7,
	"game.seed":             0,
	"auth.session_duration": 24 * time.Hour,
}

// Short environment names accepted alongside the automatic ones
var aliases = map[string]string{
	"storage.redis_url":   "REDIS_URL",
	"storage.sqlite_path": "SQLITE_PATH",
}

// New returns a viper instance with defaults and environment overrides registered
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range aliases {
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), EnvPrefix+"_"+alias)
	}
	return v
}

// Load reads configuration from defaults, an optional YAML file and the environment.
// If path is empty, WORDCOACH_CONFIG is consulted; no file at all is fine.
func Load(path string) (*Config, error) {
	v := New()
	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates a populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Type {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		errs = append(errs, fmt.Errorf("storage.type must be memory, redis or sqlite, got %q", c.Storage.Type))
	}
	switch c.Judge.Provider {
	case JudgeDictionary:
	case JudgeGemini:
		if !c.Gemini.Enabled() {
			errs = append(errs, errors.New("judge.provider gemini needs gemini.api_key or gemini.project"))
		}
	default:
		errs = append(errs, fmt.Errorf("judge.provider must be dictionary or gemini, got %q", c.Judge.Provider))
	}
	if c.Judge.Timeout <= 0 {
		errs = append(errs, errors.New("judge.timeout must be positive"))
	}
	if c.Game.HandSize < 4 {
		errs = append(errs, fmt.Errorf("game.hand_size must be at least 4, got %d", c.Game.HandSize))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps log.level to a slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
