package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordcoach/internal/config"
	"github.com/mcoot/wordcoach/internal/dependencies/clock"
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/llm"
	"github.com/mcoot/wordcoach/internal/prompts"
	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/services/coach"
	"github.com/mcoot/wordcoach/internal/services/dictionary"
	"github.com/mcoot/wordcoach/internal/services/judge"
	"github.com/mcoot/wordcoach/internal/services/scoring"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/services/tiles"
	"github.com/mcoot/wordcoach/internal/storage"
	"github.com/mcoot/wordcoach/internal/storage/memory"
	redisstorage "github.com/mcoot/wordcoach/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordcoach/internal/storage/sqlite"
	"github.com/mcoot/wordcoach/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	LLM    llm.Client // nil when no model is configured

	// Services
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	TileGenerator     *tiles.Generator
	Judge             judge.Judge
	SessionController *session.Controller
	CoachService      *coach.Service // nil when no model is configured
	AuthService       *auth.Service
	HubManager        *sse.HubManager
	Broadcaster       *sse.Broadcaster

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger. If nil, a no-op logger is used.
	Logger *slog.Logger

	// StorageType selects the backend: memory (default), redis or sqlite
	StorageType string
	// RedisConfig is required when StorageType is redis
	RedisConfig *redisstorage.Config
	// SQLitePath is required when StorageType is sqlite
	SQLitePath string

	// DictionaryPath seeds the word list when storage has none. Optional.
	DictionaryPath string

	// JudgeProvider is dictionary (default) or gemini
	JudgeProvider string
	// Gemini enables the LLM client. Required for the gemini judge; also
	// turns on the coaching games.
	Gemini *llm.GeminiConfig

	// Seed makes tile draws reproducible. Zero uses crypto randomness.
	Seed uint64

	AuthConfig    auth.Config
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var client llm.Client
	if cfg.Gemini != nil {
		gemini, err := llm.NewGemini(ctx, *cfg.Gemini, logger)
		if err != nil {
			closeStorage(store)
			return nil, err
		}
		client = gemini
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app, err := newWithDependencies(dependencies{
		storage:       store,
		clock:         clock.New(),
		random:        rnd,
		llm:           client,
		judgeProvider: cfg.JudgeProvider,
		authConfig:    cfg.AuthConfig,
		sessionConfig: cfg.SessionConfig,
		logger:        logger,
	})
	if err != nil {
		closeStorage(store)
		return nil, err
	}

	if err := app.DictionaryService.Load(ctx, cfg.DictionaryPath); err != nil {
		// The gemini judge does not need a word list
		logger.Warn("could not load dictionary", slog.String("error", err.Error()))
	}

	return app, nil
}

// FromConfig maps server configuration onto the factory
func FromConfig(ctx context.Context, c *config.Config, logger *slog.Logger) (*App, error) {
	cfg := Config{
		Logger:         logger,
		StorageType:    c.Storage.Type,
		SQLitePath:     c.Storage.SQLitePath,
		DictionaryPath: c.Dictionary.Path,
		JudgeProvider:  c.Judge.Provider,
		Seed:           c.Game.Seed,
		AuthConfig:     auth.Config{LoginDuration: c.Auth.SessionDuration},
		SessionConfig: session.Config{
			HandSize:     c.Game.HandSize,
			JudgeTimeout: c.Judge.Timeout,
		},
	}
	if c.Storage.Type == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.Storage.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	if c.Gemini.Enabled() {
		cfg.Gemini = &llm.GeminiConfig{
			APIKey:   c.Gemini.APIKey,
			Model:    c.Gemini.Model,
			Backend:  c.Gemini.Backend,
			Project:  c.Gemini.Project,
			Location: c.Gemini.Location,
		}
	}
	return New(ctx, cfg)
}

// Close shuts down event streams and releases the storage connection
func (a *App) Close() error {
	a.HubManager.Shutdown()
	if closer, ok := a.Storage.(storage.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newStorage(ctx context.Context, cfg Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", config.StorageMemory:
		return memory.New(), nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(ctx, *cfg.RedisConfig, logger)
	case config.StorageSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlitestorage.New(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be memory, redis or sqlite", cfg.StorageType)
	}
}

func closeStorage(store storage.Storage) {
	if closer, ok := store.(storage.Closer); ok {
		_ = closer.Close()
	}
}

// dependencies are the swappable inputs to the wiring
type dependencies struct {
	storage       storage.Storage
	clock         clock.Clock
	random        random.Random
	llm           llm.Client
	judge         judge.Judge // overrides judgeProvider when set
	judgeProvider string
	authConfig    auth.Config
	sessionConfig session.Config
	logger        *slog.Logger
}

// newWithDependencies wires every service from the given dependencies
func newWithDependencies(deps dependencies) (*App, error) {
	logger := deps.logger

	dictService := dictionary.New(deps.storage, logger)
	scoringService := scoring.New()
	generator := tiles.New(deps.random)

	var flows *prompts.Flows
	if deps.llm != nil {
		var err error
		flows, err = prompts.New(deps.llm)
		if err != nil {
			return nil, fmt.Errorf("building prompt flows: %w", err)
		}
	}

	j := deps.judge
	if j == nil {
		switch deps.judgeProvider {
		case "", judge.ProviderDictionary:
			j = judge.NewDictionary(dictService, scoringService)
		case judge.ProviderGemini:
			if flows == nil {
				return nil, errors.New("gemini judge needs a configured model")
			}
			j = judge.NewLLM(flows, scoringService, logger)
		default:
			return nil, fmt.Errorf("invalid JudgeProvider %q: must be dictionary or gemini", deps.judgeProvider)
		}
	}

	var coachService *coach.Service
	if flows != nil {
		coachService = coach.New(flows, deps.random, logger)
	}

	sessionCfg := deps.sessionConfig
	if sessionCfg.HandSize == 0 && sessionCfg.JudgeTimeout == 0 {
		sessionCfg = session.DefaultConfig()
	}
	authCfg := deps.authConfig
	if authCfg.LoginDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	sessionController := session.NewController(
		deps.storage,
		generator,
		j,
		deps.clock,
		deps.random,
		broadcaster,
		logger,
		sessionCfg,
	)

	return &App{
		Storage:           deps.storage,
		Clock:             deps.clock,
		Random:            deps.random,
		LLM:               deps.llm,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		TileGenerator:     generator,
		Judge:             j,
		SessionController: sessionController,
		CoachService:      coachService,
		AuthService:       auth.New(deps.storage, deps.clock, deps.random, logger, authCfg),
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
		Logger:            logger,
	}, nil
}
