package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/wordcoach/internal/dependencies/clock"
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired login")
	ErrUsernameExists     = errors.New("username already exists")
	ErrMissingFields      = errors.New("a username and a password of at least 6 characters are required")
)

// CookieName is the browser cookie carrying a login token
const CookieName = "login"

const (
	tokenAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	defaultGuestName  = "Guest"
	minPasswordLength = 6
)

// Login is an authenticated player's bearer token. Logins live in memory
// only; restarting the server signs everyone out.
type Login struct {
	Token     string
	PlayerID  model.PlayerID
	Player    model.Player
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles players and their logins
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu     sync.RWMutex
	logins map[string]*Login

	loginDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	LoginDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		LoginDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger, cfg Config) *Service {
	if cfg.LoginDuration == 0 {
		cfg.LoginDuration = DefaultConfig().LoginDuration
	}
	return &Service{
		storage:       storage,
		clock:         clock,
		random:        random,
		logger:        logger,
		logins:        make(map[string]*Login),
		loginDuration: cfg.LoginDuration,
	}
}

// CreateGuestPlayer creates an anonymous player and logs them in
func (s *Service) CreateGuestPlayer(ctx context.Context, displayName string) (*Login, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = defaultGuestName
	}

	player := &model.Player{
		ID:          s.newPlayerID(),
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("guest created", slog.String("player_id", string(player.ID)))
	return s.createLogin(player), nil
}

// RegisterPlayer creates a registered player account and logs them in
func (s *Service) RegisterPlayer(ctx context.Context, username, password, displayName string) (*Login, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < minPasswordLength {
		return nil, ErrMissingFields
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = username
	}

	_, err := s.storage.GetRegisteredPlayerByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:          s.newPlayerID(),
		DisplayName: strings.TrimSpace(displayName),
		CreatedAt:   now,
	}
	registered := &model.RegisteredPlayer{
		PlayerID:     player.ID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	if err := s.storage.SaveRegisteredPlayer(ctx, registered); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("username", username),
	)
	return s.createLogin(player), nil
}

// Login checks a registered player's password and logs them in
func (s *Service) Login(ctx context.Context, username, password string) (*Login, error) {
	rp, err := s.storage.GetRegisteredPlayerByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rp.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	player, err := s.storage.GetPlayer(ctx, rp.PlayerID)
	if err != nil {
		return nil, err
	}

	return s.createLogin(player), nil
}

// Validate returns the login for a token if it exists and hasn't expired
func (s *Service) Validate(token string) (*Login, error) {
	s.mu.RLock()
	login, ok := s.logins[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidToken
	}

	if s.clock.Now().After(login.ExpiresAt) {
		s.Logout(token)
		return nil, ErrInvalidToken
	}

	return login, nil
}

// Logout forgets a token
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.logins, token)
	s.mu.Unlock()
}

// GetPlayer returns the player for a token
func (s *Service) GetPlayer(token string) (*model.Player, error) {
	login, err := s.Validate(token)
	if err != nil {
		return nil, err
	}
	return &login.Player, nil
}

// PruneExpired removes expired logins and returns how many were removed
func (s *Service) PruneExpired() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, login := range s.logins {
		if now.After(login.ExpiresAt) {
			delete(s.logins, token)
			removed++
		}
	}
	return removed
}

// RunPruner calls PruneExpired every interval until ctx is done
func (s *Service) RunPruner(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.PruneExpired(); n > 0 {
				s.logger.Debug("pruned expired logins", slog.Int("count", n))
			}
		}
	}
}

func (s *Service) createLogin(player *model.Player) *Login {
	now := s.clock.Now()
	login := &Login{
		Token:     "tok_" + s.random.String(32, tokenAlphabet),
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: now,
		ExpiresAt: now.Add(s.loginDuration),
	}

	s.mu.Lock()
	s.logins[login.Token] = login
	s.mu.Unlock()

	return login
}

func (s *Service) newPlayerID() model.PlayerID {
	return model.PlayerID("p_" + s.random.String(16, tokenAlphabet))
}
