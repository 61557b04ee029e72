// Package session runs the play cycle for one player's game: draw tiles, type
// a word and sentence, submit it to a judge, read the verdict, start over.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/wordcoach/internal/dependencies/clock"
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/judge"
	"github.com/mcoot/wordcoach/internal/services/tiles"
	"github.com/mcoot/wordcoach/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// lockStripes is the number of mutexes session ids are hashed onto
const lockStripes = 64

// Publisher receives an event after every session transition
type Publisher interface {
	Publish(event model.Event)
}

// Config tunes the controller
type Config struct {
	HandSize     int
	JudgeTimeout time.Duration
}

// DefaultConfig returns the standard seven-tile game with a 30s judge timeout
func DefaultConfig() Config {
	return Config{
		HandSize:     model.DefaultHandSize,
		JudgeTimeout: 30 * time.Second,
	}
}

// inflight is the cancel hook for the judge call issued under generation gen
type inflight struct {
	gen    uint64
	cancel context.CancelFunc
}

// Controller manages the session state machine. Each transition is a
// read-modify-write under the session's lock; the lock is released while the
// judge runs so the player can still start a new game.
//
// A stored validating phase only counts while this controller holds the
// matching judge call. One left behind by a failed write or a restart reads
// as editing.
type Controller struct {
	storage   storage.Storage
	tiles     *tiles.Generator
	judge     judge.Judge
	clock     clock.Clock
	random    random.Random
	publisher Publisher
	logger    *slog.Logger
	cfg       Config

	locks [lockStripes]sync.Mutex

	mu       sync.Mutex
	inflight map[model.SessionID]inflight
}

// NewController creates a session Controller. publisher may be nil.
func NewController(
	storage storage.Storage,
	tiles *tiles.Generator,
	judge judge.Judge,
	clock clock.Clock,
	random random.Random,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if cfg.HandSize < model.MinHandSize {
		cfg.HandSize = model.DefaultHandSize
	}
	if cfg.JudgeTimeout <= 0 {
		cfg.JudgeTimeout = DefaultConfig().JudgeTimeout
	}
	return &Controller{
		storage:   storage,
		tiles:     tiles,
		judge:     judge,
		clock:     clock,
		random:    random,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		inflight:  make(map[model.SessionID]inflight),
	}
}

// Start creates a session with a fresh hand
func (c *Controller) Start(ctx context.Context, playerID model.PlayerID) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(16, idAlphabet)),
		PlayerID:  playerID,
		Tiles:     c.tiles.Generate(c.cfg.HandSize),
		Phase:     model.PhaseIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("tiles", session.Tiles.String()),
	)
	c.publish(model.EventSessionStarted, session)
	return session, nil
}

// Get returns the session if it belongs to playerID
func (c *Controller) Get(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	return c.load(ctx, id, playerID)
}

// ListForPlayer returns every session the player owns, oldest first
func (c *Controller) ListForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Session, error) {
	sessions, err := c.storage.ListSessionsForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		c.settle(session)
	}
	return sessions, nil
}

// Edit records the player's draft. The word is upper-cased. A resolved
// session keeps showing its last result until the next submit.
func (c *Controller) Edit(ctx context.Context, id model.SessionID, playerID model.PlayerID, word, sentence string) (*model.Session, error) {
	unlock := c.lock(id)
	defer unlock()

	session, err := c.load(ctx, id, playerID)
	if err != nil {
		return nil, err
	}
	if session.Phase == model.PhaseValidating {
		return nil, model.ErrValidationInFlight
	}

	session.Word = cases.Upper(language.English).String(strings.TrimSpace(word))
	session.Sentence = strings.TrimSpace(sentence)
	session.Phase = model.PhaseEditing
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	c.publish(model.EventSessionUpdated, session)
	return session, nil
}

// Submit sends the current draft to the judge and waits for the verdict.
//
// Only one judge call per session may be outstanding; a second submit while
// one is running fails with ErrValidationInFlight. If the game is reset while
// the judge is running the verdict is dropped and ErrStaleResult returned.
// A judge failure leaves the session editable with no result and returns
// ErrValidationUnavailable.
func (c *Controller) Submit(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	req, gen, judgeCtx, err := c.beginValidation(ctx, id, playerID)
	if err != nil {
		return nil, err
	}

	start := c.clock.Now()
	result, judgeErr := c.judge.Judge(judgeCtx, req)

	// The verdict must be recorded even if the caller has gone away
	return c.finishValidation(context.WithoutCancel(ctx), id, gen, req, result, judgeErr, start)
}

func (c *Controller) beginValidation(ctx context.Context, id model.SessionID, playerID model.PlayerID) (model.ValidationRequest, uint64, context.Context, error) {
	unlock := c.lock(id)
	defer unlock()

	session, err := c.load(ctx, id, playerID)
	if err != nil {
		return model.ValidationRequest{}, 0, nil, err
	}
	if session.Phase == model.PhaseValidating {
		return model.ValidationRequest{}, 0, nil, model.ErrValidationInFlight
	}
	req := session.Request()
	if err := req.Validate(); err != nil {
		return model.ValidationRequest{}, 0, nil, err
	}
	if !session.CanSubmit() {
		return model.ValidationRequest{}, 0, nil, model.ErrInvalidRequest
	}

	session.Phase = model.PhaseValidating
	session.LastResult = nil
	session.Generation++
	session.UpdatedAt = c.clock.Now()

	// Registered before the write so a concurrent Get never settles it
	judgeCtx, cancel := context.WithTimeout(ctx, c.cfg.JudgeTimeout)
	c.mu.Lock()
	c.inflight[id] = inflight{gen: session.Generation, cancel: cancel}
	c.mu.Unlock()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.clearInflight(id, session.Generation)
		return model.ValidationRequest{}, 0, nil, err
	}

	c.logger.Info("validation started",
		slog.String("session_id", string(id)),
		slog.String("word", req.Word),
		slog.Uint64("generation", session.Generation),
	)
	c.publish(model.EventSessionUpdated, session)
	return req, session.Generation, judgeCtx, nil
}

func (c *Controller) finishValidation(
	ctx context.Context,
	id model.SessionID,
	gen uint64,
	req model.ValidationRequest,
	result *model.ValidationResult,
	judgeErr error,
	start time.Time,
) (*model.Session, error) {
	unlock := c.lock(id)
	defer unlock()

	c.clearInflight(id, gen)

	session, err := c.storage.GetSession(ctx, id)
	if errors.Is(err, model.ErrSessionNotFound) {
		c.logger.Info("dropping validation result for deleted session",
			slog.String("session_id", string(id)),
		)
		return nil, model.ErrStaleResult
	}
	if err != nil {
		return nil, err
	}
	if session.Generation != gen || session.Phase != model.PhaseValidating {
		c.logger.Info("dropping stale validation result",
			slog.String("session_id", string(id)),
			slog.Uint64("issued_generation", gen),
			slog.Uint64("current_generation", session.Generation),
		)
		return nil, model.ErrStaleResult
	}

	session.UpdatedAt = c.clock.Now()
	if judgeErr != nil || result == nil {
		if judgeErr == nil {
			judgeErr = fmt.Errorf("judge returned no result")
		}
		session.Phase = model.PhaseEditing
		session.LastResult = nil
		if err := c.storage.SaveSession(ctx, session); err != nil {
			c.logger.Error("failed to save session",
				slog.String("session_id", string(id)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		c.logger.Warn("validation failed",
			slog.String("session_id", string(id)),
			slog.String("word", req.Word),
			slog.String("error", judgeErr.Error()),
		)
		c.publish(model.EventSessionFailed, session)
		return nil, fmt.Errorf("%w: %w", model.ErrValidationUnavailable, judgeErr)
	}

	session.Phase = model.PhaseResolved
	session.LastResult = result
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save verdict",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		c.revertToEditing(ctx, session)
		return nil, err
	}

	c.logger.Info("validation resolved",
		slog.String("session_id", string(id)),
		slog.String("word", req.Word),
		slog.Bool("passed", result.Passed()),
		slog.Int("score", result.Score),
		slog.Duration("duration", c.clock.Now().Sub(start)),
	)
	c.publish(model.EventSessionResolved, session)
	return session, nil
}

// NewGame deals a fresh hand and clears the draft and result. Works from any
// phase; a judge call still running is cancelled and its verdict dropped.
func (c *Controller) NewGame(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	unlock := c.lock(id)
	defer unlock()

	session, err := c.load(ctx, id, playerID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if f, ok := c.inflight[id]; ok {
		f.cancel()
		delete(c.inflight, id)
	}
	c.mu.Unlock()

	session.Tiles = c.tiles.Generate(c.cfg.HandSize)
	session.Word = ""
	session.Sentence = ""
	session.LastResult = nil
	session.Phase = model.PhaseIdle
	session.Generation++
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("new game",
		slog.String("session_id", string(id)),
		slog.String("tiles", session.Tiles.String()),
		slog.Uint64("generation", session.Generation),
	)
	c.publish(model.EventSessionReset, session)
	return session, nil
}

// Delete removes the session. A judge call still running is cancelled and
// its verdict dropped.
func (c *Controller) Delete(ctx context.Context, id model.SessionID, playerID model.PlayerID) error {
	unlock := c.lock(id)
	defer unlock()

	if _, err := c.load(ctx, id, playerID); err != nil {
		return err
	}

	c.mu.Lock()
	if f, ok := c.inflight[id]; ok {
		f.cancel()
		delete(c.inflight, id)
	}
	c.mu.Unlock()

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session deleted",
		slog.String("session_id", string(id)),
		slog.String("player_id", string(playerID)),
	)
	return nil
}

// load fetches a session and checks ownership
func (c *Controller) load(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.PlayerID != playerID {
		return nil, model.ErrNotSessionOwner
	}
	c.settle(session)
	return session, nil
}

// settle turns a validating phase no judge call here owns back into editing
func (c *Controller) settle(session *model.Session) {
	if session.Phase != model.PhaseValidating || c.running(session.ID, session.Generation) {
		return
	}
	session.Phase = model.PhaseEditing
	session.LastResult = nil
}

// running reports whether a judge call issued under gen is outstanding
func (c *Controller) running(id model.SessionID, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.inflight[id]
	return ok && f.gen == gen
}

// revertToEditing is a best-effort write after a verdict could not be saved
func (c *Controller) revertToEditing(ctx context.Context, session *model.Session) {
	session.Phase = model.PhaseEditing
	session.LastResult = nil
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Warn("session left validating",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
	}
}

// lock acquires the session's lock stripe and returns its release
func (c *Controller) lock(id model.SessionID) func() {
	l := c.stripe(id)
	l.Lock()
	return l.Unlock
}

func (c *Controller) stripe(id model.SessionID) *sync.Mutex {
	return &c.locks[xxhash.Sum64String(string(id))%lockStripes]
}

// clearInflight drops and releases the cancel hook if it still belongs to gen
func (c *Controller) clearInflight(id model.SessionID, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.inflight[id]; ok && f.gen == gen {
		f.cancel()
		delete(c.inflight, id)
	}
}

func (c *Controller) publish(eventType model.EventType, session *model.Session) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		SessionID: session.ID,
		Session:   session.Clone(),
	})
}
