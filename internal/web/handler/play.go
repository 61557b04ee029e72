package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/wordcoach/internal/api/apierr"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/scoring"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/web/middleware"
	"github.com/mcoot/wordcoach/internal/web/sse"
	"github.com/mcoot/wordcoach/internal/web/templates/layout"
	"github.com/mcoot/wordcoach/internal/web/templates/pages"
)

// Notices shown after a play
const (
	MessageMissingInput = "Please provide both a word and a sentence."
	MessageInFlight     = "Your word is still being checked."
	MessageStale        = "A new game was started before your word was checked."
	MessageNotFound     = "Game not found"
)

// PlayHandler handles the play page and its form actions
type PlayHandler struct {
	controller     *session.Controller
	scoringService *scoring.Service
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewPlayHandler creates a new PlayHandler
func NewPlayHandler(controller *session.Controller, scoringService *scoring.Service, hubManager *sse.HubManager, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{
		controller:     controller,
		scoringService: scoringService,
		hubManager:     hubManager,
		logger:         logger,
	}
}

// Start deals a new session and opens it
func (h *PlayHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	s, err := h.controller.Start(r.Context(), player.ID)
	if err != nil {
		h.logger.Error("failed to start session",
			slog.String("player_id", string(player.ID)),
			slog.String("error", err.Error()))
		middleware.SetFlash(w, middleware.FlashError, "Could not start a new game. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, playPath(s.ID), http.StatusSeeOther)
}

// View renders the play page
func (h *PlayHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	s, err := h.controller.Get(r.Context(), sessionID(r), player.ID)
	if err != nil {
		h.redirectHome(w, r, err)
		return
	}

	data := pages.PlayData{
		PageData: layout.PageData{
			Title:  "Play",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Session:    s,
		Board:      model.StandardBoard(),
		TileValues: lo.Map(s.Tiles, func(t rune, _ int) int { return h.scoringService.LetterValue(t) }),
	}

	render(w, r, http.StatusOK, pages.Play(data))
}

// Submit saves the form as the draft, then has it judged. The page is shown
// again with the result, or with a notice if judging did not happen.
func (h *PlayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := sessionID(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, playPath(id), http.StatusSeeOther)
		return
	}

	_, err := h.controller.Edit(r.Context(), id, player.ID, r.FormValue("word"), r.FormValue("sentence"))
	if err == nil {
		_, err = h.controller.Submit(r.Context(), id, player.ID)
	}

	switch {
	case err == nil:
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrNotSessionOwner):
		h.redirectHome(w, r, err)
		return
	case errors.Is(err, model.ErrInvalidRequest):
		middleware.SetFlash(w, middleware.FlashError, MessageMissingInput)
	case errors.Is(err, model.ErrValidationUnavailable):
		middleware.SetFlash(w, middleware.FlashError, apierr.MessageValidationUnavailable)
	case errors.Is(err, model.ErrValidationInFlight):
		middleware.SetFlash(w, middleware.FlashInfo, MessageInFlight)
	case errors.Is(err, model.ErrStaleResult):
		middleware.SetFlash(w, middleware.FlashInfo, MessageStale)
	default:
		h.logger.Error("submit failed",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()))
		middleware.SetFlash(w, middleware.FlashError, apierr.MessageValidationUnavailable)
	}

	http.Redirect(w, r, playPath(id), http.StatusSeeOther)
}

// NewGame deals fresh tiles
func (h *PlayHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := sessionID(r)

	if _, err := h.controller.NewGame(r.Context(), id, player.ID); err != nil {
		h.redirectHome(w, r, err)
		return
	}

	http.Redirect(w, r, playPath(id), http.StatusSeeOther)
}

// Events streams session changes so other open tabs can refresh
func (h *PlayHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	s, err := h.controller.Get(r.Context(), sessionID(r), player.ID)
	if err != nil {
		status := http.StatusNotFound
		if errors.Is(err, model.ErrNotSessionOwner) {
			status = http.StatusForbidden
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	hub := h.hubManager.GetOrCreateHub(s.ID)
	sse.ServeSSE(w, r, hub, player.ID, nil)
}

func (h *PlayHandler) redirectHome(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, model.ErrSessionNotFound) && !errors.Is(err, model.ErrNotSessionOwner) {
		h.logger.Error("session action failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	middleware.SetFlash(w, middleware.FlashError, MessageNotFound)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

func playPath(id model.SessionID) string {
	return "/play/" + string(id)
}
