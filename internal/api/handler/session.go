package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordcoach/internal/api/middleware"
	"github.com/mcoot/wordcoach/internal/api/request"
	"github.com/mcoot/wordcoach/internal/api/response"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/web/sse"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	controller *session.Controller
	hubManager *sse.HubManager
	renderer   *sse.Renderer
	logger     *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller, hubManager *sse.HubManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		hubManager: hubManager,
		renderer:   sse.NewRenderer(),
		logger:     logger,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Start handles POST /api/v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	s, err := h.controller.Start(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	sessions, err := h.controller.ListForPlayer(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionListFromModel(sessions))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	s, err := h.controller.Get(r.Context(), sessionID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Edit handles PUT /api/v1/sessions/{id}/draft
func (h *SessionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.DraftRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.controller.Edit(r.Context(), sessionID(r), player.ID, req.Word, req.Sentence)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Submit handles POST /api/v1/sessions/{id}/submit. A body with a word or
// sentence is applied as an edit first; missing fields keep the current draft.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := sessionID(r)

	var req request.SubmitRequest
	if err := decode(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	if req.HasDraft() {
		current, err := h.controller.Get(r.Context(), id, player.ID)
		if err != nil {
			WriteError(w, err)
			return
		}
		word, sentence := current.Word, current.Sentence
		if req.Word != nil {
			word = *req.Word
		}
		if req.Sentence != nil {
			sentence = *req.Sentence
		}
		if _, err := h.controller.Edit(r.Context(), id, player.ID, word, sentence); err != nil {
			WriteError(w, err)
			return
		}
	}

	s, err := h.controller.Submit(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// NewGame handles POST /api/v1/sessions/{id}/new-game
func (h *SessionHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	s, err := h.controller.NewGame(r.Context(), sessionID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}. Open event streams for the
// session are closed.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := sessionID(r)

	if err := h.controller.Delete(r.Context(), id, player.ID); err != nil {
		WriteError(w, err)
		return
	}
	h.hubManager.RemoveHub(id)

	response.NoContent(w)
}

// Events handles GET /api/v1/sessions/{id}/events, streaming a snapshot
// followed by every transition
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	s, err := h.controller.Get(r.Context(), sessionID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	initial, err := h.renderer.Message(model.Event{
		Type:      model.EventSessionUpdated,
		Timestamp: s.UpdatedAt,
		SessionID: s.ID,
		Session:   s,
	})
	if err != nil {
		h.logger.Error("failed to render session snapshot",
			slog.String("session_id", string(s.ID)),
			slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(s.ID)
	sse.ServeSSE(w, r, hub, player.ID, initial)
}
