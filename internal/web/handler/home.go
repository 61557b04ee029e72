package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/web/middleware"
	"github.com/mcoot/wordcoach/internal/web/templates/layout"
	"github.com/mcoot/wordcoach/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	controller *session.Controller
	logger     *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(controller *session.Controller, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{controller: controller, logger: logger}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	var sessions []*model.Session
	if player != nil {
		var err error
		sessions, err = h.controller.ListForPlayer(r.Context(), player.ID)
		if err != nil {
			h.logger.Warn("failed to list sessions",
				slog.String("player_id", string(player.ID)),
				slog.String("error", err.Error()))
		}
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:  "Home",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Next:     r.URL.Query().Get("next"),
		Sessions: sessions,
	}

	render(w, r, http.StatusOK, pages.Home(data))
}
