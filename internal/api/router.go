package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordcoach/internal/api/handler"
	"github.com/mcoot/wordcoach/internal/api/middleware"
	sharedmw "github.com/mcoot/wordcoach/internal/middleware"
	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/services/coach"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
	CoachService      *coach.Service // optional
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, hubManager, cfg.Logger)
	coachHandler := handler.NewCoachHandler(cfg.CoachService)

	authMiddleware := middleware.Auth(cfg.AuthService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sharedmw.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	api.HandleFunc("/board", handler.Board).Methods(http.MethodGet)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("", sessionHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/draft", sessionHandler.Edit).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/submit", sessionHandler.Submit).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/new-game", sessionHandler.NewGame).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	coachRoutes := api.PathPrefix("/coach").Subrouter()
	coachRoutes.Use(authMiddleware)
	coachRoutes.HandleFunc("/articulate", coachHandler.Articulate).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/balderdash", coachHandler.Balderdash).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/role-play", coachHandler.RolePlay).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/grammar", coachHandler.Grammar).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/summary", coachHandler.Summary).Methods(http.MethodPost)

	return r
}
