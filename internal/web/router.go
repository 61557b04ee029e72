package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	sharedmw "github.com/mcoot/wordcoach/internal/middleware"
	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/services/scoring"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/web/handler"
	"github.com/mcoot/wordcoach/internal/web/middleware"
	"github.com/mcoot/wordcoach/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
	ScoringService    *scoring.Service
	HubManager        *sse.HubManager
	StaticDir         string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(sharedmw.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}
	scoringService := cfg.ScoringService
	if scoringService == nil {
		scoringService = scoring.New()
	}

	homeHandler := handler.NewHomeHandler(cfg.SessionController, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playHandler := handler.NewPlayHandler(cfg.SessionController, scoringService, hubManager, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing player info in nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/guest", authHandler.CreateGuest).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	play := r.PathPrefix("/play").Subrouter()
	play.Use(flashMiddleware)
	play.Use(authMiddleware)
	play.HandleFunc("", playHandler.Start).Methods(http.MethodPost)
	play.HandleFunc("/{id}", playHandler.View).Methods(http.MethodGet)
	play.HandleFunc("/{id}/submit", playHandler.Submit).Methods(http.MethodPost)
	play.HandleFunc("/{id}/new-game", playHandler.NewGame).Methods(http.MethodPost)
	play.HandleFunc("/{id}/events", playHandler.Events).Methods(http.MethodGet)

	return r
}
