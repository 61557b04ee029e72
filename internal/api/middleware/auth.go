package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/wordcoach/internal/api/apierr"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/auth"
)

type contextKey string

const (
	playerContextKey contextKey = "player"
	loginContextKey  contextKey = "login"
)

// Auth requires a valid bearer token (or login cookie)
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			login, err := authService.Validate(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, loginContextKey, login)
			ctx = context.WithValue(ctx, playerContextKey, &login.Player)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the Authorization header, then the login cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// GetPlayer returns the authenticated player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// GetLogin returns the login from the request context
func GetLogin(ctx context.Context) *auth.Login {
	login, _ := ctx.Value(loginContextKey).(*auth.Login)
	return login
}

// MustGetPlayer returns the authenticated player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	player := GetPlayer(ctx)
	if player == nil {
		panic("no player in context - auth middleware not applied?")
	}
	return player
}
