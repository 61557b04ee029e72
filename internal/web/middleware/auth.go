package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/auth"
)

type contextKey string

const (
	playerContextKey contextKey = "player"
	tokenContextKey  contextKey = "token"
)

// GetPlayer retrieves the authenticated player from the request context
// Returns nil if no player is authenticated
func GetPlayer(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// GetToken returns the login token of the authenticated player
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// Auth returns middleware that requires authentication
// Redirects to home page if not authenticated
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login := loginFromCookie(r, authService)
			if login == nil {
				// Store original URL to redirect back after auth
				http.Redirect(w, r, "/?next="+r.URL.Path, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(withLogin(r.Context(), login)))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't require it
// Sets player in context if authenticated, nil otherwise
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if login := loginFromCookie(r, authService); login != nil {
				ctx = withLogin(ctx, login)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withLogin(ctx context.Context, login *auth.Login) context.Context {
	player := login.Player
	ctx = context.WithValue(ctx, playerContextKey, &player)
	return context.WithValue(ctx, tokenContextKey, login.Token)
}

func loginFromCookie(r *http.Request, authService *auth.Service) *auth.Login {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		return nil
	}

	login, err := authService.Validate(cookie.Value)
	if err != nil {
		return nil
	}

	return login
}
