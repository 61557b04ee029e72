package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/web/middleware"
)

const maxDisplayNameLength = 20

// AuthHandler handles sign-in and sign-out actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateGuest handles guest player creation
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	if displayName == "" {
		middleware.SetFlash(w, middleware.FlashError, "Display name is required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if len([]rune(displayName)) > maxDisplayNameLength {
		displayName = string([]rune(displayName)[:maxDisplayNameLength])
	}

	login, err := h.authService.CreateGuestPlayer(r.Context(), displayName)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Failed to create guest player")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setLoginCookie(w, login)
	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome, "+login.Player.DisplayName+"!")
	redirectNext(w, r)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		middleware.SetFlash(w, middleware.FlashError, "Username and password are required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	login, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		msg := "Could not log in. Please try again."
		if errors.Is(err, auth.ErrInvalidCredentials) {
			msg = "Invalid username or password"
		}
		middleware.SetFlash(w, middleware.FlashError, msg)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setLoginCookie(w, login)
	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome back, "+login.Player.DisplayName+"!")
	redirectNext(w, r)
}

// Logout forgets the login and clears its cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.authService.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, middleware.FlashInfo, "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func setLoginCookie(w http.ResponseWriter, login *auth.Login) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    login.Token,
		Path:     "/",
		Expires:  login.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectNext follows a local next path, or goes home
func redirectNext(w http.ResponseWriter, r *http.Request) {
	next := r.FormValue("next")
	if next != "" && strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
