package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordcoach/internal/api/apierr"
	"github.com/mcoot/wordcoach/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Panics become a JSON INTERNAL_ERROR response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
