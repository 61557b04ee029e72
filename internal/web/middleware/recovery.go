package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/middleware"
	"github.com/mcoot/wordcoach/internal/web/templates/layout"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

var errorBody = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<h1>Something went wrong</h1><p>Please try again later.</p><p><a href="/">Return to home</a></p>`)
	return err
})

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = layout.Base(layout.PageData{Title: "Error"}, errorBody).Render(r.Context(), w)
}
