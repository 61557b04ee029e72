// Package layout holds the page shell shared by every web page.
package layout

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/model"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is the data every page needs
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

// Base wraps body in the document shell with navigation and flash
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>`)
		if data.Title != "" {
			b.WriteString(templ.EscapeString(data.Title))
			b.WriteString(` - `)
		}
		b.WriteString(`Word Coach</title><link rel="stylesheet" href="/static/style.css"></head><body>`)

		b.WriteString(`<nav class="nav"><a href="/" class="brand">Word Coach</a>`)
		if data.Player != nil {
			b.WriteString(`<span class="player-name">`)
			b.WriteString(templ.EscapeString(data.Player.DisplayName))
			b.WriteString(`</span><form method="post" action="/auth/logout" class="logout-form">`)
			b.WriteString(`<button type="submit">Log out</button></form>`)
		}
		b.WriteString(`</nav>`)

		if data.Flash != nil {
			b.WriteString(`<div class="flash flash-`)
			b.WriteString(templ.EscapeString(data.Flash.Type))
			b.WriteString(`" role="alert">`)
			b.WriteString(templ.EscapeString(data.Flash.Message))
			b.WriteString(`</div>`)
		}

		b.WriteString(`<main>`)
		if body != nil {
			if err := body.Render(ctx, &b); err != nil {
				return err
			}
		}
		b.WriteString(`</main></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
