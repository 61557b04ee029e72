// Package pages holds the full web pages.
package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Next     string
	Sessions []*model.Session
}

// Home renders the sign-in forms, or the start button and session list
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Word Coach</h1>`)
		b.WriteString(`<p class="intro">Make a word from your tiles and use it in a sentence.</p>`)

		if data.Player == nil {
			b.WriteString(`<form method="post" action="/auth/guest" class="guest-form">`)
			b.WriteString(`<label for="display_name">Your name</label>`)
			b.WriteString(`<input type="text" id="display_name" name="display_name" maxlength="20" required>`)
			nextField(&b, data.Next)
			b.WriteString(`<button type="submit">Play as guest</button></form>`)

			b.WriteString(`<form method="post" action="/auth/login" class="login-form">`)
			b.WriteString(`<label for="username">Username</label>`)
			b.WriteString(`<input type="text" id="username" name="username" required>`)
			b.WriteString(`<label for="password">Password</label>`)
			b.WriteString(`<input type="password" id="password" name="password" required>`)
			nextField(&b, data.Next)
			b.WriteString(`<button type="submit">Log in</button></form>`)
		} else {
			b.WriteString(`<form method="post" action="/play" class="start-form">`)
			b.WriteString(`<button type="submit">Start a new game</button></form>`)

			if len(data.Sessions) > 0 {
				b.WriteString(`<h2>Your games</h2><ul class="sessions">`)
				for _, s := range data.Sessions {
					b.WriteString(`<li class="session"><a href="`)
					b.WriteString(templ.EscapeString("/play/" + string(s.ID)))
					b.WriteString(`">`)
					b.WriteString(templ.EscapeString(s.Tiles.String()))
					b.WriteString(`</a> <span class="phase">`)
					b.WriteString(templ.EscapeString(string(s.Phase)))
					b.WriteString(`</span></li>`)
				}
				b.WriteString(`</ul>`)
			}
		}

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout.Base(data.PageData, body)
}

func nextField(b *strings.Builder, next string) {
	if next == "" {
		return
	}
	b.WriteString(`<input type="hidden" name="next" value="`)
	b.WriteString(templ.EscapeString(next))
	b.WriteString(`">`)
}
