package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/model"
)

// DraftForm renders the word and sentence inputs. The submit button is
// disabled while a validation is in flight.
func DraftForm(session *model.Session) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		validating := session.Phase == model.PhaseValidating
		base := "/play/" + string(session.ID)

		var b strings.Builder
		b.WriteString(`<form method="post" class="draft-form" action="`)
		b.WriteString(templ.EscapeString(base + "/submit"))
		b.WriteString(`">`)

		b.WriteString(`<label for="word">Word</label>`)
		b.WriteString(`<input type="text" id="word" name="word" autocomplete="off" value="`)
		b.WriteString(templ.EscapeString(session.Word))
		b.WriteString(`"`)
		if validating {
			b.WriteString(` readonly`)
		}
		b.WriteString(`>`)

		b.WriteString(`<label for="sentence">Sentence</label>`)
		b.WriteString(`<textarea id="sentence" name="sentence" rows="3"`)
		if validating {
			b.WriteString(` readonly`)
		}
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(session.Sentence))
		b.WriteString(`</textarea>`)

		b.WriteString(`<button type="submit" class="submit-button"`)
		if validating {
			b.WriteString(` disabled>Checking...`)
		} else {
			b.WriteString(`>Submit`)
		}
		b.WriteString(`</button></form>`)

		b.WriteString(`<form method="post" class="new-game-form" action="`)
		b.WriteString(templ.EscapeString(base + "/new-game"))
		b.WriteString(`"><button type="submit" class="new-game-button">New tiles</button></form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ResultCard renders a judge verdict. A nil result renders nothing.
func ResultCard(result *model.ValidationResult) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if result == nil {
			return nil
		}

		var b strings.Builder
		b.WriteString(`<section class="result `)
		if result.Passed() {
			b.WriteString(`result-pass">`)
		} else {
			b.WriteString(`result-fail">`)
		}

		b.WriteString(`<ul class="checks">`)
		check(&b, "valid-word", "Valid word", result.IsValidWord)
		check(&b, "from-tiles", "Made from your tiles", result.CanBeMadeFromTiles)
		check(&b, "grammar", "Grammatically correct", result.IsGrammaticallyCorrect)
		b.WriteString(`</ul>`)

		b.WriteString(`<p class="feedback">`)
		b.WriteString(templ.EscapeString(result.Feedback))
		b.WriteString(`</p><p class="score">Score: <strong>`)
		b.WriteString(strconv.Itoa(result.Score))
		b.WriteString(`</strong></p></section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func check(b *strings.Builder, name, label string, ok bool) {
	b.WriteString(`<li class="check check-`)
	b.WriteString(name)
	if ok {
		b.WriteString(` check-ok">&#10003; `)
	} else {
		b.WriteString(` check-failed">&#10007; `)
	}
	b.WriteString(label)
	b.WriteString(`</li>`)
}
