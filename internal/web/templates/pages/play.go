package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/web/templates/components"
	"github.com/mcoot/wordcoach/internal/web/templates/layout"
)

// PlayData is the data for the play page
type PlayData struct {
	layout.PageData
	Session    *model.Session
	Board      model.Board
	TileValues []int
}

// reloadScript refreshes the page whenever another tab changes the session
const reloadScript = `<script>
(function () {
  var play = document.getElementById("play");
  var source = new EventSource(play.dataset.events);
  ["session_updated", "session_resolved", "session_failed", "session_reset"].forEach(function (name) {
    source.addEventListener(name, function () { source.close(); window.location.reload(); });
  });
})();
</script>`

// Play renders a session: board, tiles, draft form and last result
func Play(data PlayData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := data.Session

		var b strings.Builder
		b.WriteString(`<div id="play" data-session-id="`)
		b.WriteString(templ.EscapeString(string(s.ID)))
		b.WriteString(`" data-phase="`)
		b.WriteString(templ.EscapeString(string(s.Phase)))
		b.WriteString(`" data-events="`)
		b.WriteString(templ.EscapeString("/play/" + string(s.ID) + "/events"))
		b.WriteString(`">`)

		for _, c := range []templ.Component{
			components.Board(data.Board),
			components.Tiles(s.Tiles, data.TileValues),
			components.DraftForm(s),
			components.ResultCard(s.LastResult),
		} {
			if err := c.Render(ctx, &b); err != nil {
				return err
			}
		}

		b.WriteString(`</div>`)
		b.WriteString(reloadScript)

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout.Base(data.PageData, body)
}
