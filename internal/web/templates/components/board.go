// Package components holds the reusable pieces of the play page.
package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordcoach/internal/model"
)

// Board renders the premium-square layout as a table
func Board(board model.Board) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table class="board" data-size="`)
		b.WriteString(strconv.Itoa(model.BoardSize))
		b.WriteString(`"><tbody>`)
		for row := range model.BoardSize {
			b.WriteString(`<tr>`)
			for col := range model.BoardSize {
				p := board[row][col]
				b.WriteString(`<td class="square`)
				if p != model.PremiumNone {
					b.WriteString(` square-`)
					b.WriteString(string(p))
				}
				b.WriteString(`">`)
				b.WriteString(templ.EscapeString(p.Label()))
				b.WriteString(`</td>`)
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Tiles renders the hand. values holds the letter value of each tile.
func Tiles(tiles model.Tiles, values []int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="tiles">`)
		for i, r := range tiles {
			b.WriteString(`<span class="tile">`)
			b.WriteString(templ.EscapeString(string(r)))
			if i < len(values) {
				b.WriteString(`<sub class="tile-value">`)
				b.WriteString(strconv.Itoa(values[i]))
				b.WriteString(`</sub>`)
			}
			b.WriteString(`</span>`)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
