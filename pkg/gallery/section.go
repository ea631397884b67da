package gallery

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Section renders a card as a standalone XHTML fragment for book export.
// imagePath is the image's path inside the book; empty drops the image.
// Written by hand because book readers parse sections as XML and templ
// does not self-close void elements.
func Section(card Card, imagePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if imagePath != "" {
			if err := write(w,
				`<div class="page"><img src="`, templ.EscapeString(imagePath), `"`,
				` alt="`, templ.EscapeString(card.Name), `"`,
				` style="width:100%;height:auto;object-fit:cover"/></div>`,
			); err != nil {
				return err
			}
		}
		return write(w,
			`<h2>`, templ.EscapeString(card.Name), `</h2>`,
			`<p>`, templ.EscapeString(card.StatusLine()), `</p>`,
			`<p>`, templ.EscapeString(card.GenderLine()), `</p>`,
		)
	})
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
