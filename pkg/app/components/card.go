package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gallery/pkg/app/styles"
	"github.com/kerbaras/gallery/pkg/gallery"
)

// CardItem is a gallery card plus the terminal art of its image, once loaded.
type CardItem struct {
	Card gallery.Card
	Art  string
}

// RenderCard draws one card. The placeholder stands in for the image until
// the card's image has completed loading.
func RenderCard(item CardItem, placeholder string, width int) string {
	style := styles.LoadingCardStyle
	art := placeholder
	if item.Card.Image != nil && item.Card.Image.Ready() && item.Art != "" {
		style = styles.CardStyle
		art = item.Art
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		art,
		styles.NameStyle.Render(truncate(item.Card.Name, width-4)),
		styles.StatusStyle(item.Card.Status).Render(item.Card.StatusLine()),
		styles.TextStyle.Render(item.Card.GenderLine()),
	)

	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(body)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
