package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/gallery/pkg/app/styles"
)

// LoadTracker counts settled image loads for the status line.
type LoadTracker struct {
	total  int
	loaded int
	failed int
	width  int
}

func NewLoadTracker(width int) *LoadTracker {
	return &LoadTracker{width: width}
}

// Reset starts tracking a new batch of total images.
func (p *LoadTracker) Reset(total int) {
	p.total = total
	p.loaded = 0
	p.failed = 0
}

func (p *LoadTracker) SetWidth(width int) {
	p.width = width
}

func (p *LoadTracker) Loaded() {
	p.loaded++
}

func (p *LoadTracker) Failed() {
	p.failed++
}

// Pending reports how many loads have not settled yet.
func (p *LoadTracker) Pending() int {
	pending := p.total - p.loaded - p.failed
	if pending < 0 {
		return 0
	}
	return pending
}

func (p *LoadTracker) Done() bool {
	return p.Pending() == 0
}

func (p *LoadTracker) View() string {
	if p.total == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderProgressBar(p.loaded+p.failed, p.total, p.width))
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d images", p.loaded, p.total)))
	if p.failed > 0 {
		b.WriteString(" ")
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("(%d failed)", p.failed)))
	}
	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}
