package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// halfBlock draws two vertically stacked pixels in one terminal cell: the
// foreground is the top pixel, the background the bottom one.
const halfBlock = "▀"

// Thumbnail renders card images as terminal art.
type Thumbnail struct {
	width  int // cells
	height int // cells; each cell holds two pixel rows
}

// NewThumbnail returns a renderer producing width x height cells.
func NewThumbnail(width, height int) *Thumbnail {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Thumbnail{width: width, height: height}
}

// Render decodes an image, scales it to cover the cell grid and returns the
// ANSI art, one line per cell row.
func (t *Thumbnail) Render(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	scaled := t.scale(img)

	var b strings.Builder
	for row := 0; row < t.height; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < t.width; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render(halfBlock))
		}
	}
	return b.String(), nil
}

// scale crops the source to the target aspect ratio (object-fit: cover) and
// resizes it with CatmullRom.
func (t *Thumbnail) scale(img image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, coverRect(img.Bounds(), t.width, t.height*2), draw.Src, nil)
	return dst
}

// coverRect returns the centered part of src with the aspect ratio w:h.
func coverRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return src
	}
	// compare sw/sh with w/h without floats
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := src.Min.X + (sw-cw)/2
		return image.Rect(x0, src.Min.Y, x0+cw, src.Max.Y)
	}
	ch := sw * h / w
	y0 := src.Min.Y + (sh-ch)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+ch)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Placeholder returns the art shown while an image is loading: a flat block
// in the muted color.
func (t *Thumbnail) Placeholder(c lipgloss.TerminalColor) string {
	line := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("░", t.width))
	lines := make([]string, t.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
