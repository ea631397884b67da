package integrations

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 128, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNewThumbnailClampsSize(t *testing.T) {
	thumb := NewThumbnail(0, -3)

	if thumb.width != 1 || thumb.height != 1 {
		t.Errorf("Expected 1x1, got %dx%d", thumb.width, thumb.height)
	}
}

func TestThumbnailRender(t *testing.T) {
	thumb := NewThumbnail(12, 6)

	art, err := thumb.Render(createTestPNG(t, 300, 300))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(art, "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(lines))
	}

	if got := strings.Count(art, halfBlock); got != 12*6 {
		t.Errorf("Expected %d cells, got %d", 12*6, got)
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("Line %d: expected width 12, got %d", i, w)
		}
	}
}

func TestThumbnailRenderInvalid(t *testing.T) {
	_, err := NewThumbnail(4, 2).Render([]byte("not an image"))
	if err == nil {
		t.Error("Expected error for undecodable data")
	}
}

func TestCoverRect(t *testing.T) {
	tests := []struct {
		name string
		src  image.Rectangle
		w, h int
		want image.Rectangle
	}{
		{"same ratio", image.Rect(0, 0, 300, 300), 10, 10, image.Rect(0, 0, 300, 300)},
		{"wide source", image.Rect(0, 0, 400, 200), 10, 10, image.Rect(100, 0, 300, 200)},
		{"tall source", image.Rect(0, 0, 200, 400), 10, 10, image.Rect(0, 100, 200, 300)},
		{"empty source", image.Rect(0, 0, 0, 0), 10, 10, image.Rect(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverRect(tt.src, tt.w, tt.h); got != tt.want {
				t.Errorf("coverRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	ph := NewThumbnail(8, 3).Placeholder(lipgloss.Color("#546E7A"))

	lines := strings.Split(ph, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if strings.Count(ph, "░") != 24 {
		t.Errorf("Expected 24 placeholder cells, got %d", strings.Count(ph, "░"))
	}
}
