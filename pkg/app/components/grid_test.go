package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/gallery"
)

func testItems(n int) []CardItem {
	items := make([]CardItem, n)
	for i := range items {
		items[i] = CardItem{Card: gallery.NewCard(data.Character{
			ID:     i + 1,
			Name:   fmt.Sprintf("Character %d", i+1),
			Image:  fmt.Sprintf("http://x/%d.png", i+1),
			Status: "Alive",
			Gender: "Male",
		})}
	}
	return items
}

func TestNewCardGrid(t *testing.T) {
	grid := NewCardGrid()

	if grid == nil {
		t.Fatal("Expected grid to be created")
	}

	if grid.Offset != 0 {
		t.Errorf("Expected Offset 0, got %d", grid.Offset)
	}

	if len(grid.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(grid.Items))
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{60, 2},
		{99, 2},
		{100, 3},
		{159, 3},
		{160, 5},
		{300, 5},
	}

	for _, tt := range tests {
		if got := Columns(tt.width); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestSetItemsResetsScroll(t *testing.T) {
	grid := NewCardGrid()
	grid.SetItems(testItems(10))
	grid.Offset = 3

	grid.SetItems(testItems(2))

	if grid.Offset != 0 {
		t.Errorf("Expected Offset to be reset to 0, got %d", grid.Offset)
	}
}

func TestScroll(t *testing.T) {
	grid := NewCardGrid()
	grid.Width = 60
	grid.SetItems(testItems(5))

	if grid.Rows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", grid.Rows())
	}

	grid.ScrollUp()
	if grid.Offset != 0 {
		t.Errorf("Expected Offset to stay at 0, got %d", grid.Offset)
	}

	grid.ScrollDown()
	grid.ScrollDown()
	grid.ScrollDown()
	if grid.Offset != 2 {
		t.Errorf("Expected Offset to stop at last row 2, got %d", grid.Offset)
	}

	grid.ScrollUp()
	if grid.Offset != 1 {
		t.Errorf("Expected Offset 1, got %d", grid.Offset)
	}
}

func TestAt(t *testing.T) {
	grid := NewCardGrid()
	grid.SetItems(testItems(3))

	item := grid.At(1)
	if item == nil {
		t.Fatal("Expected an item at position 1")
	}
	if item.Card.Name != "Character 2" {
		t.Errorf("Expected Character 2, got %s", item.Card.Name)
	}

	item.Art = "art"
	if grid.Items[1].Art != "art" {
		t.Error("Expected At to return a pointer into the grid")
	}

	if grid.At(3) != nil || grid.At(-1) != nil {
		t.Error("Expected nil out of range")
	}
}

func TestViewEmpty(t *testing.T) {
	grid := NewCardGrid()

	if !strings.Contains(grid.View(), "No characters") {
		t.Error("Expected empty message")
	}
}

func TestViewShowsCardText(t *testing.T) {
	grid := NewCardGrid()
	grid.Width = 120
	grid.Height = 100
	grid.Placeholder = "PLACEHOLDER"
	grid.SetItems(testItems(2))

	view := grid.View()
	for _, want := range []string{"Character 1", "Character 2", "Status : Alive", "Gender : Male", "PLACEHOLDER"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestRenderCardArtOnlyWhenReady(t *testing.T) {
	item := testItems(1)[0]
	item.Art = "ART"

	view := RenderCard(item, "PLACEHOLDER", 40)
	if strings.Contains(view, "ART") || !strings.Contains(view, "PLACEHOLDER") {
		t.Error("Expected placeholder while the image is loading")
	}

	item.Card.Image.Complete()
	view = RenderCard(item, "PLACEHOLDER", 40)
	if !strings.Contains(view, "ART") || strings.Contains(view, "PLACEHOLDER") {
		t.Error("Expected art once the image is ready")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Rick Sanchez", 8); got != "Rick ..." {
		t.Errorf("Expected 'Rick ...', got %q", got)
	}
	if got := truncate("Rick", 8); got != "Rick" {
		t.Errorf("Expected 'Rick', got %q", got)
	}
}
