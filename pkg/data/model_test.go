package data

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCharacterDecode(t *testing.T) {
	body := `{"id":1,"name":"Rick","image":"http://x/r.png","status":"Alive","gender":"Male","type":"Human","species":"Human"}`

	var character Character
	if err := json.Unmarshal([]byte(body), &character); err != nil {
		t.Fatalf("Failed to decode character: %v", err)
	}

	if character.ID != 1 {
		t.Errorf("Expected ID 1, got %d", character.ID)
	}

	if character.Name != "Rick" {
		t.Errorf("Expected Name 'Rick', got '%s'", character.Name)
	}

	if character.Type != "Human" {
		t.Errorf("Expected Type 'Human', got '%s'", character.Type)
	}
}

func TestContentMissingResults(t *testing.T) {
	var content Content
	if err := json.Unmarshal([]byte(`{"error":"nothing here"}`), &content); err != nil {
		t.Fatalf("Failed to decode content: %v", err)
	}

	if len(content.Results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(content.Results))
	}
}

func TestSnapshotContent(t *testing.T) {
	snapshot := Snapshot{
		ID:      "snap-1",
		TakenAt: time.Now(),
		Characters: []Character{
			{ID: 2, Name: "Morty"},
			{ID: 1, Name: "Rick"},
		},
	}

	content := snapshot.Content()

	if len(content.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(content.Results))
	}

	// Order is preserved, not sorted
	if content.Results[0].ID != 2 {
		t.Errorf("Expected first result ID 2, got %d", content.Results[0].ID)
	}
}
