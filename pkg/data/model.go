package data

import "time"

// Character is one entry of the character listing as the API returns it.
type Character struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
	Gender string `json:"gender"`
	Type   string `json:"type"` // carried, never rendered
}

// Content is the decoded listing body. Results keep the API order.
type Content struct {
	Results []Character `json:"results"`
}

// Snapshot is a stored copy of one fetched listing.
type Snapshot struct {
	ID         string
	TakenAt    time.Time
	Endpoint   string
	Characters []Character
}

// Content returns the snapshot in the same shape the fetcher produces.
func (s *Snapshot) Content() *Content {
	return &Content{Results: s.Characters}
}
