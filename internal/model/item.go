package model

import "time"

// Item is the domain model for a todo entry.
// ID is assigned by the store and never changes. OriginalText is the text the
// item was created with; undo while editing restores it.
type Item struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	OriginalText string    `json:"original_text"`
	CreatedAt    time.Time `json:"created_at"`
}
