package store

import "time"

// List is a named grocery list.
type List struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is one entry on a grocery list. Quantity is the display string
// composed by the voice layer ("2 cans", "0.5 pound") or typed by the user;
// it may be empty.
type Item struct {
	ID        int64
	ListID    int64
	Name      string
	Quantity  string
	Checked   bool
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoiceRecord is the stored outcome of one applied voice command.
type VoiceRecord struct {
	ID        string
	Raw       string
	Action    string
	ListID    int64
	ListName  string
	Summary   string
	Matched   int
	Missed    int
	CreatedAt time.Time
}
