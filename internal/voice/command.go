package voice

import (
	"strconv"
	"strings"
)

// Action identifies the operation a voice command performs on list items.
type Action string

const (
	ActionAdd        Action = "add"
	ActionComplete   Action = "complete"
	ActionUncomplete Action = "uncomplete"
	ActionRemove     Action = "remove"
)

// Command is the structured result of parsing one transcript.
type Command struct {
	// Action is always one of the four constants; unrecognized verbs
	// resolve to ActionAdd.
	Action Action
	// Items holds at least one entry for any transcript, even an empty one.
	Items []Item
	// TargetList is the lowercase list-name fragment extracted from a
	// trailing "to/on <name> list" clause, or empty when the transcript
	// named no list (or named the generic shopping/grocery list).
	TargetList string
	// Raw is the transcript exactly as supplied to Parse.
	Raw string
}

// Item is a single grocery item extracted from a transcript.
type Item struct {
	// Name has each word's first letter capitalized. The capitalization is
	// cosmetic; store lookups remain case-insensitive.
	Name string
	// Quantity is zero when the phrase carried no quantity. Parsed
	// quantities are always positive (integers or the fractions 0.5/0.25).
	Quantity float64
	// Unit is set only when Quantity is set.
	Unit string
	// OriginalText is the item's sub-phrase before quantity extraction.
	OriginalText string
}

// HasQuantity reports whether the phrase carried an explicit quantity.
func (it Item) HasQuantity() bool {
	return it.Quantity > 0
}

// DisplayQuantity renders the quantity for storage alongside the item name:
// "<quantity> <unit>" when both are present, the bare quantity when it is
// greater than one, and nothing otherwise.
func (it Item) DisplayQuantity() string {
	if !it.HasQuantity() {
		return ""
	}
	qty := formatQuantity(it.Quantity)
	if it.Unit != "" {
		return qty + " " + it.Unit
	}
	if it.Quantity > 1 {
		return qty
	}
	return ""
}

func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// CleanTranscript strips trailing sentence punctuation and surrounding
// whitespace, matching what a speech-to-text front end hands the parser.
func CleanTranscript(transcript string) string {
	trimmed := strings.TrimSpace(transcript)
	trimmed = strings.TrimRight(trimmed, ".,!?;:")
	return strings.TrimSpace(trimmed)
}
