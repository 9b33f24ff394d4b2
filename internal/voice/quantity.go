package voice

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// parseItemPhrase extracts an optional leading quantity and unit from one
// item phrase. Pattern forms, tried in order, first match wins:
//
//  1. "<digits> <unit> [of] <name>"
//  2. "<one..ten> <unit> [of] <name>"
//  3. "<digits> <name>"
//  4. "<one..twelve> <name>"
//  5. "half|quarter <name>"
//
// The unit-aware forms run before the bare-quantity forms so "3 pounds of
// rice" yields quantity 3, unit "pounds", name "Rice" instead of swallowing
// the unit into the name. A phrase matching no form becomes a plain item
// whose name is the whole phrase.
func parseItemPhrase(phrase string) Item {
	item := Item{OriginalText: phrase}
	words := strings.Fields(phrase)

	if qty, unit, rest, ok := matchQuantityUnit(words); ok {
		item.Quantity = qty
		item.Unit = unit
		item.Name = capitalizeName(rest)
		return item
	}
	if qty, rest, ok := matchPlainQuantity(words); ok {
		item.Quantity = qty
		item.Name = capitalizeName(rest)
		return item
	}

	item.Name = capitalizeName(phrase)
	return item
}

// matchQuantityUnit handles the digit+unit and text-number+unit forms. The
// word after the quantity must be a known unit token and at least one name
// word must remain after the optional "of".
func matchQuantityUnit(words []string) (qty float64, unit string, rest string, ok bool) {
	if len(words) < 3 {
		return 0, "", "", false
	}
	qty, ok = parseDigits(words[0])
	if !ok {
		qty, ok = lookupNumberWord(smallNumberWords, words[0])
	}
	if !ok {
		return 0, "", "", false
	}
	unit, ok = matchUnit(words[1])
	if !ok {
		return 0, "", "", false
	}
	nameWords := words[2:]
	if nameWords[0] == "of" {
		nameWords = nameWords[1:]
	}
	if len(nameWords) == 0 {
		return 0, "", "", false
	}
	return qty, unit, strings.Join(nameWords, " "), true
}

// matchPlainQuantity handles the bare digit, text-number, and fraction-word
// forms.
func matchPlainQuantity(words []string) (qty float64, rest string, ok bool) {
	if len(words) < 2 {
		return 0, "", false
	}
	qty, ok = parseDigits(words[0])
	if !ok {
		qty, ok = lookupNumberWord(plainNumberWords, words[0])
	}
	if !ok {
		qty, ok = lookupNumberWord(fractionWords, words[0])
	}
	if !ok {
		return 0, "", false
	}
	return qty, strings.Join(words[1:], " "), true
}

func parseDigits(token string) (float64, bool) {
	if token == "" {
		return 0, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// capitalizeName title-cases each word. Purely cosmetic: store lookups stay
// case-insensitive.
func capitalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return titleCaser.String(trimmed)
}
