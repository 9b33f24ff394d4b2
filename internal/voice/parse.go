package voice

import (
	"regexp"
	"strings"
)

// Parse converts a transcript into a structured command. It is total: any
// input, including the empty string, produces a command with a resolved
// action and at least one item.
func Parse(transcript string) Command {
	text := normalize(transcript)

	action := detectAction(text)
	residual, targetList := extractTargetList(text)
	residual = stripActionVerb(residual, action)

	phrases := splitItemPhrases(residual)
	items := make([]Item, 0, len(phrases))
	for _, phrase := range phrases {
		items = append(items, parseItemPhrase(phrase))
	}

	return Command{
		Action:     action,
		Items:      items,
		TargetList: targetList,
		Raw:        transcript,
	}
}

// normalize lowercases and trims the transcript. Empty output is passed
// through: downstream stages treat it as a single empty item phrase.
func normalize(transcript string) string {
	return strings.ToLower(strings.TrimSpace(transcript))
}

// detectAction classifies the transcript by scanning the verb table in
// declaration order. A verb matches when the text starts with it or contains
// it flanked by spaces. No match falls back to ActionAdd.
func detectAction(text string) Action {
	for _, entry := range actionTable {
		for _, verb := range entry.verbs {
			if strings.HasPrefix(text, verb) || strings.Contains(text, " "+verb+" ") {
				return entry.action
			}
		}
	}
	return ActionAdd
}

// stripActionVerb removes the first of the action's verbs that literally
// prefixes the text. Text without a leading verb (the ActionAdd fallback
// case) passes through unchanged.
func stripActionVerb(text string, action Action) string {
	for _, entry := range actionTable {
		if entry.action != action {
			continue
		}
		for _, verb := range entry.verbs {
			if strings.HasPrefix(text, verb) {
				return strings.TrimSpace(text[len(verb):])
			}
		}
		break
	}
	return text
}

// andSeparator matches the word "and" flanked by whitespace.
var andSeparator = regexp.MustCompile(`(?i)\s+and\s+`)

// splitItemPhrases breaks the command into per-item phrases: every "and"
// becomes a comma, the text splits on commas, and blank pieces are dropped.
// When nothing survives the split the untransformed text comes back as a
// single phrase so the pipeline always yields at least one item.
func splitItemPhrases(text string) []string {
	joined := andSeparator.ReplaceAllString(text, ",")
	parts := strings.Split(joined, ",")
	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	if len(phrases) == 0 {
		return []string{text}
	}
	return phrases
}
