package voice

import (
	"regexp"
	"strings"
)

// targetPattern is one trailing list-clause form. Patterns are anchored to
// the end of the text and case-insensitive. Generic patterns (the default
// shopping/grocery list) strip the clause without naming a target; named
// patterns capture the list-name fragment in group 1.
type targetPattern struct {
	re      *regexp.Regexp
	generic bool
}

var targetPatterns = []targetPattern{
	{re: regexp.MustCompile(`(?i)\s*to my (?:shopping|grocery) list$`), generic: true},
	{re: regexp.MustCompile(`(?i)\s*to the (?:shopping|grocery) list$`), generic: true},
	{re: regexp.MustCompile(`(?i)\s*to my (.+?) list$`)},
	{re: regexp.MustCompile(`(?i)\s*to (?:the )?(.+?) list$`)},
	{re: regexp.MustCompile(`(?i)\s*on (?:my|the) (.+?) list$`)},
}

// extractTargetList detects and strips a trailing "to/on <name> list" clause.
// It returns the residual text and the lowercase list-name fragment, which is
// empty for generic phrasings ("to my shopping list") so the caller falls
// back to its default list. Unmatched text is returned unchanged.
func extractTargetList(text string) (residual, targetList string) {
	for _, pattern := range targetPatterns {
		loc := pattern.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		residual = strings.TrimSpace(text[:loc[0]])
		if !pattern.generic && loc[2] >= 0 {
			targetList = strings.ToLower(strings.TrimSpace(text[loc[2]:loc[3]]))
		}
		return residual, targetList
	}
	return text, ""
}
