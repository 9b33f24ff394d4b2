package voice

import "strings"

// actionVerbs binds an action to its trigger phrases. Table order is the
// tie-break: a transcript matching verbs from two categories takes the
// category declared first, then the first verb within it.
type actionVerbs struct {
	action Action
	verbs  []string
}

var actionTable = []actionVerbs{
	{ActionAdd, []string{"add", "adding", "buy", "get", "need", "pick up", "grab"}},
	{ActionComplete, []string{"check off", "mark", "complete", "done with", "got", "bought"}},
	{ActionUncomplete, []string{"uncheck", "unmark", "undo"}},
	{ActionRemove, []string{"remove", "delete", "clear", "take off"}},
}

// unitTokens are the recognized measurement and packaging units. Matching is
// case-insensitive; the matched token is returned verbatim from this list.
var unitTokens = []string{
	"pound", "pounds", "lb", "lbs",
	"ounce", "ounces", "oz",
	"can", "cans",
	"box", "boxes",
	"bag", "bags",
	"bottle", "bottles",
	"gallon", "gallons",
	"quart", "quarts",
	"cup", "cups",
	"dozen",
}

type numberWord struct {
	word  string
	value float64
}

// smallNumberWords is the subset accepted before a unit token.
var smallNumberWords = []numberWord{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

// plainNumberWords is the subset accepted for bare quantities.
var plainNumberWords = append(smallNumberWords[:len(smallNumberWords):len(smallNumberWords)],
	numberWord{"eleven", 11},
	numberWord{"twelve", 12},
)

var fractionWords = []numberWord{
	{"half", 0.5},
	{"quarter", 0.25},
}

func matchUnit(token string) (string, bool) {
	for _, unit := range unitTokens {
		if strings.EqualFold(token, unit) {
			return unit, true
		}
	}
	return "", false
}

func lookupNumberWord(table []numberWord, token string) (float64, bool) {
	for _, entry := range table {
		if strings.EqualFold(token, entry.word) {
			return entry.value, true
		}
	}
	return 0, false
}
