package voice

import "strings"

var actionLabels = map[Action]string{
	ActionAdd:        "Added",
	ActionComplete:   "Checked off",
	ActionUncomplete: "Unchecked",
	ActionRemove:     "Removed",
}

// FormatSummary renders a command as one human-readable sentence, e.g.
// "Added 2 pounds of Apples, Milk".
func FormatSummary(cmd Command) string {
	label, ok := actionLabels[cmd.Action]
	if !ok {
		label = actionLabels[ActionAdd]
	}

	descriptions := make([]string, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		if desc := describeItem(item); desc != "" {
			descriptions = append(descriptions, desc)
		}
	}
	return strings.TrimSpace(label + " " + strings.Join(descriptions, ", "))
}

func describeItem(item Item) string {
	switch {
	case item.HasQuantity() && item.Unit != "":
		return formatQuantity(item.Quantity) + " " + item.Unit + " of " + item.Name
	case item.HasQuantity():
		return formatQuantity(item.Quantity) + " " + item.Name
	default:
		return item.Name
	}
}
