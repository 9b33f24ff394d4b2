package voice

import "testing"

func TestParseItemPhrase(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		item     string
		quantity float64
		unit     string
	}{
		{"plain name", "milk", "Milk", 0, ""},
		{"multi word name", "paper towels", "Paper Towels", 0, ""},
		{"digits", "3 apples", "Apples", 3, ""},
		{"number word", "two apples", "Apples", 2, ""},
		{"large number word", "twelve eggs", "Eggs", 12, ""},
		{"half", "half lemon", "Lemon", 0.5, ""},
		{"quarter", "quarter watermelon", "Watermelon", 0.25, ""},
		{"digits with unit", "2 cans of soup", "Soup", 2, "cans"},
		{"digits with unit no of", "2 bags chips", "Chips", 2, "bags"},
		{"number word with unit", "three pounds of apples", "Apples", 3, "pounds"},
		{"unit abbreviation", "2 lbs of chicken", "Chicken", 2, "lbs"},
		{"dozen", "1 dozen of eggs", "Eggs", 1, "dozen"},
		{"unit precedence over bare digits", "3 pounds of rice", "Rice", 3, "pounds"},
		{"thirteen is not a number word", "thirteen donuts", "Thirteen Donuts", 0, ""},
		{"unit word alone stays a name", "pound cake", "Pound Cake", 0, ""},
		{"half with filler article", "half a pound of butter", "A Pound Of Butter", 0.5, ""},
		{"zero is not a quantity", "0 apples", "0 Apples", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseItemPhrase(tt.phrase)
			if got.Name != tt.item {
				t.Fatalf("name = %q, want %q", got.Name, tt.item)
			}
			if got.Quantity != tt.quantity {
				t.Fatalf("quantity = %v, want %v", got.Quantity, tt.quantity)
			}
			if got.Unit != tt.unit {
				t.Fatalf("unit = %q, want %q", got.Unit, tt.unit)
			}
			if got.OriginalText != tt.phrase {
				t.Fatalf("original text = %q, want %q", got.OriginalText, tt.phrase)
			}
			if got.Unit != "" && !got.HasQuantity() {
				t.Fatal("unit present without quantity")
			}
		})
	}
}

func TestParseItemPhraseUnitRequiresName(t *testing.T) {
	// "2 cans" has no trailing name, so the unit form does not apply and the
	// bare-quantity form takes over.
	got := parseItemPhrase("2 cans")
	if got.Quantity != 2 || got.Unit != "" || got.Name != "Cans" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestDisplayQuantity(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"no quantity", Item{Name: "Milk"}, ""},
		{"quantity of one", Item{Name: "Milk", Quantity: 1}, ""},
		{"quantity above one", Item{Name: "Apples", Quantity: 3}, "3"},
		{"quantity with unit", Item{Name: "Soup", Quantity: 2, Unit: "cans"}, "2 cans"},
		{"fraction with unit", Item{Name: "Butter", Quantity: 0.5, Unit: "pound"}, "0.5 pound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.DisplayQuantity(); got != tt.want {
				t.Fatalf("DisplayQuantity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add milk.", "add milk"},
		{"  add milk!  ", "add milk"},
		{"add milk?!", "add milk"},
		{"add milk", "add milk"},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := CleanTranscript(tt.in); got != tt.want {
			t.Fatalf("CleanTranscript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
