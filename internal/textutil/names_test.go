package textutil

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Costco", "costco"},
		{"  Farmers   Market  ", "farmers market"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		needle string
		want   bool
	}{
		{"Paper Towels", "paper towels", true},
		{"Paper Towels", "towels", true},
		{"Paper Towels", "PAPER", true},
		{"Milk", "eggs", false},
		{"Milk", "", false},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.name, tt.needle); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.name, tt.needle, got, tt.want)
		}
	}
}

func TestCosineSimilarityRanksCloserNames(t *testing.T) {
	target := NewFingerprint("farmers market")
	close := CosineSimilarity(target, NewFingerprint("farmers market trip"))
	far := CosineSimilarity(target, NewFingerprint("costco run"))
	if close <= far {
		t.Fatalf("expected farmers market trip to rank above costco run: %v vs %v", close, far)
	}
}

func TestCosineSimilarityNilSafe(t *testing.T) {
	if got := CosineSimilarity(nil, NewFingerprint("costco")); got != 0 {
		t.Fatalf("CosineSimilarity(nil, x) = %v, want 0", got)
	}
	if got := CosineSimilarity(NewFingerprint("!!!"), NewFingerprint("costco")); got != 0 {
		t.Fatalf("zero-token fingerprint should yield 0, got %v", got)
	}
}
