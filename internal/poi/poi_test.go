package poi

import "testing"

func TestLookup_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"exact", "Rome", true},
		{"lower", "rome", true},
		{"upper", "ROME", true},
		{"padded", "  Paris ", true},
		{"unknown", "Atlantis", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Lookup(tt.query)
			if ok != tt.found {
				t.Errorf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
		})
	}
}

func TestLookup_ReturnsSightsAndFoods(t *testing.T) {
	c, ok := Lookup("tokyo")
	if !ok {
		t.Fatal("expected Tokyo to be known")
	}
	if c.Country != "Japan" {
		t.Errorf("country = %q, want Japan", c.Country)
	}
	if len(c.Sights) == 0 || len(c.SignatureFoods) == 0 {
		t.Errorf("expected non-empty sights and foods, got %d/%d", len(c.Sights), len(c.SignatureFoods))
	}
}

func TestFreeSights_EveryCityHasOne(t *testing.T) {
	// The low-cost fallback relies on every curated city having at least one
	// free sight.
	for _, c := range cities {
		free := FreeSights(c.City, 0)
		if len(free) == 0 {
			t.Errorf("city %s has no free sight", c.City)
		}
		for _, s := range free {
			if s.EstCost != 0 {
				t.Errorf("FreeSights(%s, 0) returned costed sight %s", c.City, s.Title)
			}
		}
	}
}

func TestSights_UnknownCityIsNil(t *testing.T) {
	if got := Sights("Nowhere"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
