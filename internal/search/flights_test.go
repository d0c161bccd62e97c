package search

import (
	"errors"
	"strings"
	"testing"
)

func TestSearchFlights(t *testing.T) {
	q := FlightQuery{From: "fco", To: "cdg", DepartDate: "2025-09-01", Adults: 2}

	got, err := SearchFlights(q)
	if err != nil {
		t.Fatalf("SearchFlights() error = %v", err)
	}
	if len(got) != flightResultCount {
		t.Fatalf("results = %d, want %d", len(got), flightResultCount)
	}
	for i, f := range got {
		if f.From != "FCO" || f.To != "CDG" {
			t.Errorf("option %d codes = %s-%s, want FCO-CDG", i, f.From, f.To)
		}
		if f.PriceAmount < 240 || f.PriceAmount > 1000 {
			t.Errorf("option %d price %d outside expected band for 2 adults", i, f.PriceAmount)
		}
		if f.PriceAmount%2 != 0 {
			t.Errorf("option %d price %d not a multiple of the adults count", i, f.PriceAmount)
		}
		if i > 0 && got[i-1].PriceAmount > f.PriceAmount {
			t.Errorf("results not sorted by price at index %d", i)
		}
		if f.DurationMinutes < 180 {
			t.Errorf("option %d duration %d below minimum", i, f.DurationMinutes)
		}
		if !strings.Contains(f.Link, "adults=2") {
			t.Errorf("option %d link missing adults param: %s", i, f.Link)
		}
	}
}

func TestSearchFlights_Deterministic(t *testing.T) {
	q := FlightQuery{From: "LIS", To: "BCN", DepartDate: "2025-10-10"}
	a, err := SearchFlights(q)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := SearchFlights(q)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSearchFlights_BadQuery(t *testing.T) {
	tests := []struct {
		name string
		q    FlightQuery
	}{
		{"missing from", FlightQuery{To: "CDG", DepartDate: "2025-09-01"}},
		{"missing to", FlightQuery{From: "FCO", DepartDate: "2025-09-01"}},
		{"bad date", FlightQuery{From: "FCO", To: "CDG", DepartDate: "next tuesday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SearchFlights(tt.q); !errors.Is(err, ErrBadQuery) {
				t.Errorf("error = %v, want ErrBadQuery", err)
			}
		})
	}
}

func TestSearchActivities(t *testing.T) {
	got := SearchActivities("rome", "EUR")
	if len(got) == 0 {
		t.Fatal("expected curated offers for Rome")
	}
	for _, o := range got {
		if o.Lat == nil || o.Lng == nil {
			t.Errorf("offer %s missing coordinates", o.ID)
		}
		if o.Supplier != "curated" {
			t.Errorf("offer %s supplier = %q", o.ID, o.Supplier)
		}
	}

	if got := SearchActivities("Atlantis", "EUR"); len(got) != 0 {
		t.Errorf("unknown city should yield no offers, got %d", len(got))
	}
}

func TestStayDeepLink(t *testing.T) {
	link := StayDeepLink("Rome", "2025-09-01", "2025-09-05", 2)
	for _, want := range []string{"ss=Rome", "checkin=2025-09-01", "checkout=2025-09-05", "group_adults=2"} {
		if !strings.Contains(link, want) {
			t.Errorf("link missing %q: %s", want, link)
		}
	}
}
