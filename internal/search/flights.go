// README: Deterministic mock flight search with booking deep links.
package search

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"
)

var ErrBadQuery = errors.New("invalid search query")

// FlightQuery describes a one-way or round-trip search. From and To take IATA
// codes or city names.
type FlightQuery struct {
	From       string `json:"from"`
	To         string `json:"to"`
	DepartDate string `json:"departDate"`
	ReturnDate string `json:"returnDate,omitempty"`
	Adults     int    `json:"adults,omitempty"`
}

type FlightOption struct {
	ID              string `json:"id"`
	Airline         string `json:"airline"`
	From            string `json:"from"`
	To              string `json:"to"`
	DepartTime      string `json:"departTime"`
	ArriveTime      string `json:"arriveTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Stops           int    `json:"stops"`
	PriceAmount     int64  `json:"priceAmount"`
	PriceCurrency   string `json:"priceCurrency"`
	Link            string `json:"link"`
}

var airlines = []string{"Emirates", "Qatar", "Air France", "Lufthansa", "KLM", "Turkish", "British Airways"}

const flightResultCount = 6

// seededFrac is a cheap deterministic generator: the fractional part of a
// scaled sine. Same seed, same value, on every run and platform.
func seededFrac(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// SearchFlights returns a deterministic, price-sorted set of offers derived
// from the query. No live supplier is contacted; links point at the supplier
// booking page so the caller can hand off.
func SearchFlights(q FlightQuery) ([]FlightOption, error) {
	if strings.TrimSpace(q.From) == "" || strings.TrimSpace(q.To) == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrBadQuery)
	}
	depart, err := time.Parse("2006-01-02", q.DepartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad departDate %q", ErrBadQuery, q.DepartDate)
	}
	adults := q.Adults
	if adults < 1 {
		adults = 1
	}

	base := depart.Add(8 * time.Hour) // first departure 08:00 UTC
	from := strings.ToUpper(strings.TrimSpace(q.From))
	to := strings.ToUpper(strings.TrimSpace(q.To))

	options := make([]FlightOption, 0, flightResultCount)
	for i := 0; i < flightResultCount; i++ {
		r := seededFrac(float64(base.UnixMilli())/1e7 + float64(i))
		dep := base.Add(time.Duration(i) * time.Hour)
		durMin := 180 + int(r*240) // 3h to 7h nonstop
		arr := dep.Add(time.Duration(durMin) * time.Minute)
		stops := 0
		if r > 0.7 {
			stops = 1
			durMin += 60
		}
		priceBase := 120 + int64(r*380)

		options = append(options, FlightOption{
			ID:              fmt.Sprintf("%s-%s-%d", from, to, i),
			Airline:         airlines[int(r*float64(len(airlines)))%len(airlines)],
			From:            from,
			To:              to,
			DepartTime:      dep.UTC().Format(time.RFC3339),
			ArriveTime:      arr.UTC().Format(time.RFC3339),
			DurationMinutes: durMin,
			Stops:           stops,
			PriceAmount:     priceBase * int64(adults),
			PriceCurrency:   "EUR",
			Link:            flightDeepLink(from, to, q.DepartDate, q.ReturnDate, adults),
		})
	}

	sort.Slice(options, func(a, b int) bool {
		return options[a].PriceAmount < options[b].PriceAmount
	})
	return options, nil
}

func flightDeepLink(from, to, depart, ret string, adults int) string {
	v := url.Values{}
	v.Set("date", depart)
	if ret != "" {
		v.Set("date2", ret)
	}
	v.Set("adults", fmt.Sprint(adults))
	return fmt.Sprintf("https://www.booking.com/flights/from-%s/to-%s/?%s",
		url.PathEscape(from), url.PathEscape(to), v.Encode())
}
