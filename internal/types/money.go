// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier.
type ID string

// Money is an amount in major currency units with an ISO 4217 currency code.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
