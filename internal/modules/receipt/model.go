// README: Receipt metadata for files uploaded against a trip.
package receipt

import (
	"time"

	"tripweaver/internal/types"
)

type Receipt struct {
	ID        types.ID  `json:"id"`
	TripID    types.ID  `json:"tripId"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	Bytes     int64     `json:"bytes"`
	StoredAt  string    `json:"storedAt"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
