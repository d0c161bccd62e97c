// README: Collaboration messages exchanged on a shared trip.
package collab

import (
	"time"

	"tripweaver/internal/types"
)

type Message struct {
	ID        int64     `json:"id"`
	TripID    types.ID  `json:"tripId"`
	UserID    types.ID  `json:"userId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
