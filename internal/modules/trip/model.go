// README: Trip aggregate: saved preferences plus a generated itinerary.
package trip

import (
	"encoding/json"
	"time"

	"tripweaver/internal/types"
)

type Trip struct {
	ID          types.ID        `json:"id"`
	OwnerID     types.ID        `json:"ownerId"`
	Destination string          `json:"destination"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Travelers   int             `json:"travelers"`
	Budget      types.Money     `json:"budget"`
	Itinerary   json.RawMessage `json:"itinerary"`
	ShareToken  string          `json:"shareToken"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PublicView is the shape exposed through a share link: no owner identity.
type PublicView struct {
	ID          types.ID        `json:"id"`
	Destination string          `json:"destination"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Travelers   int             `json:"travelers"`
	Budget      types.Money     `json:"budget"`
	Itinerary   json.RawMessage `json:"itinerary"`
	ShareToken  string          `json:"shareToken"`
}

func (t *Trip) Public() PublicView {
	return PublicView{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Travelers:   t.Travelers,
		Budget:      t.Budget,
		Itinerary:   t.Itinerary,
		ShareToken:  t.ShareToken,
	}
}
