// README: Group decision polls attached to a trip.
package poll

import (
	"time"

	"tripweaver/internal/types"
)

type Poll struct {
	ID          types.ID  `json:"id"`
	TripID      types.ID  `json:"tripId"`
	Title       string    `json:"title"`
	Options     []Option  `json:"options"`
	PublicToken string    `json:"publicToken"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Vote struct {
	ID         int64     `json:"id"`
	PollID     types.ID  `json:"pollId"`
	OptionID   string    `json:"optionId"`
	VoterToken string    `json:"voterToken"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Results pairs each option with its vote count, in option order.
type Results struct {
	Poll   *Poll          `json:"poll"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
