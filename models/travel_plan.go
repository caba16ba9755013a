package models

import "time"

// CostBreakdown itemizes the per-traveler price of a plan.
type CostBreakdown struct {
	BaseCost float64 `bson:"baseCost" json:"baseCost"`
	Taxes    float64 `bson:"taxes" json:"taxes"`
	Total    float64 `bson:"total" json:"total"` // per traveler
}

// TravelPlan is a travel agent's bookable package with a fixed capacity.
// CurrentBookings is a denormalized running counter; it is only ever
// mutated through guarded atomic updates in the plan repository.
type TravelPlan struct {
	ID              string        `bson:"id" json:"id"`
	AgentID         string        `bson:"agentId" json:"agentId"`
	Title           string        `bson:"title" json:"title"`
	Description     string        `bson:"description" json:"description,omitempty"`
	Destination     string        `bson:"destination" json:"destination"`
	DurationDays    int           `bson:"durationDays" json:"durationDays"`
	Cost            CostBreakdown `bson:"cost" json:"cost"`
	MaxTravelers    int           `bson:"maxTravelers" json:"maxTravelers"`
	CurrentBookings int           `bson:"currentBookings" json:"currentBookings"`
	IsActive        bool          `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// SpotsLeft returns the remaining bookable capacity.
func (p *TravelPlan) SpotsLeft() int {
	return p.MaxTravelers - p.CurrentBookings
}
