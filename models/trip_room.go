package models

import "time"

// TripRoom is a time-boxed group-travel listing with a fixed spot count.
// SpotsLeft is decremented atomically when a member joins or an interest is
// accepted; it never drops below zero.
type TripRoom struct {
	ID          string    `bson:"id" json:"id"`
	HostID      string    `bson:"hostId" json:"hostId"`
	Title       string    `bson:"title" json:"title"`
	Destination string    `bson:"destination" json:"destination"`
	Description string    `bson:"description" json:"description,omitempty"`
	StartDate   time.Time `bson:"startDate" json:"startDate"`
	EndDate     time.Time `bson:"endDate" json:"endDate"`
	TotalSpots  int       `bson:"totalSpots" json:"totalSpots"`
	SpotsLeft   int       `bson:"spotsLeft" json:"spotsLeft"`
	Members     []string  `bson:"members" json:"members"`
	IsOpen      bool      `bson:"isOpen" json:"isOpen"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
