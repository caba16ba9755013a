package models

import "time"

// Payment statuses a booking can be in.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking represents a customer's booking of a travel plan.
// Bookings are never hard-deleted; cancellation flips BookingStatus.
type Booking struct {
	ID                string          `bson:"id" json:"id"`
	PlanID            string          `bson:"planId" json:"planId"`
	AgentID           string          `bson:"agentId" json:"agentId"`
	CustomerID        string          `bson:"customerId" json:"customerId"`
	CustomerName      string          `bson:"customerName" json:"customerName"`
	CustomerEmail     string          `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone     string          `bson:"customerPhone" json:"customerPhone,omitempty"`
	NumberOfTravelers int             `bson:"numberOfTravelers" json:"numberOfTravelers"`
	TotalAmount       float64         `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus     string          `bson:"paymentStatus" json:"paymentStatus"`
	BookingStatus     string          `bson:"bookingStatus" json:"bookingStatus"`
	TravelDate        time.Time       `bson:"travelDate" json:"travelDate"`
	PaymentDetails    *PaymentDetails `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PaymentDetails holds the metadata recorded when a payment settles.
type PaymentDetails struct {
	Method        string     `bson:"method" json:"method"`                             // e.g. "card", "upi"
	TransactionID string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// Active reports whether the booking still holds spots on its plan.
func (b *Booking) Active() bool {
	return b.BookingStatus != BookingCancelled
}
