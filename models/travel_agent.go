package models

import "time"

// Agent approval statuses. Registration currently approves synchronously,
// but the schema keeps the full set for a future manual review queue.
const (
	AgentPending   = "pending"
	AgentApproved  = "approved"
	AgentRejected  = "rejected"
	AgentSuspended = "suspended"
)

// AgentVerification records the outcome of the identity check performed at
// registration. The government ID is stored masked (last four digits only).
type AgentVerification struct {
	MaskedGovID      string    `bson:"maskedGovId" json:"maskedGovId,omitempty"`
	DocumentRef      string    `bson:"documentRef" json:"-"`
	VerificationCode string    `bson:"verificationCode" json:"-"`
	VerifiedAt       time.Time `bson:"verifiedAt" json:"verifiedAt,omitzero"`
}

// TravelAgent is a registered seller of travel plans.
// TotalBookings and TotalRevenue are denormalized aggregates incremented
// atomically when a booking's payment settles.
type TravelAgent struct {
	ID            string            `bson:"id" json:"id"`
	Name          string            `bson:"name" json:"name"`
	Email         string            `bson:"email" json:"email"`
	Phone         string            `bson:"phone" json:"phone,omitempty"`
	AgencyName    string            `bson:"agencyName" json:"agencyName,omitempty"`
	Password      string            `bson:"-" json:"password,omitempty"`
	PasswordHash  string            `bson:"passwordHash" json:"-"`
	IsVerified    bool              `bson:"isVerified" json:"isVerified"`
	IsApproved    bool              `bson:"isApproved" json:"isApproved"`
	Status        string            `bson:"status" json:"status"`
	Verification  AgentVerification `bson:"verification" json:"verification,omitzero"`
	TotalBookings int               `bson:"totalBookings" json:"totalBookings"`
	TotalRevenue  float64           `bson:"totalRevenue" json:"totalRevenue"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}
