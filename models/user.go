package models

import "time"

// AadharDetails holds the identity document a user submitted for
// verification. The number itself is stored masked (last four digits).
type AadharDetails struct {
	MaskedNumber string     `bson:"maskedNumber" json:"maskedNumber,omitempty"`
	DocumentRef  string     `bson:"documentRef" json:"-"`
	VerifiedAt   *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
}

// User represents a platform user. Verification requests live in their own
// collection and are looked up by either party; they are not embedded here.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Phone         string         `bson:"phone" json:"phone,omitempty"`
	Password      string         `bson:"-" json:"password,omitempty"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	IsVerified    bool           `bson:"isVerified" json:"isVerified"`
	Aadhar        AadharDetails  `bson:"aadhar" json:"aadhar,omitzero"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Notification is an in-document message shown to the user on next fetch.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"` // e.g. "travel_reminder", "verification_request"
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
