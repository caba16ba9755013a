package models

import "time"

// Story is a user's travel story shown in the public feed. Likes and
// CommentsCount are plain counters mutated with $inc.
type Story struct {
	ID            string    `bson:"id" json:"id"`
	AuthorID      string    `bson:"authorId" json:"authorId"`
	Title         string    `bson:"title" json:"title"`
	Body          string    `bson:"body" json:"body"`
	Destination   string    `bson:"destination" json:"destination,omitempty"`
	Images        []string  `bson:"images,omitempty" json:"images,omitempty"`
	Likes         int       `bson:"likes" json:"likes"`
	CommentsCount int       `bson:"commentsCount" json:"commentsCount"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
