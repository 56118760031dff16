package entity

import "time"

// Rating bounds accepted by the platform.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a single user's 1-5 star rating of a store. Exactly one row
// exists per (UserID, StoreID) pair; resubmission overwrites in place.
type Rating struct {
	ID        uint
	UserID    uint
	StoreID   uint
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time

	// UserName is populated by joined queries only.
	UserName string
}
