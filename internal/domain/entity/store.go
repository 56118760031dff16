package entity

import "time"

// Store is a rateable storefront. OwnerID is a weak reference to a user and
// may be nil; the owner is not required to hold the store_owner role.
//
// AverageRating and TotalRatings are computed per query from the ratings
// table and are never persisted. AverageRating is 0 when no ratings exist.
type Store struct {
	ID        uint
	Name      string
	Email     string
	Address   string
	OwnerID   *uint
	CreatedAt time.Time

	AverageRating float64
	TotalRatings  int64
}

// StoreRater is one user's rating of a store, as listed on the owner
// dashboard. Ordered newest-first by the repository.
type StoreRater struct {
	UserID  uint
	Name    string
	Email   string
	Rating  int
	RatedAt time.Time
}
