// Package entity contains the pure domain objects of the application.
// Entities carry no persistence or transport concerns.
package entity

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext; delivery-layer DTOs are responsible for stripping it before
// serialization.
type User struct {
	ID        uint
	Name      string
	Email     string
	Password  string
	Address   string
	Role      Role
	CreatedAt time.Time
}
