package service

import "ratehub/internal/domain/entity"

// TokenClaims is the identity embedded in an issued credential.
type TokenClaims struct {
	UserID uint
	Email  string
	Role   entity.Role
}

// TokenService issues and verifies the signed, time-limited credential used
// by every protected endpoint. There is no refresh mechanism; expiry forces
// re-login.
type TokenService interface {
	// GenerateToken signs a credential embedding the user's id, email and
	// role.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies signature and expiry and returns the embedded
	// claims. It does not check that the user still exists; the caller is
	// responsible for resolving the id.
	ValidateToken(token string) (*TokenClaims, error)
}
