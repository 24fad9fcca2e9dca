package ports

import (
	"assignly-api/internal/domain/user"
)

type Auth interface {
	// HashPassword produces a salted bcrypt digest; the plaintext is never
	// stored.
	HashPassword(password string) (string, error)
	// GenerateToken verifies the password against the stored digest and
	// issues a signed bearer token for the user.
	GenerateToken(u *user.User, requestPassword string) (string, error)
}
