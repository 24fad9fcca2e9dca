package user

import (
	"context"

	"assignly-api/internal/domain/entity"
)

type Repository interface {
	entity.NamedRepository[User]
	// FetchByEmail is an exact-match lookup used by the login flow; it does
	// not filter on the soft-state flags, login inspects them itself.
	FetchByEmail(ctx context.Context, email string) (*User, error)
}
