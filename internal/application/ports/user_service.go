package ports

import (
	"context"

	"assignly-api/internal/domain/user"
)

type UserService interface {
	Lifecycle[user.User, user.Patch]
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
