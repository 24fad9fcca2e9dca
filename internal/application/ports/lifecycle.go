package ports

import (
	"context"

	"github.com/google/uuid"
)

// Lifecycle is the generic entity lifecycle contract shared by all four
// entity kinds. T is the domain entity, P its partial-update patch.
type Lifecycle[T any, P any] interface {
	ListAll(ctx context.Context) ([]*T, error)
	FindByName(ctx context.Context, name string) ([]*T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, patch P) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*T, error)
	ToggleDeleted(ctx context.Context, id uuid.UUID) (*T, error)
}
