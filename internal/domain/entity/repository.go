package entity

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract shared by every entity kind. Fetch
// methods return nil without error when no record matches; writes by id
// report a missing record through pgx no-rows mapped to ErrNotFound by the
// caller.
type Repository[T any] interface {
	// FetchAll returns every record regardless of the active/deleted flags.
	FetchAll(ctx context.Context) ([]*T, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*T, error)
	Insert(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, rec *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*T, error)
	ToggleDeleted(ctx context.Context, id uuid.UUID) (*T, error)
}

// NamedRepository extends Repository for kinds carrying a display name and a
// uniqueness key (users, user-types, task-types).
type NamedRepository[T any] interface {
	Repository[T]
	// FetchByName matches the kind's display column case-insensitively as a
	// substring and skips records marked deleted.
	FetchByName(ctx context.Context, name string) ([]*T, error)
	// FetchByKey is a case-insensitive exact match on the kind's uniqueness
	// column (name or email).
	FetchByKey(ctx context.Context, key string) (*T, error)
}
