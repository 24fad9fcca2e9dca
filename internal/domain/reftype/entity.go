// Package reftype holds the shared shape of the two reference-type
// collections, user-types and task-types. Both carry a unique
// case-insensitive name, a free-form description and the soft-state pair.
package reftype

import "github.com/google/uuid"

type (
	UUID = uuid.UUID
	Type struct {
		UUID        UUID
		Name        string
		Description string

		Active  bool
		Deleted bool
	}
	Types []*Type

	Patch struct {
		Name        *string
		Description *string
	}
)
