package reftype

import "github.com/google/uuid"

type (
	Type struct {
		UUID        uuid.UUID
		Name        string
		Description string

		Active  bool
		Deleted bool
	}
	Types []*Type
)
