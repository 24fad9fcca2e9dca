// Package reftype holds the wire shapes shared by the user-type and
// task-type endpoints.
package reftype

import "github.com/google/uuid"

type (
	Type struct {
		UUID        uuid.UUID `json:"uuid"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Active      bool      `json:"active"`
		Deleted     bool      `json:"deleted"`
	}
	Types []Type

	Request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	UpdateRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
)
