package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		FirstName    string
		MiddleName   string
		LastName     string
		Email        string
		PasswordHash *string
		BirthDate    time.Time
		Phone        string

		Active  bool
		Deleted bool
	}
	Users []*User

	// Patch carries a partial update: nil fields keep their stored value.
	Patch struct {
		FirstName    *string
		MiddleName   *string
		LastName     *string
		Email        *string
		PasswordHash *string
		BirthDate    *time.Time
		Phone        *string
	}
)
