package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID         uuid.UUID
		FirstName    string
		MiddleName   *string
		LastName     string
		Email        string
		PasswordHash *string
		BirthDate    time.Time
		Phone        string

		Active  bool
		Deleted bool
	}
	Users []*User
)
