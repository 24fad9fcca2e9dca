package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User is the wire shape; the password hash never leaves the service.
	User struct {
		UUID       uuid.UUID `json:"uuid"`
		FirstName  string    `json:"first_name"`
		MiddleName string    `json:"middle_name,omitempty"`
		LastName   string    `json:"last_name"`
		Email      string    `json:"email"`
		BirthDate  time.Time `json:"birth_date"`
		Phone      string    `json:"phone"`
		Active     bool      `json:"active"`
		Deleted    bool      `json:"deleted"`
	}
	Users []User

	Request struct {
		FirstName  string `json:"first_name"`
		MiddleName string `json:"middle_name"`
		LastName   string `json:"last_name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		BirthDate  string `json:"birth_date"`
		Phone      string `json:"phone"`
	}

	// UpdateRequest carries a partial update: absent fields keep their
	// stored value.
	UpdateRequest struct {
		FirstName  *string `json:"first_name"`
		MiddleName *string `json:"middle_name"`
		LastName   *string `json:"last_name"`
		Email      *string `json:"email"`
		Password   *string `json:"password"`
		BirthDate  *string `json:"birth_date"`
		Phone      *string `json:"phone"`
	}
)
