package user

import (
	"errors"
	"time"

	"assignly-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:       uDomain.UUID,
		FirstName:  uDomain.FirstName,
		MiddleName: uDomain.MiddleName,
		LastName:   uDomain.LastName,
		Email:      uDomain.Email,
		BirthDate:  uDomain.BirthDate,
		Phone:      uDomain.Phone,
		Active:     uDomain.Active,
		Deleted:    uDomain.Deleted,
	}
}

func ToResponseUsers(usDomain []*user.User) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) (user.User, error) {
	d, err := time.Parse("2006-01-02", uRequest.BirthDate)
	if err != nil {
		return user.User{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
	}

	return user.User{
		FirstName:  uRequest.FirstName,
		MiddleName: uRequest.MiddleName,
		LastName:   uRequest.LastName,
		Email:      uRequest.Email,
		BirthDate:  d,
		Phone:      uRequest.Phone,
	}, nil
}

// ToPatch leaves PasswordHash unset; the controller hashes the plaintext
// and fills it in.
func ToPatch(uRequest UpdateRequest) (user.Patch, error) {
	p := user.Patch{
		FirstName:  uRequest.FirstName,
		MiddleName: uRequest.MiddleName,
		LastName:   uRequest.LastName,
		Email:      uRequest.Email,
		Phone:      uRequest.Phone,
	}

	if uRequest.BirthDate != nil {
		d, err := time.Parse("2006-01-02", *uRequest.BirthDate)
		if err != nil {
			return user.Patch{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
		}
		p.BirthDate = &d
	}

	return p, nil
}
