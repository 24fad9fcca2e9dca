package user

import (
	domain "assignly-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:         model.UUID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		BirthDate:    model.BirthDate,
		Phone:        model.Phone,

		Active:  model.Active,
		Deleted: model.Deleted,
	}
	if model.MiddleName != nil {
		u.MiddleName = *model.MiddleName
	}

	return u
}

func fromDBModels(models Users) []*domain.User {
	us := make([]*domain.User, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func toDBMiddleName(u *domain.User) *string {
	if u.MiddleName == "" {
		return nil
	}
	m := u.MiddleName
	return &m
}
