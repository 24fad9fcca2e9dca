package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	domain "assignly-api/internal/domain/user"
	"assignly-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	*Lifecycle[domain.User, domain.Patch]
	userRepository domain.Repository
}

func NewUserService(
	userRepository domain.Repository,
	rmq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	desc := Descriptor[domain.User, domain.Patch]{
		Kind:     "user",
		ID:       func(u *domain.User) domain.UUID { return u.UUID },
		Key:      func(u *domain.User) string { return u.Email },
		PatchKey: func(p domain.Patch) *string { return p.Email },
		Apply: func(u *domain.User, p domain.Patch) {
			if p.FirstName != nil {
				u.FirstName = *p.FirstName
			}
			if p.MiddleName != nil {
				u.MiddleName = *p.MiddleName
			}
			if p.LastName != nil {
				u.LastName = *p.LastName
			}
			if p.Email != nil {
				u.Email = *p.Email
			}
			if p.PasswordHash != nil {
				u.PasswordHash = p.PasswordHash
			}
			if p.BirthDate != nil {
				u.BirthDate = *p.BirthDate
			}
			if p.Phone != nil {
				u.Phone = *p.Phone
			}
		},
		DupErr: entity.ErrDuplicateEmail,
		EventPayload: func(u *domain.User) any {
			return user.ToResponseUser(*u)
		},
	}

	return &UserService{
		Lifecycle:      NewLifecycle(userRepository, desc, rmq, mCounter),
		userRepository: userRepository,
	}
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}
