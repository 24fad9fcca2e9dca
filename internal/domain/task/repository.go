package task

import (
	"context"

	"assignly-api/internal/domain/entity"
)

type Repository interface {
	entity.Repository[Task]
	// FetchByProfessional returns every task referencing the professional,
	// soft-state flags included.
	FetchByProfessional(ctx context.Context, professionalID UUID) (Tasks, error)
}
