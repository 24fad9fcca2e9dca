package ports

import (
	"context"

	"github.com/google/uuid"

	"assignly-api/internal/domain/task"
)

type TaskService interface {
	Lifecycle[task.Task, task.Patch]
	FindByProfessional(ctx context.Context, professionalID uuid.UUID) (task.Tasks, error)
}
