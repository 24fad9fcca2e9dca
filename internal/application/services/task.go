package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"assignly-api/internal/application/ports"
	domain "assignly-api/internal/domain/task"
)

type TaskService struct {
	*Lifecycle[domain.Task, domain.Patch]
	taskRepository domain.Repository
}

func NewTaskService(
	taskRepository domain.Repository,
	rmq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.TaskService {
	desc := Descriptor[domain.Task, domain.Patch]{
		Kind: "task",
		ID:   func(t *domain.Task) domain.UUID { return t.UUID },
		Apply: func(t *domain.Task, p domain.Patch) {
			if p.TaskTypeID != nil {
				t.TaskTypeID = *p.TaskTypeID
			}
			if p.ProfessionalID != nil {
				t.ProfessionalID = p.ProfessionalID
			}
			if p.ScheduleDate != nil {
				t.ScheduleDate = *p.ScheduleDate
			}
			if p.ScheduleHour != nil {
				t.ScheduleHour = *p.ScheduleHour
			}
			if p.TaskPrice != nil {
				t.TaskPrice = p.TaskPrice
			}
		},
	}

	return &TaskService{
		Lifecycle:      NewLifecycle(taskRepository, desc, rmq, mCounter),
		taskRepository: taskRepository,
	}
}

func (ts *TaskService) FindByProfessional(ctx context.Context, professionalID uuid.UUID) (domain.Tasks, error) {
	tasks, err := ts.taskRepository.FetchByProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
