package task

import (
	domain "assignly-api/internal/domain/task"
)

func fromDBModel(model *Task) *domain.Task {
	return &domain.Task{
		UUID:           model.UUID,
		TaskTypeID:     model.TaskTypeID,
		ProfessionalID: model.ProfessionalID,
		ScheduleDate:   model.ScheduleDate,
		ScheduleHour:   model.ScheduleHour,
		TaskPrice:      model.TaskPrice,
		CreatedBy:      model.CreatedBy,
		CreateAt:       model.CreateAt,

		Active:  model.Active,
		Deleted: model.Deleted,
	}
}

func fromDBModels(models Tasks) []*domain.Task {
	ts := make([]*domain.Task, len(models))
	for idx, t := range models {
		ts[idx] = fromDBModel(t)
	}

	return ts
}
