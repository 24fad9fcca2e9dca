package task

import (
	"errors"

	"github.com/google/uuid"

	"assignly-api/internal/domain/task"
)

func ToResponseTask(tDomain task.Task) Task {
	return Task{
		UUID:           tDomain.UUID,
		TaskTypeID:     tDomain.TaskTypeID,
		ProfessionalID: tDomain.ProfessionalID,
		ScheduleDate:   tDomain.ScheduleDate,
		ScheduleHour:   tDomain.ScheduleHour,
		TaskPrice:      tDomain.TaskPrice,
		CreatedBy:      tDomain.CreatedBy,
		CreateAt:       tDomain.CreateAt,
		Active:         tDomain.Active,
		Deleted:        tDomain.Deleted,
	}
}

func ToResponseTasks(tsDomain []*task.Task) Tasks {
	ts := make(Tasks, len(tsDomain))
	for idx, t := range tsDomain {
		ts[idx] = ToResponseTask(*t)
	}

	return ts
}

func ToDomainTask(tRequest Request) (task.Task, error) {
	taskTypeID, err := uuid.Parse(tRequest.TaskTypeID)
	if err != nil {
		return task.Task{}, errors.New("task_type_id must be a valid UUID")
	}
	createdBy, err := uuid.Parse(tRequest.CreatedBy)
	if err != nil {
		return task.Task{}, errors.New("created_by must be a valid UUID")
	}

	t := task.Task{
		TaskTypeID:   taskTypeID,
		ScheduleDate: tRequest.ScheduleDate,
		ScheduleHour: tRequest.ScheduleHour,
		TaskPrice:    tRequest.TaskPrice,
		CreatedBy:    createdBy,
	}

	if tRequest.ProfessionalID != "" {
		professionalID, err := uuid.Parse(tRequest.ProfessionalID)
		if err != nil {
			return task.Task{}, errors.New("professional_id must be a valid UUID")
		}
		t.ProfessionalID = &professionalID
	}

	return t, nil
}

func ToPatch(tRequest UpdateRequest) (task.Patch, error) {
	p := task.Patch{
		ScheduleDate: tRequest.ScheduleDate,
		ScheduleHour: tRequest.ScheduleHour,
		TaskPrice:    tRequest.TaskPrice,
	}

	if tRequest.TaskTypeID != nil {
		taskTypeID, err := uuid.Parse(*tRequest.TaskTypeID)
		if err != nil {
			return task.Patch{}, errors.New("task_type_id must be a valid UUID")
		}
		p.TaskTypeID = &taskTypeID
	}
	if tRequest.ProfessionalID != nil {
		professionalID, err := uuid.Parse(*tRequest.ProfessionalID)
		if err != nil {
			return task.Patch{}, errors.New("professional_id must be a valid UUID")
		}
		p.ProfessionalID = &professionalID
	}

	return p, nil
}
