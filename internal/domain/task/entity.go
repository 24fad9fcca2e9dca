package task

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	// Task references a task-type and optionally the professional assigned
	// to it. Schedule date and hour are kept as strings in the wire format
	// ("2025-04-12", "14:30").
	Task struct {
		UUID           UUID
		TaskTypeID     UUID
		ProfessionalID *UUID
		ScheduleDate   string
		ScheduleHour   string
		TaskPrice      *float64
		CreatedBy      UUID
		CreateAt       time.Time

		Active  bool
		Deleted bool
	}
	Tasks []*Task

	Patch struct {
		TaskTypeID     *UUID
		ProfessionalID *UUID
		ScheduleDate   *string
		ScheduleHour   *string
		TaskPrice      *float64
	}
)
