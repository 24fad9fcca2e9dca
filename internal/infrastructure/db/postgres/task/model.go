package task

import (
	"time"

	"github.com/google/uuid"
)

type (
	Task struct {
		UUID           uuid.UUID
		TaskTypeID     uuid.UUID
		ProfessionalID *uuid.UUID
		ScheduleDate   string
		ScheduleHour   string
		TaskPrice      *float64
		CreatedBy      uuid.UUID
		CreateAt       time.Time

		Active  bool
		Deleted bool
	}
	Tasks []*Task
)
