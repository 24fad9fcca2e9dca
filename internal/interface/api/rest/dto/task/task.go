package task

import (
	"time"

	"github.com/google/uuid"
)

type (
	Task struct {
		UUID           uuid.UUID  `json:"uuid"`
		TaskTypeID     uuid.UUID  `json:"task_type_id"`
		ProfessionalID *uuid.UUID `json:"professional_id,omitempty"`
		ScheduleDate   string     `json:"schedule_date"`
		ScheduleHour   string     `json:"schedule_hour"`
		TaskPrice      *float64   `json:"task_price,omitempty"`
		CreatedBy      uuid.UUID  `json:"created_by"`
		CreateAt       time.Time  `json:"create_at"`
		Active         bool       `json:"active"`
		Deleted        bool       `json:"deleted"`
	}
	Tasks []Task

	Request struct {
		TaskTypeID     string   `json:"task_type_id"`
		ProfessionalID string   `json:"professional_id"`
		ScheduleDate   string   `json:"schedule_date"`
		ScheduleHour   string   `json:"schedule_hour"`
		TaskPrice      *float64 `json:"task_price"`
		CreatedBy      string   `json:"created_by"`
	}

	UpdateRequest struct {
		TaskTypeID     *string  `json:"task_type_id"`
		ProfessionalID *string  `json:"professional_id"`
		ScheduleDate   *string  `json:"schedule_date"`
		ScheduleHour   *string  `json:"schedule_hour"`
		TaskPrice      *float64 `json:"task_price"`
	}
)
