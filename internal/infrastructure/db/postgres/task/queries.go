package task

const (
	SelectTasks = `
		SELECT uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
		FROM tasks
		ORDER BY schedule_date, schedule_hour
	`
	SelectTasksByProfessional = `
		SELECT uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
		FROM tasks
		WHERE professional_id = $1
		ORDER BY schedule_date, schedule_hour
	`
	SelectTaskByUUID = `
		SELECT uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
		FROM tasks
		WHERE uuid = $1
	`
	InsertTask = `
		INSERT INTO tasks (task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
	`
	UpdateTaskByUUID = `
		UPDATE tasks
		SET task_type_id = $1,
		    professional_id = $2,
		    schedule_date = $3,
		    schedule_hour = $4,
		    task_price = $5,
		    updated_at = now()
		WHERE uuid = $6
		RETURNING uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
	`
	DeleteTaskByUUID = `DELETE FROM tasks WHERE uuid = $1`
	ToggleTaskActive = `
		UPDATE tasks
		SET active = NOT active, updated_at = now()
		WHERE uuid = $1
		RETURNING uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
	`
	ToggleTaskDeleted = `
		UPDATE tasks
		SET deleted = NOT deleted, updated_at = now()
		WHERE uuid = $1
		RETURNING uuid, task_type_id, professional_id, schedule_date, schedule_hour, task_price, created_by, create_at, active, deleted
	`
)
