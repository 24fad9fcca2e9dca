package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"assignly-api/internal/domain/entity"
	domain "assignly-api/internal/domain/task"
	"assignly-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanTask(row pgx.Row) (*Task, error) {
	t := new(Task)
	err := row.Scan(
		&t.UUID,
		&t.TaskTypeID,
		&t.ProfessionalID,
		&t.ScheduleDate,
		&t.ScheduleHour,
		&t.TaskPrice,
		&t.CreatedBy,
		&t.CreateAt,

		&t.Active,
		&t.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts Tasks
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ts), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]*domain.Task, error) {
	return r.fetchMany(ctx, SelectTasks)
}

func (r *Repository) FetchByProfessional(ctx context.Context, professionalID uuid.UUID) (domain.Tasks, error) {
	return r.fetchMany(ctx, SelectTasksByProfessional, professionalID)
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.fetchOne(ctx, SelectTaskByUUID, id)
}

func (r *Repository) Insert(ctx context.Context, req *domain.Task) (*domain.Task, error) {
	t, err := r.fetchOne(ctx, InsertTask,
		req.TaskTypeID, req.ProfessionalID, req.ScheduleDate, req.ScheduleHour, req.TaskPrice, req.CreatedBy,
	)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, entity.ErrInvalidReference
		}
		return nil, err
	}

	return t, nil
}

func (r *Repository) Update(ctx context.Context, req *domain.Task) (*domain.Task, error) {
	t, err := r.fetchOne(ctx, UpdateTaskByUUID,
		req.TaskTypeID, req.ProfessionalID, req.ScheduleDate, req.ScheduleHour, req.TaskPrice, req.UUID,
	)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, entity.ErrInvalidReference
		}
		return nil, err
	}

	return t, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteTaskByUUID, id)
	return err
}

func (r *Repository) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.fetchOne(ctx, ToggleTaskActive, id)
}

func (r *Repository) ToggleDeleted(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.fetchOne(ctx, ToggleTaskDeleted, id)
}
