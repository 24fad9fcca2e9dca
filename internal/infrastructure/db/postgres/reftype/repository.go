package reftype

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"assignly-api/internal/domain/entity"
	domain "assignly-api/internal/domain/reftype"
	"assignly-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
	q  queries
}

// NewRepository serves one of the reference-type tables, "user_types" or
// "task_types".
func NewRepository(db postgres.DB, table string) domain.Repository {
	return &Repository{db: db, q: buildQueries(table)}
}

func scanType(row pgx.Row) (*Type, error) {
	t := new(Type)
	err := row.Scan(
		&t.UUID,
		&t.Name,
		&t.Description,

		&t.Active,
		&t.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) ([]*domain.Type, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts Types
	for rows.Next() {
		t, err := scanType(rows)
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

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.Type, error) {
	t, err := scanType(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]*domain.Type, error) {
	return r.fetchMany(ctx, r.q.selectAll)
}

func (r *Repository) FetchByName(ctx context.Context, name string) ([]*domain.Type, error) {
	return r.fetchMany(ctx, r.q.selectByName, name)
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Type, error) {
	return r.fetchOne(ctx, r.q.selectByUUID, id)
}

func (r *Repository) FetchByKey(ctx context.Context, key string) (*domain.Type, error) {
	return r.fetchOne(ctx, r.q.selectByKey, key)
}

func (r *Repository) Insert(ctx context.Context, req *domain.Type) (*domain.Type, error) {
	t, err := scanType(r.db.QueryRow(ctx, r.q.insert, req.Name, req.Description))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, entity.ErrDuplicateName
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) Update(ctx context.Context, req *domain.Type) (*domain.Type, error) {
	t, err := scanType(r.db.QueryRow(ctx, r.q.update, req.Name, req.Description, req.UUID))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, entity.ErrDuplicateName
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, r.q.delete, id)
	return err
}

func (r *Repository) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Type, error) {
	return r.fetchOne(ctx, r.q.toggleActive, id)
}

func (r *Repository) ToggleDeleted(ctx context.Context, id uuid.UUID) (*domain.Type, error) {
	return r.fetchOne(ctx, r.q.toggleDelete, id)
}
