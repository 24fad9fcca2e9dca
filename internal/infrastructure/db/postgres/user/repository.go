package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"assignly-api/internal/domain/entity"
	domain "assignly-api/internal/domain/user"
	"assignly-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.UUID,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.Phone,

		&u.Active,
		&u.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]*domain.User, error) {
	return r.fetchMany(ctx, SelectUsers)
}

func (r *Repository) FetchByName(ctx context.Context, name string) ([]*domain.User, error) {
	return r.fetchMany(ctx, SelectUsersByName, name)
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, id)
}

func (r *Repository) FetchByKey(ctx context.Context, key string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByEmailKey, key)
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) Insert(ctx context.Context, req *domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.FirstName, toDBMiddleName(req), req.LastName, req.Email, req.PasswordHash, req.BirthDate, req.Phone,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, entity.ErrDuplicateEmail
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Update(ctx context.Context, req *domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserByUUID,
		req.FirstName, toDBMiddleName(req), req.LastName, req.Email, req.PasswordHash, req.BirthDate, req.Phone, req.UUID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, entity.ErrDuplicateEmail
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteUserByUUID, id)
	return err
}

func (r *Repository) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, ToggleUserActive, id)
}

func (r *Repository) ToggleDeleted(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, ToggleUserDeleted, id)
}
