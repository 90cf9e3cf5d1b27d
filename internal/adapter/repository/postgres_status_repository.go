package repository

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresStatusRepository struct {
	db *database.DB
}

func NewPostgresStatusRepository(db *database.DB) *PostgresStatusRepository {
	return &PostgresStatusRepository{db: db}
}

func (r *PostgresStatusRepository) Create(ctx context.Context, status *entity.Status) error {
	query, args, err := r.db.Builder.
		Insert("estados").
		Columns("descripcion").
		Values(status.Descripcion).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&status.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A status with this description already exists", err)
		}
		return errors.Internal("Failed to create status", err)
	}

	return nil
}

func (r *PostgresStatusRepository) GetByID(ctx context.Context, id int64) (*entity.Status, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("estados").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var status entity.Status
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&status); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Status", err)
		}
		return nil, errors.Internal("Failed to get status", err)
	}

	return &status, nil
}

func (r *PostgresStatusRepository) GetByDescription(ctx context.Context, descripcion string) (*entity.Status, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("estados").
		Where("descripcion = ?", descripcion).
		ToSql()
	if err != nil {
		return nil, err
	}

	var status entity.Status
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&status); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Status", err)
		}
		return nil, errors.Internal("Failed to get status", err)
	}

	return &status, nil
}

func (r *PostgresStatusRepository) List(ctx context.Context) ([]*entity.Status, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("estados").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	statuses := []*entity.Status{}
	if err := r.db.SelectContext(ctx, &statuses, query, args...); err != nil {
		return nil, errors.Internal("Failed to list statuses", err)
	}

	return statuses, nil
}

func (r *PostgresStatusRepository) Update(ctx context.Context, status *entity.Status) error {
	query, args, err := r.db.Builder.
		Update("estados").
		Set("descripcion", status.Descripcion).
		Where("id = ?", status.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A status with this description already exists", err)
		}
		return errors.Internal("Failed to update status", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Status", nil)
	}

	return nil
}

func (r *PostgresStatusRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("estados").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("Status is in use and cannot be deleted", err)
		}
		return errors.Internal("Failed to delete status", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Status", nil)
	}

	return nil
}
