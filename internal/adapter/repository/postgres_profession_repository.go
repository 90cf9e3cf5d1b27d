package repository

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresProfessionRepository struct {
	db *database.DB
}

func NewPostgresProfessionRepository(db *database.DB) *PostgresProfessionRepository {
	return &PostgresProfessionRepository{db: db}
}

func (r *PostgresProfessionRepository) Create(ctx context.Context, profession *entity.Profession) error {
	query, args, err := r.db.Builder.
		Insert("profesiones").
		Columns("nombre").
		Values(profession.Nombre).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&profession.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A profession with this name already exists", err)
		}
		return errors.Internal("Failed to create profession", err)
	}

	return nil
}

func (r *PostgresProfessionRepository) GetByID(ctx context.Context, id int64) (*entity.Profession, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("profesiones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var profession entity.Profession
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&profession); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Profession", err)
		}
		return nil, errors.Internal("Failed to get profession", err)
	}

	return &profession, nil
}

func (r *PostgresProfessionRepository) List(ctx context.Context) ([]*entity.Profession, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("profesiones").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	professions := []*entity.Profession{}
	if err := r.db.SelectContext(ctx, &professions, query, args...); err != nil {
		return nil, errors.Internal("Failed to list professions", err)
	}

	return professions, nil
}

func (r *PostgresProfessionRepository) Update(ctx context.Context, profession *entity.Profession) error {
	query, args, err := r.db.Builder.
		Update("profesiones").
		Set("nombre", profession.Nombre).
		Where("id = ?", profession.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A profession with this name already exists", err)
		}
		return errors.Internal("Failed to update profession", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Profession", nil)
	}

	return nil
}

func (r *PostgresProfessionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("profesiones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("Profession is in use and cannot be deleted", err)
		}
		return errors.Internal("Failed to delete profession", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Profession", nil)
	}

	return nil
}
