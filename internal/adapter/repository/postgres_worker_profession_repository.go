package repository

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresWorkerProfessionRepository struct {
	db *database.DB
}

func NewPostgresWorkerProfessionRepository(db *database.DB) *PostgresWorkerProfessionRepository {
	return &PostgresWorkerProfessionRepository{db: db}
}

func (r *PostgresWorkerProfessionRepository) Create(ctx context.Context, grant *entity.WorkerProfession) error {
	query, args, err := r.db.Builder.
		Insert("trabajadores_profesiones").
		Columns("id_trabajador", "id_profesion", "matricula").
		Values(grant.WorkerID, grant.ProfessionID, grant.Matricula).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&grant.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("Worker already holds this profession", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced worker or profession does not exist", err)
		}
		return errors.Internal("Failed to create worker profession", err)
	}

	return nil
}

func (r *PostgresWorkerProfessionRepository) GetByID(ctx context.Context, id int64) (*entity.WorkerProfession, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("trabajadores_profesiones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var grant entity.WorkerProfession
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&grant); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Worker profession", err)
		}
		return nil, errors.Internal("Failed to get worker profession", err)
	}

	return &grant, nil
}

func (r *PostgresWorkerProfessionRepository) List(ctx context.Context, filter repository.WorkerProfessionFilter) ([]*entity.WorkerProfession, error) {
	builder := r.db.Builder.
		Select("*").
		From("trabajadores_profesiones").
		OrderBy("id ASC")

	if filter.WorkerID != nil {
		builder = builder.Where("id_trabajador = ?", *filter.WorkerID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	grants := []*entity.WorkerProfession{}
	if err := r.db.SelectContext(ctx, &grants, query, args...); err != nil {
		return nil, errors.Internal("Failed to list worker professions", err)
	}

	return grants, nil
}

func (r *PostgresWorkerProfessionRepository) Update(ctx context.Context, grant *entity.WorkerProfession) error {
	query, args, err := r.db.Builder.
		Update("trabajadores_profesiones").
		SetMap(map[string]interface{}{
			"id_trabajador": grant.WorkerID,
			"id_profesion":  grant.ProfessionID,
			"matricula":     grant.Matricula,
		}).
		Where("id = ?", grant.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("Worker already holds this profession", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced worker or profession does not exist", err)
		}
		return errors.Internal("Failed to update worker profession", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Worker profession", nil)
	}

	return nil
}

func (r *PostgresWorkerProfessionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("trabajadores_profesiones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Internal("Failed to delete worker profession", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Worker profession", nil)
	}

	return nil
}
