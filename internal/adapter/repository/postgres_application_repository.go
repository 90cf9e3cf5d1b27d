package repository

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresApplicationRepository struct {
	db *database.DB
}

func NewPostgresApplicationRepository(db *database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, application *entity.Application) error {
	query, args, err := r.db.Builder.
		Insert("postulaciones").
		Columns("id_trabajo", "id_trabajador").
		Values(application.JobID, application.WorkerID).
		Suffix("RETURNING id, fecha_postulacion").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&application.ID, &application.FechaPostulacion); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("Worker has already applied to this job", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced job or worker does not exist", err)
		}
		return errors.Internal("Failed to create application", err)
	}

	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (*entity.Application, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("postulaciones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var application entity.Application
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&application); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Application", err)
		}
		return nil, errors.Internal("Failed to get application", err)
	}

	return &application, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, filter repository.ApplicationFilter) ([]*entity.Application, error) {
	builder := r.db.Builder.
		Select("*").
		From("postulaciones").
		OrderBy("fecha_postulacion DESC")

	if filter.JobID != nil {
		builder = builder.Where("id_trabajo = ?", *filter.JobID)
	}
	if filter.WorkerID != nil {
		builder = builder.Where("id_trabajador = ?", *filter.WorkerID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	applications := []*entity.Application{}
	if err := r.db.SelectContext(ctx, &applications, query, args...); err != nil {
		return nil, errors.Internal("Failed to list applications", err)
	}

	return applications, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("postulaciones").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Internal("Failed to delete application", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Application", nil)
	}

	return nil
}
