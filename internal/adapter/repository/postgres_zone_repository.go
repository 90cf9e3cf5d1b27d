package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"reparex/internal/domain/entity"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
	"reparex/pkg/logger"
)

type PostgresZoneRepository struct {
	db *database.DB
}

func NewPostgresZoneRepository(db *database.DB) *PostgresZoneRepository {
	return &PostgresZoneRepository{db: db}
}

// resolveZone performs the atomic lookup-or-create on the unique
// (calle, ciudad, provincia) tuple. The do-update clause is a no-op write so
// RETURNING always yields the id, whether the row existed or not. It runs
// against either the pool or an open transaction.
func resolveZone(ctx context.Context, ext sqlx.ExtContext, db *database.DB, zone *entity.Zone) error {
	query, args, err := db.Builder.
		Insert("zonas_geograficas").
		Columns("calle", "ciudad", "provincia").
		Values(zone.Calle, zone.Ciudad, zone.Provincia).
		Suffix("ON CONFLICT (calle, ciudad, provincia) DO UPDATE SET calle = EXCLUDED.calle RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := ext.QueryRowxContext(ctx, query, args...).Scan(&zone.ID); err != nil {
		logger.Warn("zone resolve failed: %v", err)
		return errors.Internal("Failed to resolve zone", err)
	}

	return nil
}

func (r *PostgresZoneRepository) Create(ctx context.Context, zone *entity.Zone) error {
	return resolveZone(ctx, r.db, r.db, zone)
}

func (r *PostgresZoneRepository) GetByID(ctx context.Context, id int64) (*entity.Zone, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("zonas_geograficas").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var zone entity.Zone
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&zone); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Zone", err)
		}
		return nil, errors.Internal("Failed to get zone", err)
	}

	return &zone, nil
}

func (r *PostgresZoneRepository) List(ctx context.Context) ([]*entity.Zone, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("zonas_geograficas").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	zones := []*entity.Zone{}
	if err := r.db.SelectContext(ctx, &zones, query, args...); err != nil {
		return nil, errors.Internal("Failed to list zones", err)
	}

	return zones, nil
}

func (r *PostgresZoneRepository) Update(ctx context.Context, zone *entity.Zone) error {
	query, args, err := r.db.Builder.
		Update("zonas_geograficas").
		SetMap(map[string]interface{}{
			"calle":     zone.Calle,
			"ciudad":    zone.Ciudad,
			"provincia": zone.Provincia,
		}).
		Where("id = ?", zone.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A zone with this address already exists", err)
		}
		return errors.Internal("Failed to update zone", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Zone", nil)
	}

	return nil
}

func (r *PostgresZoneRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("zonas_geograficas").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("Zone is in use and cannot be deleted", err)
		}
		return errors.Internal("Failed to delete zone", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Zone", nil)
	}

	return nil
}
