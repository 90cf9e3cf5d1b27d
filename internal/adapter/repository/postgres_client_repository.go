package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresClientRepository struct {
	db *database.DB
}

func NewPostgresClientRepository(db *database.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

func (r *PostgresClientRepository) insert(ctx context.Context, ext sqlx.ExtContext, client *entity.Client) error {
	query, args, err := r.db.Builder.
		Insert("contratadores").
		Columns("id_zona_geografica", "nombre", "apellido", "email", "telefono", "dni", "uid_firebase").
		Values(client.ZoneID, client.Nombre, client.Apellido, client.Email, client.Telefono, client.DNI, client.FirebaseUID).
		Suffix("RETURNING id, fecha_creacion").
		ToSql()
	if err != nil {
		return err
	}

	if err := ext.QueryRowxContext(ctx, query, args...).Scan(&client.ID, &client.FechaCreacion); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A client is already registered for this identity", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced zone does not exist", err)
		}
		return errors.Internal("Failed to create client", err)
	}

	return nil
}

func (r *PostgresClientRepository) Create(ctx context.Context, client *entity.Client, inlineZone *entity.Zone) error {
	if inlineZone == nil {
		return r.insert(ctx, r.db, client)
	}

	// Zone resolution and client insert are one atomic unit; a failed
	// insert rolls the zone creation back too.
	return r.db.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := resolveZone(ctx, tx, r.db, inlineZone); err != nil {
			return err
		}
		client.ZoneID = &inlineZone.ID
		return r.insert(ctx, tx, client)
	})
}

func (r *PostgresClientRepository) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("contratadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var client entity.Client
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&client); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Client", err)
		}
		return nil, errors.Internal("Failed to get client", err)
	}

	return &client, nil
}

func (r *PostgresClientRepository) GetByFirebaseUID(ctx context.Context, uid string) (*entity.Client, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("contratadores").
		Where("uid_firebase = ?", uid).
		ToSql()
	if err != nil {
		return nil, err
	}

	var client entity.Client
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&client); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Client", err)
		}
		return nil, errors.Internal("Failed to get client", err)
	}

	return &client, nil
}

func (r *PostgresClientRepository) List(ctx context.Context, filter repository.ClientFilter) ([]*entity.Client, error) {
	builder := r.db.Builder.
		Select("*").
		From("contratadores").
		OrderBy("fecha_creacion DESC")

	if filter.FirebaseUID != nil {
		builder = builder.Where("uid_firebase = ?", *filter.FirebaseUID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	clients := []*entity.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, errors.Internal("Failed to list clients", err)
	}

	return clients, nil
}

func (r *PostgresClientRepository) Update(ctx context.Context, client *entity.Client) error {
	query, args, err := r.db.Builder.
		Update("contratadores").
		SetMap(map[string]interface{}{
			"id_zona_geografica": client.ZoneID,
			"nombre":             client.Nombre,
			"apellido":           client.Apellido,
			"email":              client.Email,
			"telefono":           client.Telefono,
			"dni":                client.DNI,
			"uid_firebase":       client.FirebaseUID,
		}).
		Where("id = ?", client.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("A client is already registered for this identity", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced zone does not exist", err)
		}
		return errors.Internal("Failed to update client", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Client", nil)
	}

	return nil
}

func (r *PostgresClientRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("contratadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Internal("Failed to delete client", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Client", nil)
	}

	return nil
}
