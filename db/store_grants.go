package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/grantrx/grantrx/db/tables"
	"go.uber.org/zap"
)

var grantColumns = []string{
	"id",
	"user_id",
	"application_id",
	"code",
	"access_token",
	"refresh_token",
	"access_token_expires_at",
	"permissions",
	"created_at",
	"updated_at",
}

// GrantByID fetches a single grant row by its primary key
func (d *DataStore) GrantByID(ctx context.Context, id int) (*tables.GrantTable, error) {
	q := sq.
		Select(grantColumns...).
		From("grants").
		Where(sq.Eq{"id": id})
	var table tables.GrantTable
	err := d.getStatement(ctx, &table, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// GrantByUserAndApplication fetches the single grant of a (user, application) pair
func (d *DataStore) GrantByUserAndApplication(
	ctx context.Context,
	userID uuid.UUID,
	applicationID int,
) (*tables.GrantTable, error) {
	q := sq.
		Select(grantColumns...).
		From("grants").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"application_id": applicationID},
		})
	var table tables.GrantTable
	err := d.getStatement(ctx, &table, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// Grants lists grant rows page-wise for the cli
func (d *DataStore) Grants(
	ctx context.Context,
	opts ListOptions,
) ([]*tables.GrantTable, int, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	var c int
	err := sq.Select("COUNT(*)").From("grants").RunWith(d.db).Scan(&c)
	if err != nil {
		return nil, 0, err
	}
	offset := (opts.Page - 1) * opts.PageSize
	if c < int(offset) {
		return []*tables.GrantTable{}, c, nil
	}

	var entities []*tables.GrantTable
	q := sq.
		Select(grantColumns...).
		From("grants").
		OrderBy("id DESC").Offset(uint64(offset)).Limit(uint64(opts.PageSize))
	err = d.selectStatement(ctx, &entities, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	return entities, c, nil
}

// InsertGrant creates the grant row for a (user, application) pair without
// any tokens yet, the caller rotates tokens in afterwards. A second insert
// for the same pair loses against the unique index and gets ErrAlreadyExists.
func (d *DataStore) InsertGrant(
	ctx context.Context,
	userID uuid.UUID,
	applicationID int,
	permissions tables.MapStructure,
) (int, error) {
	m := map[string]interface{}{
		"user_id":        userID,
		"application_id": applicationID,
		"permissions":    permissions,
		"created_at":     time.Now().UTC(),
	}
	insert := sq.Insert("grants").SetMap(m)
	insert = insert.Suffix("RETURNING id")
	var id int
	err := d.returningInsertStatement(ctx, &id, insert, nil)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyExists
		}
		d.log.Error("could not insert grant", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// UpdateGrantTokens writes a freshly rotated token triple. The unique
// indexes on code, access_token and refresh_token reject colliding
// values, surfaced as ErrAlreadyExists so the engine can regenerate.
func (d *DataStore) UpdateGrantTokens(
	ctx context.Context,
	id int,
	code string,
	accessToken string,
	refreshToken string,
	expiresAt *time.Time,
) error {
	q := sq.Update("grants").
		Set("code", code).
		Set("access_token", accessToken).
		Set("refresh_token", refreshToken).
		Set("access_token_expires_at", expiresAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	rs, err := d.updateStatement(ctx, q, nil)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		d.log.Error("could not update grant tokens", zap.Error(err))
		return err
	}
	affected, err := rs.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateGrantPermissions replaces the permission map of a grant
func (d *DataStore) UpdateGrantPermissions(
	ctx context.Context,
	id int,
	permissions tables.MapStructure,
) error {
	q := sq.Update("grants").
		Set("permissions", permissions).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	rs, err := d.updateStatement(ctx, q, nil)
	if err != nil {
		d.log.Error("could not update grant permissions", zap.Error(err))
		return err
	}
	affected, err := rs.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
