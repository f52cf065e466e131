package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/grantrx/grantrx/db/tables"
	"go.uber.org/zap"
)

var applicationColumns = []string{
	"id",
	"client_id",
	"client_secret",
	"name",
	"created_at",
	"updated_at",
}

// ApplicationByID fetches a client application by its internal id
func (d *DataStore) ApplicationByID(ctx context.Context, id int) (*tables.ApplicationTable, error) {
	q := sq.
		Select(applicationColumns...).
		From("applications").
		Where(sq.Eq{"id": id})
	var table tables.ApplicationTable
	err := d.getStatement(ctx, &table, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// ApplicationByClientID fetches a client application by its public client_id
func (d *DataStore) ApplicationByClientID(
	ctx context.Context,
	clientID string,
) (*tables.ApplicationTable, error) {
	q := sq.
		Select(applicationColumns...).
		From("applications").
		Where(sq.Eq{"client_id": clientID})
	var table tables.ApplicationTable
	err := d.getStatement(ctx, &table, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// Applications lists applications page-wise for the cli
func (d *DataStore) Applications(
	ctx context.Context,
	opts ListOptions,
) ([]*tables.ApplicationTable, int, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	var c int
	err := sq.Select("COUNT(*)").From("applications").RunWith(d.db).Scan(&c)
	if err != nil {
		return nil, 0, err
	}
	offset := (opts.Page - 1) * opts.PageSize
	if c < int(offset) {
		return []*tables.ApplicationTable{}, c, nil
	}
	var entities []*tables.ApplicationTable
	q := sq.
		Select(applicationColumns...).
		From("applications").
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

// CreateApplication registers a new client application
func (d *DataStore) CreateApplication(ctx context.Context,
	clientID string,
	clientSecret *string,
	name string) (int, error) {
	m := map[string]interface{}{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"name":          name,
		"created_at":    time.Now().UTC(),
	}
	insert := sq.Insert("applications").SetMap(m)
	insert = insert.Suffix("RETURNING id")
	var id int
	err := d.returningInsertStatement(ctx, &id, insert, nil)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyExists
		}
		d.log.Error("could not insert app", zap.Error(err))
		return 0, err
	}
	return id, nil
}
