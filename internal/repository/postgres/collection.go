package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type scanner interface {
	Scan(dest ...any) error
}

// tableSpec maps one section record type onto its table. Every table has
// id BIGSERIAL and owner TEXT columns in addition to the listed data columns.
type tableSpec[T any] struct {
	table   string
	columns []string
	// values returns the data column values in column order.
	values func(item *T) ([]any, error)
	// scan reads id followed by the data columns.
	scan  func(s scanner) (T, error)
	getID func(item *T) string
	setID func(item *T, id string)
}

// collection implements repository.Collection for any tableSpec.
type collection[T any] struct {
	db   *sql.DB
	spec tableSpec[T]

	qList      string
	qGet       string
	qInsert    string
	qUpdate    string
	qDelete    string
	qDeleteAll string
}

func newCollection[T any](db *sql.DB, spec tableSpec[T]) collection[T] {
	cols := strings.Join(spec.columns, ", ")

	insertArgs := make([]string, len(spec.columns))
	sets := make([]string, len(spec.columns))
	for i, c := range spec.columns {
		insertArgs[i] = fmt.Sprintf("$%d", i+2)
		sets[i] = fmt.Sprintf("%s = $%d", c, i+3)
	}

	return collection[T]{
		db:   db,
		spec: spec,
		qList: fmt.Sprintf(`SELECT id, %s FROM %s WHERE owner = $1 ORDER BY id`,
			cols, spec.table),
		qGet: fmt.Sprintf(`SELECT id, %s FROM %s WHERE owner = $1 AND id = $2`,
			cols, spec.table),
		qInsert: fmt.Sprintf(`INSERT INTO %s (owner, %s) VALUES ($1, %s) RETURNING id`,
			spec.table, cols, strings.Join(insertArgs, ", ")),
		qUpdate: fmt.Sprintf(`UPDATE %s SET %s WHERE owner = $1 AND id = $2`,
			spec.table, strings.Join(sets, ", ")),
		qDelete:    fmt.Sprintf(`DELETE FROM %s WHERE owner = $1 AND id = $2`, spec.table),
		qDeleteAll: fmt.Sprintf(`DELETE FROM %s WHERE owner = $1`, spec.table),
	}
}

func (c collection[T]) Get(ctx context.Context, owner string, id int64) (*T, error) {
	out, err := c.spec.scan(c.db.QueryRowContext(ctx, c.qGet, owner, id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c collection[T]) List(ctx context.Context, owner string) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, c.qList, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := c.spec.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (c collection[T]) insert(ctx context.Context, q queryer, owner string, item *T) (*T, error) {
	vals, err := c.spec.values(item)
	if err != nil {
		return nil, err
	}
	args := append([]any{owner}, vals...)

	var id int64
	if err := q.QueryRowContext(ctx, c.qInsert, args...).Scan(&id); err != nil {
		return nil, err
	}
	out := *item
	c.spec.setID(&out, strconv.FormatInt(id, 10))
	return &out, nil
}

func (c collection[T]) Create(ctx context.Context, owner string, item *T) (*T, error) {
	return c.insert(ctx, c.db, owner, item)
}

func (c collection[T]) UpdateBatch(ctx context.Context, owner string, items []T) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i := range items {
		id, err := parseID(c.spec.getID(&items[i]))
		if err != nil {
			return err
		}
		vals, err := c.spec.values(&items[i])
		if err != nil {
			return err
		}
		args := append([]any{owner, id}, vals...)

		res, err := tx.ExecContext(ctx, c.qUpdate, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}

func (c collection[T]) Delete(ctx context.Context, owner string, id int64) error {
	return execOne(ctx, c.db, c.qDelete, owner, id)
}

func (c collection[T]) ReplaceAll(ctx context.Context, owner string, items []T) ([]T, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, c.qDeleteAll, owner); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i := range items {
		stored, err := c.insert(ctx, tx, owner, &items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *stored)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, db execer, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// parseID treats ids that cannot name a row as missing rows.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("id %q: %w", id, sql.ErrNoRows)
	}
	return n, nil
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func jsonValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return b, nil
}

func jsonScan(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}

// strs keeps JSONB list columns as [] rather than null.
func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
