package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// LinkPostgres stores shareable resume links.
type LinkPostgres struct {
	db *sql.DB
}

func NewLinkPostgres(db *sql.DB) *LinkPostgres {
	return &LinkPostgres{db: db}
}

var _ repository.LinkRepository = (*LinkPostgres)(nil)

const linkColumns = `id, path, template, active, expires_at, views, password_hash, created_at`

func scanLink(s scanner, extra ...any) (*model.ResumeLink, error) {
	var (
		l       model.ResumeLink
		id      int64
		expires sql.NullTime
	)
	dest := []any{&id, &l.Path, &l.Template, &l.Active, &expires, &l.Views, &l.PasswordHash, &l.CreatedAt}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	l.ID = formatID(id)
	if expires.Valid {
		t := expires.Time
		l.ExpiresAt = &t
	}
	l.PasswordProtected = l.PasswordHash != ""
	return &l, nil
}

func (r *LinkPostgres) Create(ctx context.Context, owner string, link *model.ResumeLink) (*model.ResumeLink, error) {
	const q = `
		INSERT INTO resume_links (owner, path, template, active, expires_at, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + linkColumns

	var expires sql.NullTime
	if link.ExpiresAt != nil {
		expires = sql.NullTime{Time: *link.ExpiresAt, Valid: true}
	}
	stored, err := scanLink(r.db.QueryRowContext(ctx, q,
		owner,
		link.Path,
		link.Template,
		link.Active,
		expires,
		link.PasswordHash,
	))
	if err != nil {
		return nil, conflict(err)
	}
	return stored, nil
}

const uniqueViolation = "23505"

func conflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrConflict
	}
	return err
}

func (r *LinkPostgres) List(ctx context.Context, owner string) ([]model.ResumeLink, error) {
	const q = `SELECT ` + linkColumns + ` FROM resume_links WHERE owner = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ResumeLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *LinkPostgres) Delete(ctx context.Context, owner string, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM resume_links WHERE owner = $1 AND id = $2`, owner, id)
}

func (r *LinkPostgres) FindByPath(ctx context.Context, path string) (*model.ResumeLink, string, error) {
	const q = `SELECT ` + linkColumns + `, owner FROM resume_links WHERE lower(path) = lower($1)`
	var owner string
	l, err := scanLink(r.db.QueryRowContext(ctx, q, path), &owner)
	if err != nil {
		return nil, "", err
	}
	return l, owner, nil
}

func (r *LinkPostgres) PathExists(ctx context.Context, path string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM resume_links WHERE lower(path) = lower($1))`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, path).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LinkPostgres) IncrementViews(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `UPDATE resume_links SET views = views + 1 WHERE id = $1`, id)
}
