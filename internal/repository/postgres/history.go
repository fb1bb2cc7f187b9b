package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// historySpec maps an append-only report type onto its table. Tables carry
// id, owner and created_at besides the data columns.
type historySpec[T any] struct {
	table   string
	columns []string
	values  func(item *T) ([]any, error)
	// scan reads id, the data columns, then created_at.
	scan  func(s scanner) (T, error)
	setID func(item *T, id string)
	setAt func(item *T, at sql.NullTime)
}

type history[T any] struct {
	db      *sql.DB
	spec    historySpec[T]
	qInsert string
	qList   string
}

func newHistory[T any](db *sql.DB, spec historySpec[T]) history[T] {
	args := make([]string, len(spec.columns))
	for i := range spec.columns {
		args[i] = fmt.Sprintf("$%d", i+2)
	}
	cols := strings.Join(spec.columns, ", ")

	return history[T]{
		db:   db,
		spec: spec,
		qInsert: fmt.Sprintf(`INSERT INTO %s (owner, %s) VALUES ($1, %s) RETURNING id, created_at`,
			spec.table, cols, strings.Join(args, ", ")),
		qList: fmt.Sprintf(`SELECT id, %s, created_at FROM %s WHERE owner = $1 ORDER BY created_at DESC, id DESC`,
			cols, spec.table),
	}
}

func (h history[T]) Create(ctx context.Context, owner string, item *T) (*T, error) {
	vals, err := h.spec.values(item)
	if err != nil {
		return nil, err
	}
	var (
		id int64
		at sql.NullTime
	)
	if err := h.db.QueryRowContext(ctx, h.qInsert, append([]any{owner}, vals...)...).Scan(&id, &at); err != nil {
		return nil, err
	}
	out := *item
	h.spec.setID(&out, formatID(id))
	h.spec.setAt(&out, at)
	return &out, nil
}

func (h history[T]) List(ctx context.Context, owner string) ([]T, error) {
	rows, err := h.db.QueryContext(ctx, h.qList, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := h.spec.scan(rows)
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

// ATSReportPostgres stores ATS analysis history.
type ATSReportPostgres struct {
	history[model.ATSReport]
}

func NewATSReportPostgres(db *sql.DB) *ATSReportPostgres {
	return &ATSReportPostgres{newHistory(db, historySpec[model.ATSReport]{
		table:   "ats_reports",
		columns: []string{"total", "label", "categories", "matched_keywords", "missing_keywords", "suggestions"},
		values: func(r *model.ATSReport) ([]any, error) {
			cats, err := jsonValue(r.Categories)
			if err != nil {
				return nil, err
			}
			matched, err := jsonValue(strs(r.MatchedKeywords))
			if err != nil {
				return nil, err
			}
			missing, err := jsonValue(strs(r.MissingKeywords))
			if err != nil {
				return nil, err
			}
			sugg, err := jsonValue(strs(r.Suggestions))
			if err != nil {
				return nil, err
			}
			return []any{r.Total, r.Label, cats, matched, missing, sugg}, nil
		},
		scan: func(s scanner) (model.ATSReport, error) {
			var (
				r                            model.ATSReport
				id                           int64
				cats, matched, missing, sugg []byte
			)
			if err := s.Scan(&id, &r.Total, &r.Label, &cats, &matched, &missing, &sugg, &r.CreatedAt); err != nil {
				return r, err
			}
			r.ID = formatID(id)
			for _, col := range []struct {
				raw []byte
				dst any
			}{{cats, &r.Categories}, {matched, &r.MatchedKeywords}, {missing, &r.MissingKeywords}, {sugg, &r.Suggestions}} {
				if err := jsonScan(col.raw, col.dst); err != nil {
					return r, err
				}
			}
			return r, nil
		},
		setID: func(r *model.ATSReport, id string) { r.ID = id },
		setAt: func(r *model.ATSReport, at sql.NullTime) { r.CreatedAt = at.Time },
	})}
}

// ScoreReportPostgres stores resume score history.
type ScoreReportPostgres struct {
	history[model.ScoreReport]
}

func NewScoreReportPostgres(db *sql.DB) *ScoreReportPostgres {
	return &ScoreReportPostgres{newHistory(db, historySpec[model.ScoreReport]{
		table:   "score_reports",
		columns: []string{"total", "label", "categories", "suggestions"},
		values: func(r *model.ScoreReport) ([]any, error) {
			cats, err := jsonValue(r.Categories)
			if err != nil {
				return nil, err
			}
			sugg, err := jsonValue(strs(r.Suggestions))
			if err != nil {
				return nil, err
			}
			return []any{r.Total, r.Label, cats, sugg}, nil
		},
		scan: func(s scanner) (model.ScoreReport, error) {
			var (
				r          model.ScoreReport
				id         int64
				cats, sugg []byte
			)
			if err := s.Scan(&id, &r.Total, &r.Label, &cats, &sugg, &r.CreatedAt); err != nil {
				return r, err
			}
			r.ID = formatID(id)
			if err := jsonScan(cats, &r.Categories); err != nil {
				return r, err
			}
			return r, jsonScan(sugg, &r.Suggestions)
		},
		setID: func(r *model.ScoreReport, id string) { r.ID = id },
		setAt: func(r *model.ScoreReport, at sql.NullTime) { r.CreatedAt = at.Time },
	})}
}

// AssessmentPostgres stores graded assessments.
type AssessmentPostgres struct {
	history[model.AssessmentResult]
}

func NewAssessmentPostgres(db *sql.DB) *AssessmentPostgres {
	return &AssessmentPostgres{newHistory(db, historySpec[model.AssessmentResult]{
		table:   "assessment_results",
		columns: []string{"category", "correct", "total", "score", "label"},
		values: func(r *model.AssessmentResult) ([]any, error) {
			return []any{r.Category, r.Correct, r.Total, r.Score, r.Label}, nil
		},
		scan: func(s scanner) (model.AssessmentResult, error) {
			var (
				r  model.AssessmentResult
				id int64
			)
			err := s.Scan(&id, &r.Category, &r.Correct, &r.Total, &r.Score, &r.Label, &r.CreatedAt)
			r.ID = formatID(id)
			return r, err
		},
		setID: func(r *model.AssessmentResult, id string) { r.ID = id },
		setAt: func(r *model.AssessmentResult, at sql.NullTime) { r.CreatedAt = at.Time },
	})}
}

var (
	_ repository.ATSReportRepository   = (*ATSReportPostgres)(nil)
	_ repository.ScoreReportRepository = (*ScoreReportPostgres)(nil)
	_ repository.AssessmentRepository  = (*AssessmentPostgres)(nil)
)
