package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"joblabel-engine/internal/domain"
)

// InsertIfNew writes one labeled record keyed by its record_id.
// Re-running a batch over an existing corpus is a no-op per record.
func InsertIfNew(ctx context.Context, db *sql.DB, rec domain.AnnotatedRecord) (added bool, err error) {
	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO annotations(
  record_id, title, company, description, source,
  experience_level, experience_confidence,
  job_category, category_confidence,
  education_requirement, education_confidence,
  remote_status, remote_confidence,
  created_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		rec.ID,
		rec.Title,
		rec.Company,
		rec.Description,
		string(rec.Source),
		rec.Experience.Label,
		rec.Experience.Confidence,
		rec.Category.Label,
		rec.Category.Confidence,
		rec.Education.Label,
		rec.Education.Confidence,
		rec.Remote.Label,
		rec.Remote.Confidence,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert annotation: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return false, nil
}

type ListOpts struct {
	Experience string // filter, empty = any
	Category   string
	Limit      uint64
}

// ListAnnotated reads labeled records back in insertion order.
func ListAnnotated(ctx context.Context, db *sql.DB, opts ListOpts) ([]domain.AnnotatedRecord, error) {
	q := sq.Select(
		"record_id", "title", "company", "description", "source",
		"experience_level", "experience_confidence",
		"job_category", "category_confidence",
		"education_requirement", "education_confidence",
		"remote_status", "remote_confidence",
	).From("annotations").OrderBy("id ASC")

	if opts.Experience != "" {
		q = q.Where(sq.Eq{"experience_level": opts.Experience})
	}
	if opts.Category != "" {
		q = q.Where(sq.Eq{"job_category": opts.Category})
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	var out []domain.AnnotatedRecord
	for rows.Next() {
		var rec domain.AnnotatedRecord
		var source string
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Company, &rec.Description, &source,
			&rec.Experience.Label, &rec.Experience.Confidence,
			&rec.Category.Label, &rec.Category.Confidence,
			&rec.Education.Label, &rec.Education.Confidence,
			&rec.Remote.Label, &rec.Remote.Confidence,
		); err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		rec.Source = domain.Source(source)
		out = append(out, rec)
	}
	return out, rows.Err()
}
