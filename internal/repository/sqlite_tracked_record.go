package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/domain"
)

// SQLiteTrackedRecordRepo implements TrackedRecordRepo using a SQLite database.
type SQLiteTrackedRecordRepo struct {
	db db.DBTX
}

func NewSQLiteTrackedRecordRepo(db db.DBTX) *SQLiteTrackedRecordRepo {
	return &SQLiteTrackedRecordRepo{db: db}
}

const trackedColumns = `id, kind, name, reference, target_date, notes, created_at, updated_at`

func (r *SQLiteTrackedRecordRepo) Create(ctx context.Context, rec *domain.TrackedRecord) error {
	query := `INSERT INTO tracked_records (` + trackedColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Kind),
		rec.Name,
		rec.Reference,
		nullableTimeToString(rec.TargetDate, dateLayout),
		rec.Notes,
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracked record: %w", err)
	}
	return nil
}

func (r *SQLiteTrackedRecordRepo) GetByID(ctx context.Context, id string) (*domain.TrackedRecord, error) {
	query := `SELECT ` + trackedColumns + ` FROM tracked_records WHERE id = ?`
	rec, err := scanTrackedRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tracked record %s: %w", id, ErrNotFound)
	}
	return rec, err
}

func (r *SQLiteTrackedRecordRepo) List(ctx context.Context, kind domain.RecordKind) ([]*domain.TrackedRecord, error) {
	query := `SELECT ` + trackedColumns + ` FROM tracked_records`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY target_date IS NULL, target_date, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tracked records: %w", err)
	}
	defer rows.Close()

	var out []*domain.TrackedRecord
	for rows.Next() {
		rec, err := scanTrackedRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracked records: %w", err)
	}
	return out, nil
}

func (r *SQLiteTrackedRecordRepo) Update(ctx context.Context, rec *domain.TrackedRecord) error {
	query := `UPDATE tracked_records
		SET kind = ?, name = ?, reference = ?, target_date = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(rec.Kind),
		rec.Name,
		rec.Reference,
		nullableTimeToString(rec.TargetDate, dateLayout),
		rec.Notes,
		nowUTC(),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tracked record: %w", err)
	}
	return requireAffected(res, "tracked record "+rec.ID)
}

func (r *SQLiteTrackedRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tracked_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tracked record: %w", err)
	}
	return requireAffected(res, "tracked record "+id)
}

func scanTrackedRecord(s rowScanner) (*domain.TrackedRecord, error) {
	var rec domain.TrackedRecord
	var kind, createdAt, updatedAt string
	var target sql.NullString

	if err := s.Scan(&rec.ID, &kind, &rec.Name, &rec.Reference, &target, &rec.Notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning tracked record: %w", err)
	}

	rec.Kind = domain.RecordKind(kind)
	rec.TargetDate = parseNullableTime(target, dateLayout)

	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}
