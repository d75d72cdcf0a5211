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

// SQLiteChecklistRepo implements ChecklistRepo using a SQLite database.
type SQLiteChecklistRepo struct {
	db db.DBTX
}

func NewSQLiteChecklistRepo(db db.DBTX) *SQLiteChecklistRepo {
	return &SQLiteChecklistRepo{db: db}
}

const checklistColumns = `id, equipment_id, check_date, frequency, passed, inspector, notes, created_at`

func (r *SQLiteChecklistRepo) Create(ctx context.Context, c *domain.Checklist) error {
	query := `INSERT INTO checklists (` + checklistColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.EquipmentID,
		c.CheckDate.Format(dateLayout),
		string(c.Frequency),
		boolToInt(c.Passed),
		c.Inspector,
		c.Notes,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting checklist: %w", err)
	}
	return nil
}

func (r *SQLiteChecklistRepo) GetByID(ctx context.Context, id string) (*domain.Checklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklists WHERE id = ?`
	c, err := scanChecklist(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checklist %s: %w", id, ErrNotFound)
	}
	return c, err
}

// ListByEquipment returns the equipment's checks, most recent first.
func (r *SQLiteChecklistRepo) ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Checklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklists
		WHERE equipment_id = ? ORDER BY check_date DESC, created_at DESC`
	return r.list(ctx, query, equipmentID)
}

func (r *SQLiteChecklistRepo) ListAll(ctx context.Context) ([]*domain.Checklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklists ORDER BY equipment_id, check_date DESC`
	return r.list(ctx, query)
}

func (r *SQLiteChecklistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checklists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting checklist: %w", err)
	}
	return requireAffected(res, "checklist "+id)
}

func (r *SQLiteChecklistRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Checklist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}
	defer rows.Close()

	var out []*domain.Checklist
	for rows.Next() {
		c, err := scanChecklist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checklists: %w", err)
	}
	return out, nil
}

func scanChecklist(s rowScanner) (*domain.Checklist, error) {
	var c domain.Checklist
	var checkDate, freq, createdAt string
	var passed int

	if err := s.Scan(&c.ID, &c.EquipmentID, &checkDate, &freq, &passed, &c.Inspector, &c.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning checklist: %w", err)
	}

	c.Frequency = domain.Frequency(freq)
	c.Passed = intToBool(passed)

	var err error
	if c.CheckDate, err = time.Parse(dateLayout, checkDate); err != nil {
		return nil, fmt.Errorf("parsing check_date: %w", err)
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
