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

// SQLiteEquipmentRepo implements EquipmentRepo using a SQLite database.
type SQLiteEquipmentRepo struct {
	db db.DBTX
}

func NewSQLiteEquipmentRepo(db db.DBTX) *SQLiteEquipmentRepo {
	return &SQLiteEquipmentRepo{db: db}
}

const equipmentColumns = `id, name, serial_number, location, calibration_due, service_due, created_at, updated_at`

func (r *SQLiteEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (` + equipmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.SerialNumber,
		e.Location,
		nullableTimeToString(e.CalibrationDue, dateLayout),
		nullableTimeToString(e.ServiceDue, dateLayout),
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting equipment: %w", err)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ?`
	e, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("equipment %s: %w", id, ErrNotFound)
	}
	return e, err
}

func (r *SQLiteEquipmentRepo) List(ctx context.Context) ([]*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	var out []*domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment: %w", err)
	}
	return out, nil
}

func (r *SQLiteEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment
		SET name = ?, serial_number = ?, location = ?, calibration_due = ?, service_due = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.SerialNumber,
		e.Location,
		nullableTimeToString(e.CalibrationDue, dateLayout),
		nullableTimeToString(e.ServiceDue, dateLayout),
		nowUTC(),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating equipment: %w", err)
	}
	return requireAffected(res, "equipment "+e.ID)
}

// Delete removes the equipment and, through the foreign key, its checklists.
func (r *SQLiteEquipmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting equipment: %w", err)
	}
	return requireAffected(res, "equipment "+id)
}

func scanEquipment(s rowScanner) (*domain.Equipment, error) {
	var e domain.Equipment
	var calibration, service sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(&e.ID, &e.Name, &e.SerialNumber, &e.Location, &calibration, &service, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}

	e.CalibrationDue = parseNullableTime(calibration, dateLayout)
	e.ServiceDue = parseNullableTime(service, dateLayout)

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
