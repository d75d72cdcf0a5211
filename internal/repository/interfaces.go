package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/safeops/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that matches no row.
var ErrNotFound = errors.New("not found")

type TrackedRecordRepo interface {
	Create(ctx context.Context, r *domain.TrackedRecord) error
	GetByID(ctx context.Context, id string) (*domain.TrackedRecord, error)
	// List returns records of the given kind, or all records when kind is empty.
	List(ctx context.Context, kind domain.RecordKind) ([]*domain.TrackedRecord, error)
	Update(ctx context.Context, r *domain.TrackedRecord) error
	Delete(ctx context.Context, id string) error
}

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}

type ChecklistRepo interface {
	Create(ctx context.Context, c *domain.Checklist) error
	GetByID(ctx context.Context, id string) (*domain.Checklist, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Checklist, error)
	ListAll(ctx context.Context) ([]*domain.Checklist, error)
	Delete(ctx context.Context, id string) error
}
