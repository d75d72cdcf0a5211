package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/transfer"
)

type TrackedRecordService interface {
	Create(ctx context.Context, r *domain.TrackedRecord) error
	GetByID(ctx context.Context, id string) (*domain.TrackedRecord, error)
	List(ctx context.Context, kind domain.RecordKind) ([]*domain.TrackedRecord, error)
	Update(ctx context.Context, r *domain.TrackedRecord) error
	Delete(ctx context.Context, id string) error
	ListWithStatus(ctx context.Context, kind domain.RecordKind, now time.Time) ([]app.RecordStatusView, error)
}

type EquipmentService interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}

type ChecklistService interface {
	Log(ctx context.Context, c *domain.Checklist) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Checklist, error)
	ListAll(ctx context.Context) ([]*domain.Checklist, error)
	Delete(ctx context.Context, id string) error
}

type ReminderService interface {
	GetReminders(ctx context.Context, req app.RemindersRequest) (*app.RemindersResponse, error)
	ComputeSnapshot(ctx context.Context, snap reminder.Snapshot, req app.RemindersRequest) (*app.RemindersResponse, error)
}

type TransferService interface {
	Export(ctx context.Context, w io.Writer, format string) (*app.TransferResult, error)
	Import(ctx context.Context, path string) (*app.TransferResult, error)
	ImportBundle(ctx context.Context, b *transfer.Bundle) (*app.TransferResult, error)
}
