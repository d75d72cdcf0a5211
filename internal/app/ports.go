package app

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

type RemindersUseCase interface {
	GetReminders(ctx context.Context, req RemindersRequest) (*RemindersResponse, error)
	ComputeSnapshot(ctx context.Context, snap reminder.Snapshot, req RemindersRequest) (*RemindersResponse, error)
}

type ReviewStatusUseCase interface {
	ListWithStatus(ctx context.Context, kind domain.RecordKind, now time.Time) ([]RecordStatusView, error)
}

type LogChecklistUseCase interface {
	Log(ctx context.Context, c *domain.Checklist) error
}

// TransferResult counts what an import inserted or an export wrote.
type TransferResult struct {
	Records    int
	Equipment  int
	Checklists int
}

type ExportUseCase interface {
	Export(ctx context.Context, w io.Writer, format string) (*TransferResult, error)
}

type ImportUseCase interface {
	Import(ctx context.Context, path string) (*TransferResult, error)
}
