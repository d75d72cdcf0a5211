package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/alexanderramin/safeops/internal/transfer"
)

// transferService reads and writes only through the unit of work, so an
// export sees one snapshot and an import lands all-or-nothing.
type transferService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTransferService(uow db.UnitOfWork, observers ...UseCaseObserver) TransferService {
	return &transferService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) Export(ctx context.Context, w io.Writer, format string) (result *app.TransferResult, err error) {
	fields := map[string]any{"format": format}
	defer observe(ctx, s.observer, "export", time.Now(), fields, &err)

	f, err := transfer.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	// One transaction so the three tables are read as a single snapshot.
	var (
		records    []*domain.TrackedRecord
		equipment  []*domain.Equipment
		checklists []*domain.Checklist
	)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if records, err = repository.NewSQLiteTrackedRecordRepo(tx).List(ctx, ""); err != nil {
			return fmt.Errorf("loading records: %w", err)
		}
		if equipment, err = repository.NewSQLiteEquipmentRepo(tx).List(ctx); err != nil {
			return fmt.Errorf("loading equipment: %w", err)
		}
		if checklists, err = repository.NewSQLiteChecklistRepo(tx).ListAll(ctx); err != nil {
			return fmt.Errorf("loading checklists: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bundle := transfer.FromDomain(records, equipment, checklists, time.Now())
	if err = transfer.Encode(w, bundle, f); err != nil {
		return nil, err
	}

	result = &app.TransferResult{Records: len(records), Equipment: len(equipment), Checklists: len(checklists)}
	fields["records"] = result.Records
	return result, nil
}

func (s *transferService) Import(ctx context.Context, path string) (*app.TransferResult, error) {
	bundle, err := transfer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportBundle(ctx, bundle)
}

// ImportBundle validates, converts and inserts the bundle in one
// transaction. Any failure leaves the store untouched.
func (s *transferService) ImportBundle(ctx context.Context, b *transfer.Bundle) (result *app.TransferResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	if errs := transfer.Validate(b); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, &transfer.ValidationError{Problems: errs}
	}

	converted, err := transfer.Convert(b, time.Now())
	if err != nil {
		return nil, fmt.Errorf("converting import bundle: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteTrackedRecordRepo(tx)
		txEquipment := repository.NewSQLiteEquipmentRepo(tx)
		txChecklists := repository.NewSQLiteChecklistRepo(tx)

		for _, r := range converted.Records {
			if err := txRecords.Create(ctx, r); err != nil {
				return fmt.Errorf("creating record %q: %w", r.Name, err)
			}
		}
		for _, e := range converted.Equipment {
			if err := txEquipment.Create(ctx, e); err != nil {
				return fmt.Errorf("creating equipment %q: %w", e.Name, err)
			}
		}
		for _, c := range converted.Checklists {
			if err := txChecklists.Create(ctx, c); err != nil {
				return fmt.Errorf("creating checklist for %s: %w", c.EquipmentID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.TransferResult{
		Records:    len(converted.Records),
		Equipment:  len(converted.Equipment),
		Checklists: len(converted.Checklists),
	}
	fields["records"] = result.Records
	fields["equipment"] = result.Equipment
	fields["checklists"] = result.Checklists
	return result, nil
}
