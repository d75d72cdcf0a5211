package service

import (
	"context"
	"time"

	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/google/uuid"
)

type checklistService struct {
	checklists repository.ChecklistRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewChecklistService(checklists repository.ChecklistRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{
		checklists: checklists,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Log records a completed check. The equipment lookup and insert share one
// transaction so a concurrent equipment delete cannot orphan the row.
func (s *checklistService) Log(ctx context.Context, c *domain.Checklist) (err error) {
	defer observe(ctx, s.observer, "log-checklist", time.Now(), map[string]any{
		"equipment_id": c.EquipmentID,
		"frequency":    string(c.Frequency),
	}, &err)

	freq, err := domain.ParseFrequency(string(c.Frequency))
	if err != nil {
		return err
	}
	c.Frequency = freq
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().UTC()
	if err = c.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteEquipmentRepo(tx).GetByID(ctx, c.EquipmentID); err != nil {
			return err
		}
		return repository.NewSQLiteChecklistRepo(tx).Create(ctx, c)
	})
}

func (s *checklistService) ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Checklist, error) {
	return s.checklists.ListByEquipment(ctx, equipmentID)
}

func (s *checklistService) ListAll(ctx context.Context) ([]*domain.Checklist, error) {
	return s.checklists.ListAll(ctx)
}

func (s *checklistService) Delete(ctx context.Context, id string) error {
	return s.checklists.Delete(ctx, id)
}
