package service

import (
	"context"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/google/uuid"
)

type equipmentService struct {
	equipment repository.EquipmentRepo
}

func NewEquipmentService(equipment repository.EquipmentRepo) EquipmentService {
	return &equipmentService{equipment: equipment}
}

func (s *equipmentService) Create(ctx context.Context, e *domain.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.equipment.Create(ctx, e)
}

func (s *equipmentService) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

func (s *equipmentService) List(ctx context.Context) ([]*domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *equipmentService) Update(ctx context.Context, e *domain.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return s.equipment.Update(ctx, e)
}

// Delete also removes the equipment's checklists.
func (s *equipmentService) Delete(ctx context.Context, id string) error {
	return s.equipment.Delete(ctx, id)
}
