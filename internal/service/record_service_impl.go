package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/google/uuid"
)

type trackedRecordService struct {
	records repository.TrackedRecordRepo
}

func NewTrackedRecordService(records repository.TrackedRecordRepo) TrackedRecordService {
	return &trackedRecordService{records: records}
}

func (s *trackedRecordService) Create(ctx context.Context, r *domain.TrackedRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.records.Create(ctx, r)
}

func (s *trackedRecordService) GetByID(ctx context.Context, id string) (*domain.TrackedRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *trackedRecordService) List(ctx context.Context, kind domain.RecordKind) ([]*domain.TrackedRecord, error) {
	return s.records.List(ctx, kind)
}

func (s *trackedRecordService) Update(ctx context.Context, r *domain.TrackedRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.records.Update(ctx, r)
}

func (s *trackedRecordService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// ListWithStatus pairs each record with the review status shown beside it.
func (s *trackedRecordService) ListWithStatus(ctx context.Context, kind domain.RecordKind, now time.Time) ([]app.RecordStatusView, error) {
	records, err := s.records.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	views := make([]app.RecordStatusView, 0, len(records))
	for _, r := range records {
		target := formatDate(r.TargetDate)
		v := app.RecordStatusView{
			Record: r,
			Status: reminder.ReviewStatusOf(target, now),
		}
		if d, err := reminder.DaysUntil(target, now); err == nil {
			v.DaysUntil = &d
		}
		views = append(views, v)
	}
	return views, nil
}
