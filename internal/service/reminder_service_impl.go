package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/repository"
)

type reminderService struct {
	records    repository.TrackedRecordRepo
	equipment  repository.EquipmentRepo
	checklists repository.ChecklistRepo
	engineOpts []reminder.Option
	observer   UseCaseObserver
}

// NewReminderService builds a service that recomputes reminders from the
// store on every call. engineOpts configure windows and date layout.
func NewReminderService(
	records repository.TrackedRecordRepo,
	equipment repository.EquipmentRepo,
	checklists repository.ChecklistRepo,
	engineOpts []reminder.Option,
	observers ...UseCaseObserver,
) ReminderService {
	return &reminderService{
		records:    records,
		equipment:  equipment,
		checklists: checklists,
		engineOpts: engineOpts,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *reminderService) GetReminders(ctx context.Context, req app.RemindersRequest) (resp *app.RemindersResponse, err error) {
	fields := map[string]any{"source": "store"}
	defer observe(ctx, s.observer, "get-reminders", time.Now(), fields, &err)

	if req, err = normalizeFilters(req); err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	equipment, err := s.equipment.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	checklists, err := s.checklists.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading checklists: %w", err)
	}

	resp = s.compute(buildSnapshot(records, equipment, checklists), req)
	fields["reminders"] = len(resp.Reminders)
	fields["overdue_checklists"] = resp.Summary.OverdueChecklists
	return resp, nil
}

func (s *reminderService) ComputeSnapshot(ctx context.Context, snap reminder.Snapshot, req app.RemindersRequest) (resp *app.RemindersResponse, err error) {
	fields := map[string]any{"source": "snapshot"}
	defer observe(ctx, s.observer, "compute-snapshot", time.Now(), fields, &err)

	if req, err = normalizeFilters(req); err != nil {
		return nil, err
	}
	resp = s.compute(snap, req)
	fields["reminders"] = len(resp.Reminders)
	return resp, nil
}

func (s *reminderService) compute(snap reminder.Snapshot, req app.RemindersRequest) *app.RemindersResponse {
	opts := s.engineOpts
	if req.Now != nil {
		opts = append(append([]reminder.Option(nil), opts...), reminder.WithNow(*req.Now))
	}
	res := reminder.NewEngine(opts...).Compute(snap)

	return &app.RemindersResponse{
		Summary: app.RemindersSummary{
			GeneratedAt:       res.GeneratedAt,
			Total:             len(res.Reminders),
			Danger:            res.Counts[domain.SeverityDanger],
			Warning:           res.Counts[domain.SeverityWarning],
			OverdueChecklists: res.OverdueChecklists,
		},
		Reminders: reminder.Filter(res.Reminders, req.Type, req.MinSeverity),
	}
}

// normalizeFilters validates the optional filters and returns req with
// their canonical values.
func normalizeFilters(req app.RemindersRequest) (app.RemindersRequest, error) {
	if req.Type != "" {
		typ, err := domain.ParseReminderType(string(req.Type))
		if err != nil {
			return req, &app.RemindersError{Code: app.RemindersErrInvalidFilter, Message: err.Error()}
		}
		req.Type = typ
	}
	if req.MinSeverity != "" {
		sev, err := domain.ParseSeverity(string(req.MinSeverity))
		if err != nil {
			return req, &app.RemindersError{Code: app.RemindersErrInvalidFilter, Message: err.Error()}
		}
		req.MinSeverity = sev
	}
	return req, nil
}
