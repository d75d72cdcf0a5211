package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, r testRepos) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, r.records.Create(ctx, testutil.NewTestTrackedRecord("Roof works",
		testutil.WithReference("RA-001"),
		testutil.WithReviewDate(testutil.Date(2024, 6, 5)),
	)))
	require.NoError(t, r.records.Create(ctx, testutil.NewTestTrackedRecord("Block A",
		testutil.WithKind(domain.KindCPP),
		testutil.WithReviewDate(testutil.Date(2024, 7, 1)),
	)))
	require.NoError(t, r.records.Create(ctx, testutil.NewTestTrackedRecord("Office kit",
		testutil.WithKind(domain.KindFirstAidKit),
	)))

	detector := testutil.NewTestEquipment("Gas Detector", testutil.WithCalibrationDue(testutil.Date(2024, 6, 18)))
	forklift := testutil.NewTestEquipment("Forklift")
	require.NoError(t, r.equipment.Create(ctx, detector))
	require.NoError(t, r.equipment.Create(ctx, forklift))

	require.NoError(t, r.checklists.Create(ctx, testutil.NewTestChecklist(detector.ID, testutil.Date(2024, 6, 7),
		testutil.WithFrequency(domain.FrequencyWeekly))))
	require.NoError(t, r.checklists.Create(ctx, testutil.NewTestChecklist(detector.ID, testutil.Date(2024, 5, 1),
		testutil.WithFrequency(domain.FrequencyDaily))))
}

func TestGetReminders_FromStore(t *testing.T) {
	repos := setupRepos(t)
	seedStore(t, repos)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil)

	now := testNow
	req := app.NewRemindersRequest()
	req.Now = &now

	resp, err := svc.GetReminders(context.Background(), req)
	require.NoError(t, err)

	var descs []string
	for _, r := range resp.Reminders {
		descs = append(descs, r.Title+": "+r.Description)
	}
	assert.Equal(t, []string{
		"RA-001: RA-001 expired - 05/06/2024",
		"Gas Detector: weekly checklist overdue by 1 days",
		"Forklift: " + reminder.NoChecklistRecords,
		"Gas Detector: Calibration due in 3 days",
		"Block A: Block A due in 16 days",
	}, descs)

	assert.Equal(t, 5, resp.Summary.Total)
	assert.Equal(t, 4, resp.Summary.Danger)
	assert.Equal(t, 1, resp.Summary.Warning)
	assert.Equal(t, 2, resp.Summary.OverdueChecklists)
	assert.True(t, resp.Summary.GeneratedAt.Equal(testNow))
}

func TestGetReminders_FiltersKeepFullSummary(t *testing.T) {
	repos := setupRepos(t)
	seedStore(t, repos)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil)

	now := testNow
	resp, err := svc.GetReminders(context.Background(), app.RemindersRequest{
		Now:  &now,
		Type: domain.ReminderRecurring,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reminders, 2)
	assert.Equal(t, 5, resp.Summary.Total)

	resp, err = svc.GetReminders(context.Background(), app.RemindersRequest{
		Now:         &now,
		MinSeverity: domain.SeverityDanger,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reminders, 4)
}

func TestGetReminders_InvalidFilter(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil)

	_, err := svc.GetReminders(context.Background(), app.RemindersRequest{MinSeverity: "critical"})
	var rerr *app.RemindersError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, app.RemindersErrInvalidFilter, rerr.Code)
}

func TestGetReminders_EmptyStore(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil)

	resp, err := svc.GetReminders(context.Background(), app.NewRemindersRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Reminders)
	assert.Zero(t, resp.Summary.OverdueChecklists)
}

func TestGetReminders_EngineOptionsApply(t *testing.T) {
	repos := setupRepos(t)
	seedStore(t, repos)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists,
		[]reminder.Option{reminder.WithDateLayout("2006-01-02"), reminder.WithTrackedWindow(10)})

	now := testNow
	resp, err := svc.GetReminders(context.Background(), app.RemindersRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, "RA-001 expired - 2024-06-05", resp.Reminders[0].Description)
	for _, r := range resp.Reminders {
		assert.NotEqual(t, "Block A", r.Title, "16 days out is beyond a 10 day window")
	}
}

func TestComputeSnapshot_ObservesUseCase(t *testing.T) {
	repos := setupRepos(t)
	var logs bytes.Buffer
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil, NewLogUseCaseObserver(&logs))

	now := testNow
	resp, err := svc.ComputeSnapshot(context.Background(), reminder.Snapshot{
		CheckEntities: []reminder.CheckEntity{{ID: "e1", Name: "Hoist"}},
	}, app.RemindersRequest{Now: &now})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.OverdueChecklists)

	out := logs.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=compute-snapshot")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "reminders=1")
}

func TestComputeSnapshot_FiltersIgnoreCase(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReminderService(repos.records, repos.equipment, repos.checklists, nil)
	snap := reminder.Snapshot{
		Tracked:       []reminder.TrackedItem{{ID: "ra", Name: "RA-001", TargetDate: "2024-06-05"}},
		CheckEntities: []reminder.CheckEntity{{ID: "e1", Name: "Hoist"}},
	}

	now := testNow
	lower, err := svc.ComputeSnapshot(context.Background(), snap,
		app.RemindersRequest{Now: &now, Type: "recurring"})
	require.NoError(t, err)
	mixed, err := svc.ComputeSnapshot(context.Background(), snap,
		app.RemindersRequest{Now: &now, Type: "Recurring", MinSeverity: " DANGER "})
	require.NoError(t, err)

	require.Len(t, lower.Reminders, 1)
	require.Len(t, mixed.Reminders, 1)
	assert.Equal(t, "Hoist", mixed.Reminders[0].Title)
	assert.Equal(t, domain.ReminderRecurring, mixed.Reminders[0].Type)
}
