package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackedRecordService_CreateValidates(t *testing.T) {
	repos := setupRepos(t)
	svc := NewTrackedRecordService(repos.records)

	err := svc.Create(context.Background(), &domain.TrackedRecord{Kind: domain.KindCPP})
	assert.ErrorContains(t, err, "name is required")

	rec := &domain.TrackedRecord{Kind: domain.KindCPP, Name: "Block A"}
	require.NoError(t, svc.Create(context.Background(), rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestTrackedRecordService_ListWithStatus(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewTrackedRecordService(repos.records)

	for _, r := range []*domain.TrackedRecord{
		testutil.NewTestTrackedRecord("Overdue", testutil.WithReviewDate(testutil.Date(2024, 6, 1))),
		testutil.NewTestTrackedRecord("Soon", testutil.WithReviewDate(testutil.Date(2024, 7, 15))),
		testutil.NewTestTrackedRecord("Later", testutil.WithReviewDate(testutil.Date(2024, 7, 16))),
		testutil.NewTestTrackedRecord("Undated"),
		testutil.NewTestTrackedRecord("Kit", testutil.WithKind(domain.KindFirstAidKit)),
	} {
		require.NoError(t, repos.records.Create(ctx, r))
	}

	views, err := svc.ListWithStatus(ctx, domain.KindRiskAssessment, testNow)
	require.NoError(t, err)
	require.Len(t, views, 4)

	got := map[string]domain.ReviewStatus{}
	for _, v := range views {
		got[v.Record.Name] = v.Status
	}
	assert.Equal(t, map[string]domain.ReviewStatus{
		"Overdue": domain.ReviewOverdue,
		"Soon":    domain.ReviewDueSoon,
		"Later":   domain.ReviewCurrent,
		"Undated": domain.ReviewNoDate,
	}, got)

	require.NotNil(t, views[0].DaysUntil)
	assert.Equal(t, -14, *views[0].DaysUntil)
	assert.Nil(t, views[3].DaysUntil)
}

func TestEquipmentService_CreateAndDelete(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewEquipmentService(repos.equipment)

	assert.Error(t, svc.Create(ctx, &domain.Equipment{}))

	eq := &domain.Equipment{Name: "Ladder"}
	require.NoError(t, svc.Create(ctx, eq))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, eq.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
