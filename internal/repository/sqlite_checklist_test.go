package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistTestSetup(t *testing.T) (*SQLiteChecklistRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	eq := testutil.NewTestEquipment("Scaffold Tower")
	require.NoError(t, NewSQLiteEquipmentRepo(database).Create(context.Background(), eq))
	return NewSQLiteChecklistRepo(database), eq.ID
}

func TestChecklistRepo_CreateAndGetByID(t *testing.T) {
	repo, eqID := checklistTestSetup(t)
	ctx := context.Background()

	cl := testutil.NewTestChecklist(eqID, testutil.Date(2024, 6, 7),
		testutil.WithFrequency(domain.FrequencyDaily),
		testutil.WithInspector("J. Smith"),
		testutil.WithFailed(),
	)
	require.NoError(t, repo.Create(ctx, cl))

	got, err := repo.GetByID(ctx, cl.ID)
	require.NoError(t, err)
	assert.Equal(t, eqID, got.EquipmentID)
	assert.Equal(t, domain.FrequencyDaily, got.Frequency)
	assert.Equal(t, "J. Smith", got.Inspector)
	assert.False(t, got.Passed)
	assert.True(t, testutil.Date(2024, 6, 7).Equal(got.CheckDate))
}

func TestChecklistRepo_RequiresExistingEquipment(t *testing.T) {
	repo, _ := checklistTestSetup(t)

	err := repo.Create(context.Background(), testutil.NewTestChecklist("missing", testutil.Date(2024, 6, 7)))
	assert.Error(t, err)
}

func TestChecklistRepo_ListByEquipmentNewestFirst(t *testing.T) {
	repo, eqID := checklistTestSetup(t)
	ctx := context.Background()

	for _, d := range []int{3, 10, 7} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestChecklist(eqID, testutil.Date(2024, 6, d))))
	}

	list, err := repo.ListByEquipment(ctx, eqID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 10, list[0].CheckDate.Day())
	assert.Equal(t, 7, list[1].CheckDate.Day())
	assert.Equal(t, 3, list[2].CheckDate.Day())

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.ListByEquipment(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChecklistRepo_Delete(t *testing.T) {
	repo, eqID := checklistTestSetup(t)
	ctx := context.Background()

	cl := testutil.NewTestChecklist(eqID, testutil.Date(2024, 6, 7))
	require.NoError(t, repo.Create(ctx, cl))
	require.NoError(t, repo.Delete(ctx, cl.ID))
	assert.ErrorIs(t, repo.Delete(ctx, cl.ID), ErrNotFound)
}
