package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/alexanderramin/safeops/internal/testutil"
)

var testNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

type testRepos struct {
	records    repository.TrackedRecordRepo
	equipment  repository.EquipmentRepo
	checklists repository.ChecklistRepo
	uow        db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		records:    repository.NewSQLiteTrackedRecordRepo(database),
		equipment:  repository.NewSQLiteEquipmentRepo(database),
		checklists: repository.NewSQLiteChecklistRepo(database),
		uow:        testutil.NewTestUoW(database),
	}
}
