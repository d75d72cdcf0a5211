package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/alexanderramin/safeops/internal/service"
	"github.com/alexanderramin/safeops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	recordRepo := repository.NewSQLiteTrackedRecordRepo(db)
	equipmentRepo := repository.NewSQLiteEquipmentRepo(db)
	checklistRepo := repository.NewSQLiteChecklistRepo(db)
	uow := testutil.NewTestUoW(db)

	return &App{
		Records:    service.NewTrackedRecordService(recordRepo),
		Equipment:  service.NewEquipmentService(equipmentRepo),
		Checklists: service.NewChecklistService(checklistRepo, uow),
		Reminders:  service.NewReminderService(recordRepo, equipmentRepo, checklistRepo, nil),
		Transfer:   service.NewTransferService(uow),
		Clock:      func() time.Time { return testNow },
		// Sender left nil: Telegram not configured.
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// seedStore adds one overdue risk assessment and one never-checked forklift.
func seedStore(t *testing.T, app *App) {
	t.Helper()
	_, err := executeCmd(t, app, "record", "add", "--name", "Roof works", "--ref", "RA-001", "--date", "2024-06-05")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "equipment", "add", "--name", "Forklift", "--serial", "FL-9")
	require.NoError(t, err)
}

type remindersJSON struct {
	Summary struct {
		Total             int `json:"total"`
		Danger            int `json:"danger"`
		OverdueChecklists int `json:"overdue_checklists"`
	} `json:"summary"`
	Reminders []struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Severity    string `json:"severity"`
	} `json:"reminders"`
}

func decodeReminders(t *testing.T, out string) remindersJSON {
	t.Helper()
	var resp remindersJSON
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "safeops")
}

// --- reminders ---

func TestRemindersCmd_EmptyDB(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "reminders")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing due")
}

func TestRemindersCmd_WithData(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "reminders")
	require.NoError(t, err)
	assert.Contains(t, output, "RA-001")
	assert.Contains(t, output, "Forklift")
	assert.Contains(t, output, "1 overdue checklist")
}

func TestRemindersCmd_JSONAndFilters(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "reminders", "--json", "--type", "recurring")
	require.NoError(t, err)

	resp := decodeReminders(t, output)
	require.Len(t, resp.Reminders, 1)
	assert.Equal(t, "Forklift", resp.Reminders[0].Title)
	assert.Equal(t, "No checklist records found", resp.Reminders[0].Description)
	// Summary counts ignore the type filter.
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.OverdueChecklists)
}

func TestRemindersCmd_NowFlag(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "reminders", "--json", "--type", "tracked", "--now", "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, decodeReminders(t, output).Reminders)
}

func TestRemindersCmd_InvalidFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "reminders", "--severity", "critical")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "reminders", "--type", "weekly")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "reminders", "--now", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --now")
}

func TestRemindersCmd_FromBundle(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	bundle := `{
  "version": 1,
  "records": [{"ref": "r1", "kind": "cpp", "name": "Site CPP", "target_date": "2024-06-20"}],
  "equipment": [{"ref": "e1", "name": "Harness"}],
  "checklists": [{"ref": "c1", "equipment_ref": "e1", "check_date": "2024-06-14", "frequency": "daily"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(bundle), 0o644))

	output, err := executeCmd(t, app, "reminders", "--json", "--from", path)
	require.NoError(t, err)

	resp := decodeReminders(t, output)
	require.Len(t, resp.Reminders, 2)
	assert.Equal(t, "Harness", resp.Reminders[0].Title)
	assert.Equal(t, "Site CPP", resp.Reminders[1].Title)

	// The local store is untouched.
	output, err = executeCmd(t, app, "record", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No records found.")
}

// --- badge ---

func TestBadgeCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "badge", "--count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", output)

	seedStore(t, app)
	output, err = executeCmd(t, app, "badge", "--count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", output)

	output, err = executeCmd(t, app, "badge")
	require.NoError(t, err)
	assert.Contains(t, output, "1 overdue checklist")
}

// --- record ---

func TestRecordAddCmd_RequiresNameWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "record", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name is required")
}

func TestRecordAddCmd_InvalidInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "record", "add", "--name", "X", "--kind", "permit")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "record", "add", "--name", "X", "--date", "05/06/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestRecordListCmd(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)
	_, err := executeCmd(t, app, "record", "add", "--kind", "kit", "--name", "Van kit")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "record", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "RA-001 Roof works")
	assert.Contains(t, output, "Review Overdue")
	assert.Contains(t, output, "05/06/2024")
	assert.Contains(t, output, "Van kit")
	assert.Contains(t, output, "No Review Date")

	output, err = executeCmd(t, app, "record", "list", "--kind", "first_aid_kit")
	require.NoError(t, err)
	assert.Contains(t, output, "Van kit")
	assert.NotContains(t, output, "Roof works")
}

func TestRecordDeleteCmd(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	_, err := executeCmd(t, app, "record", "delete", "RA-001")
	require.NoError(t, err)

	records, err := app.Records.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = executeCmd(t, app, "record", "delete", "RA-001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- equipment ---

func TestEquipmentListCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "equipment", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No equipment found.")

	_, err = executeCmd(t, app, "equipment", "add", "--name", "Gas detector", "--calibration", "2024-07-01", "--location", "Store A")
	require.NoError(t, err)

	output, err = executeCmd(t, app, "equipment", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Gas detector")
	assert.Contains(t, output, "Store A")
	assert.Contains(t, output, "01/07/2024")
}

func TestEquipmentDeleteCmd_RemovesChecklists(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)
	_, err := executeCmd(t, app, "checklist", "log", "--equipment", "forklift", "--date", "2024-06-14")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "equipment", "delete", "Forklift")
	require.NoError(t, err)

	checks, err := app.Checklists.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, checks)
}

// --- checklist ---

func TestChecklistLogCmd_ClearsBadge(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "checklist", "log", "--equipment", "Forklift", "--date", "2024-06-14", "--inspector", "Sam")
	require.NoError(t, err)
	assert.Contains(t, output, "Logged weekly check (passed) on 14/06/2024")

	output, err = executeCmd(t, app, "badge", "--count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", output)
}

func TestChecklistLogCmd_DefaultsToToday(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "checklist", "log", "--equipment", "Forklift", "--frequency", "DAILY", "--failed")
	require.NoError(t, err)
	assert.Contains(t, output, "Logged daily check (failed) on 15/06/2024")
}

func TestChecklistLogCmd_Errors(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	_, err := executeCmd(t, app, "checklist", "log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--equipment is required")

	_, err = executeCmd(t, app, "checklist", "log", "--equipment", "Crane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = executeCmd(t, app, "checklist", "log", "--equipment", "Forklift", "--frequency", "yearly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frequency")
}

func TestChecklistListCmd(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "checklist", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No checklists found.")

	_, err = executeCmd(t, app, "checklist", "log", "--equipment", "Forklift", "--date", "2024-06-10", "--inspector", "Sam")
	require.NoError(t, err)

	output, err = executeCmd(t, app, "checklist", "list", "--equipment", "Forklift")
	require.NoError(t, err)
	assert.Contains(t, output, "Forklift")
	assert.Contains(t, output, "Sam")
	assert.Contains(t, output, "10/06/2024")
}

// --- export / import ---

func TestExportCmd_YAMLToStdout(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "name: Forklift")

	_, err = executeCmd(t, app, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestExportImportCmd_RoundTrip(t *testing.T) {
	src := testApp(t)
	seedStore(t, src)
	_, err := executeCmd(t, src, "checklist", "log", "--equipment", "Forklift", "--date", "2024-06-14")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bundle.yaml")
	output, err := executeCmd(t, src, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 1 record, 1 equipment item, 1 checklist")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "version: 1"))

	dst := testApp(t)
	output, err = executeCmd(t, dst, "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 1 record, 1 equipment item, 1 checklist")

	output, err = executeCmd(t, dst, "badge", "--count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", output)
}

func TestImportCmd_ValidationFailureWritesNothing(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	bundle := `{
  "version": 1,
  "records": [{"ref": "r1", "kind": "permit", "name": ""}],
  "checklists": [{"ref": "c1", "equipment_ref": "missing", "check_date": "2024-06-14", "frequency": "weekly"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(bundle), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")

	records, err := app.Records.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

// --- notify ---

type recordingSender struct {
	messages []string
}

func (s *recordingSender) Send(_ context.Context, text string) error {
	s.messages = append(s.messages, text)
	return nil
}

func TestNotifyCmd_NotConfigured(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "notify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram is not configured")
}

func TestNotifyCmd_DryRun(t *testing.T) {
	app := testApp(t)
	seedStore(t, app)

	output, err := executeCmd(t, app, "notify", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "Safety reminders for Sat 15 Jun 2024")
	assert.Contains(t, output, "[!!] RA-001")
}

func TestNotifyCmd_SendsOnce(t *testing.T) {
	app := testApp(t)
	sender := &recordingSender{}
	app.Sender = sender

	output, err := executeCmd(t, app, "notify")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to report.")
	assert.Empty(t, sender.messages)

	seedStore(t, app)
	output, err = executeCmd(t, app, "notify")
	require.NoError(t, err)
	assert.Contains(t, output, "Digest sent.")
	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "Forklift")
}

// --- panel ---

func TestPanelCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "panel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
