package cli

import (
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/config"
	"github.com/alexanderramin/safeops/internal/notify"
	"github.com/alexanderramin/safeops/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Records    service.TrackedRecordService
	Equipment  service.EquipmentService
	Checklists service.ChecklistService
	Reminders  service.ReminderService
	Transfer   service.TransferService

	// Use-case overrides. Nil falls back to the services above.
	LogChecklist app.LogChecklistUseCase
	ReviewStatus app.ReviewStatusUseCase
	Export       app.ExportUseCase
	Import       app.ImportUseCase

	// Sender delivers notification digests; nil disables "notify" unless --dry-run.
	Sender notify.Sender

	Config *config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Clock replaces time.Now for commands without --now.
	Clock func() time.Time
}

// NewRootCmd creates the top-level "safeops" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "safeops",
		Short:         "Health and safety record reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Read by cmd/safeops before the App is wired; declared here so cobra accepts it.
	root.PersistentFlags().String("config", "", "Config file (default $SAFEOPS_CONFIG or ~/.safeops/config.yaml)")

	root.AddCommand(
		newRemindersCmd(app),
		newBadgeCmd(app),
		newPanelCmd(app),
		newRecordCmd(app),
		newEquipmentCmd(app),
		newChecklistCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newNotifyCmd(app),
	)

	return root
}
