package cli

import (
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/reminder"
)

func (a *App) logChecklistUseCase() app.LogChecklistUseCase {
	if a.LogChecklist != nil {
		return a.LogChecklist
	}
	return a.Checklists
}

func (a *App) reviewStatusUseCase() app.ReviewStatusUseCase {
	if a.ReviewStatus != nil {
		return a.ReviewStatus
	}
	return a.Records
}

func (a *App) exportUseCase() app.ExportUseCase {
	if a.Export != nil {
		return a.Export
	}
	return a.Transfer
}

func (a *App) importUseCase() app.ImportUseCase {
	if a.Import != nil {
		return a.Import
	}
	return a.Transfer
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) dateLayout() string {
	if a.Config != nil && a.Config.Display.DateFormat != "" {
		return a.Config.Display.DateFormat
	}
	return reminder.DefaultDateLayout
}
