package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/spf13/cobra"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"check"},
		Short:   "Log and review equipment checklists",
	}

	cmd.AddCommand(
		newChecklistLogCmd(app),
		newChecklistListCmd(app),
	)

	return cmd
}

func newChecklistLogCmd(app *App) *cobra.Command {
	var v checklistFormValues
	var failed bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed equipment check",
		Long: `Record a completed check against a piece of equipment, by name or ID.
Without --equipment on an interactive terminal, a form collects the fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			v.Passed = !failed
			if v.EquipmentID == "" {
				if !app.interactive() {
					return fmt.Errorf("--equipment is required")
				}
				form, err := checklistForm(ctx, app, &v)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			equipmentID, err := resolveEquipmentID(ctx, app, v.EquipmentID)
			if err != nil {
				return err
			}
			checkDate, err := parseDateFlag("date", v.Date)
			if err != nil {
				return err
			}
			if checkDate == nil {
				y, m, d := app.now().Date()
				today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
				checkDate = &today
			}

			c := &domain.Checklist{
				EquipmentID: equipmentID,
				CheckDate:   *checkDate,
				Frequency:   domain.Frequency(v.Frequency),
				Passed:      v.Passed,
				Inspector:   v.Inspector,
				Notes:       v.Notes,
			}
			if err := app.logChecklistUseCase().Log(ctx, c); err != nil {
				return err
			}

			result := "passed"
			if !c.Passed {
				result = "failed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s check (%s) on %s\n",
				c.Frequency, result, c.CheckDate.Format(app.dateLayout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.EquipmentID, "equipment", "", "Equipment name or ID")
	cmd.Flags().StringVar(&v.Date, "date", "", "Check date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&v.Frequency, "frequency", string(domain.FrequencyWeekly), "daily, weekly or monthly")
	cmd.Flags().BoolVar(&failed, "failed", false, "The check found a defect")
	cmd.Flags().StringVar(&v.Inspector, "inspector", "", "Who carried out the check")
	cmd.Flags().StringVar(&v.Notes, "notes", "", "Free-form notes")

	return cmd
}

func newChecklistListCmd(app *App) *cobra.Command {
	var equipment string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			items, err := app.Equipment.List(ctx)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(items))
			for _, e := range items {
				names[e.ID] = e.Name
			}

			var checks []*domain.Checklist
			if equipment != "" {
				id, err := resolveEquipmentID(ctx, app, equipment)
				if err != nil {
					return err
				}
				checks, err = app.Checklists.ListByEquipment(ctx, id)
				if err != nil {
					return err
				}
			} else {
				checks, err = app.Checklists.ListAll(ctx)
				if err != nil {
					return err
				}
			}

			if len(checks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No checklists found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecklistList(checks, names, app.dateLayout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&equipment, "equipment", "", "Only show checks for this equipment (name or ID)")

	return cmd
}
