package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "record",
		Aliases: []string{"rec"},
		Short:   "Manage risk assessments, CPPs and first-aid kits",
	}

	cmd.AddCommand(
		newRecordAddCmd(app),
		newRecordListCmd(app),
		newRecordDeleteCmd(app),
	)

	return cmd
}

func newRecordAddCmd(app *App) *cobra.Command {
	var v recordFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tracked record",
		Long: `Add a risk assessment, construction phase plan or first-aid kit.
Without --name on an interactive terminal, a form collects the fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				if err := recordForm(&v).Run(); err != nil {
					return err
				}
			}

			kind, err := domain.ParseRecordKind(v.Kind)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("date", v.Date)
			if err != nil {
				return err
			}

			r := &domain.TrackedRecord{
				Kind:       kind,
				Name:       v.Name,
				Reference:  v.Reference,
				TargetDate: date,
				Notes:      v.Notes,
			}
			if err := app.Records.Create(context.Background(), r); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s %s\n",
				kind.DisplayName(), r.DisplayName(), formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Kind, "kind", string(domain.KindRiskAssessment), "risk_assessment, cpp or first_aid_kit")
	cmd.Flags().StringVar(&v.Name, "name", "", "Record name")
	cmd.Flags().StringVar(&v.Reference, "ref", "", "Reference code, e.g. RA-001")
	cmd.Flags().StringVar(&v.Date, "date", "", "Review or next inspection date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&v.Notes, "notes", "", "Free-form notes")

	return cmd
}

func newRecordListCmd(app *App) *cobra.Command {
	var kindStr, nowStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked records with their review status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.RecordKind
			if kindStr != "" {
				k, err := domain.ParseRecordKind(kindStr)
				if err != nil {
					return err
				}
				kind = k
			}
			now, err := resolveNow(app, nowStr)
			if err != nil {
				return err
			}

			views, err := app.reviewStatusUseCase().ListWithStatus(context.Background(), kind, now)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList(views, app.dateLayout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindStr, "kind", "", "Only list one kind of record")
	cmd.Flags().StringVar(&nowStr, "now", "", "Evaluate status as of this date (YYYY-MM-DD)")

	return cmd
}

func newRecordDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a tracked record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRecordID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Records.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
