package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/spf13/cobra"
)

func newEquipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "Manage inspected equipment",
	}

	cmd.AddCommand(
		newEquipmentAddCmd(app),
		newEquipmentListCmd(app),
		newEquipmentDeleteCmd(app),
	)

	return cmd
}

func newEquipmentAddCmd(app *App) *cobra.Command {
	var v equipmentFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a piece of equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				if err := equipmentForm(&v).Run(); err != nil {
					return err
				}
			}

			calibration, err := parseDateFlag("calibration", v.Calibration)
			if err != nil {
				return err
			}
			service, err := parseDateFlag("service", v.Service)
			if err != nil {
				return err
			}

			e := &domain.Equipment{
				Name:           v.Name,
				SerialNumber:   v.Serial,
				Location:       v.Location,
				CalibrationDue: calibration,
				ServiceDue:     service,
			}
			if err := app.Equipment.Create(context.Background(), e); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created equipment %s %s\n", e.Name, formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Name, "name", "", "Equipment name")
	cmd.Flags().StringVar(&v.Serial, "serial", "", "Serial number")
	cmd.Flags().StringVar(&v.Location, "location", "", "Where the equipment is kept")
	cmd.Flags().StringVar(&v.Calibration, "calibration", "", "Calibration due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&v.Service, "service", "", "Service due date (YYYY-MM-DD)")

	return cmd
}

func newEquipmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Equipment.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No equipment found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEquipmentList(items, app.dateLayout()))
			return nil
		},
	}
}

func newEquipmentDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete equipment and its checklist history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEquipmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Equipment.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted equipment %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
