package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/transfer"
	"github.com/spf13/cobra"
)

// resolveNow returns the --now flag value as a time, or the app clock when unset.
func resolveNow(app *App, raw string) (time.Time, error) {
	if raw == "" {
		return app.now(), nil
	}
	t, err := reminder.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", raw, err)
	}
	return t, nil
}

func newRemindersCmd(app *App) *cobra.Command {
	var nowStr, typeStr, sevStr, from string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "reminders",
		Aliases: []string{"rem"},
		Short:   "List upcoming and overdue reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			now, err := resolveNow(app, nowStr)
			if err != nil {
				return err
			}
			req := buildRemindersRequest(now)
			if typeStr != "" {
				if req.Type, err = domain.ParseReminderType(typeStr); err != nil {
					return err
				}
			}
			if sevStr != "" {
				if req.MinSeverity, err = domain.ParseSeverity(sevStr); err != nil {
					return err
				}
			}

			resp, err := loadReminders(ctx, app, req, from)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprint(out, formatter.FormatReminders(resp, app.dateLayout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowStr, "now", "", "Evaluate as of this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeStr, "type", "", "Only show tracked or recurring reminders")
	cmd.Flags().StringVar(&sevStr, "severity", "", "Minimum severity: ok, warning or danger")
	cmd.Flags().StringVar(&from, "from", "", "Compute from an exported bundle instead of the local store")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")

	return cmd
}

// loadReminders computes from the store, or from a bundle file when from is set.
func loadReminders(ctx context.Context, a *App, req app.RemindersRequest, from string) (*app.RemindersResponse, error) {
	if from == "" {
		return a.Reminders.GetReminders(ctx, req)
	}
	bundle, err := transfer.Load(from)
	if err != nil {
		return nil, err
	}
	return a.Reminders.ComputeSnapshot(ctx, transfer.SnapshotFromBundle(bundle), req)
}

func buildRemindersRequest(now time.Time) app.RemindersRequest {
	req := app.NewRemindersRequest()
	req.Now = &now
	return req
}

func newBadgeCmd(app *App) *cobra.Command {
	var nowStr string
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Show the overdue checklist count",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(app, nowStr)
			if err != nil {
				return err
			}
			resp, err := app.Reminders.GetReminders(context.Background(), buildRemindersRequest(now))
			if err != nil {
				return err
			}

			count := resp.Summary.OverdueChecklists
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), count)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBadge(count))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowStr, "now", "", "Evaluate as of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number (for status bars)")

	return cmd
}
