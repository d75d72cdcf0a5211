package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/notify"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	var nowStr, sevStr string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a reminder digest to the configured Telegram chat",
		Long: `Compute reminders and send a plain-text digest to Telegram.
Nothing is sent when no reminder reaches the minimum severity.
With --dry-run the digest is printed instead of sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(app, nowStr)
			if err != nil {
				return err
			}
			sev, err := domain.ParseSeverity(sevStr)
			if err != nil {
				return err
			}

			sender := app.Sender
			if dryRun {
				sender = notify.WriterSender{W: cmd.OutOrStdout()}
			}
			if sender == nil {
				return fmt.Errorf("telegram is not configured (set telegram.token and telegram.chat_id)")
			}

			n := notify.NewNotifier(app.Reminders, sender, notify.WithMinSeverity(sev))
			sent, err := n.Notify(context.Background(), now)
			if err != nil {
				return err
			}
			if !sent {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to report.")
			} else if !dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Digest sent.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nowStr, "now", "", "Evaluate as of this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sevStr, "severity", string(domain.SeverityWarning), "Minimum severity to include")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the digest instead of sending it")

	return cmd
}
