package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
)

// Notifier sends a digest of current reminders.
type Notifier struct {
	reminders   app.RemindersUseCase
	sender      Sender
	minSeverity domain.Severity
}

type Option func(*Notifier)

// WithMinSeverity drops reminders below sev from the digest.
func WithMinSeverity(sev domain.Severity) Option {
	return func(n *Notifier) {
		n.minSeverity = sev
	}
}

func NewNotifier(reminders app.RemindersUseCase, sender Sender, opts ...Option) *Notifier {
	n := &Notifier{reminders: reminders, sender: sender, minSeverity: domain.SeverityWarning}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify computes reminders at now and sends a digest. Nothing is sent when
// no reminder qualifies; the bool reports whether a message went out.
func (n *Notifier) Notify(ctx context.Context, now time.Time) (bool, error) {
	req := app.NewRemindersRequest()
	req.Now = &now
	req.MinSeverity = n.minSeverity

	resp, err := n.reminders.GetReminders(ctx, req)
	if err != nil {
		return false, fmt.Errorf("computing reminders: %w", err)
	}
	if len(resp.Reminders) == 0 {
		return false, nil
	}

	if err := n.sender.Send(ctx, FormatDigest(resp)); err != nil {
		return false, err
	}
	return true, nil
}

var severityMarker = map[domain.Severity]string{
	domain.SeverityDanger:  "[!!]",
	domain.SeverityWarning: "[!]",
	domain.SeverityOK:      "[ ]",
}

// FormatDigest renders reminders as plain text suitable for chat.
func FormatDigest(resp *app.RemindersResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Safety reminders for %s\n", resp.Summary.GeneratedAt.Format("Mon 02 Jan 2006"))
	fmt.Fprintf(&b, "%d overdue, %d due soon", resp.Summary.Danger, resp.Summary.Warning)
	if resp.Summary.OverdueChecklists > 0 {
		fmt.Fprintf(&b, ", %d overdue checklists", resp.Summary.OverdueChecklists)
	}
	b.WriteString("\n")
	for _, r := range resp.Reminders {
		fmt.Fprintf(&b, "\n%s %s: %s", severityMarker[r.Severity], r.Title, r.Description)
	}
	return b.String()
}
