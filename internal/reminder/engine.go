package reminder

import (
	"time"
)

const (
	DefaultTrackedWindowDays   = 30
	DefaultRecurringWindowDays = 7
	DefaultDateLayout          = "02/01/2006"
)

// Engine turns record snapshots into reminders. It holds no state between
// calls; each computation reads the clock once.
type Engine struct {
	clock           func() time.Time
	dateLayout      string
	trackedWindow   int
	recurringWindow int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(fn func() time.Time) Option {
	return func(e *Engine) {
		if fn != nil {
			e.clock = fn
		}
	}
}

// WithNow pins "now" to a fixed instant.
func WithNow(now time.Time) Option {
	return WithClock(func() time.Time { return now })
}

// WithDateLayout sets the layout used for dates inside descriptions.
func WithDateLayout(layout string) Option {
	return func(e *Engine) {
		if layout != "" {
			e.dateLayout = layout
		}
	}
}

// WithTrackedWindow sets the look-ahead for tracked and equipment dates.
func WithTrackedWindow(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.trackedWindow = days
		}
	}
}

// WithRecurringWindow sets the look-ahead for checklist recurrence.
func WithRecurringWindow(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.recurringWindow = days
		}
	}
}

// NewEngine returns an engine with the default windows and date layout.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:           time.Now,
		dateLayout:      DefaultDateLayout,
		trackedWindow:   DefaultTrackedWindowDays,
		recurringWindow: DefaultRecurringWindowDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now reads the engine clock.
func (e *Engine) Now() time.Time {
	return e.clock()
}

// Compute runs every generator over the snapshot and aggregates the result.
func (e *Engine) Compute(s Snapshot) Result {
	now := e.clock()
	reminders := Aggregate(
		e.trackedAt(s.Tracked, now),
		e.equipmentAt(s.Equipment, now),
		e.recurringAt(PairRecurringChecks(s.CheckEntities, s.Checks), now),
	)
	return Result{
		GeneratedAt:       now,
		Reminders:         reminders,
		OverdueChecklists: OverdueChecklistCount(reminders),
		Counts:            CountBySeverity(reminders),
	}
}
