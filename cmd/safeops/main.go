package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/safeops/internal/cli"
	"github.com/alexanderramin/safeops/internal/config"
	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/notify"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/alexanderramin/safeops/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configFlag pulls --config out of args ahead of cobra, which parses it again.
func configFlag(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func run() error {
	cfg, err := config.Load(config.ResolvePath(configFlag(os.Args[1:])))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.Log.Enabled {
		var w io.Writer = os.Stderr
		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			w = f
		}
		level, _ := cfg.SlogLevel()
		observers = append(observers, service.NewLeveledUseCaseObserver(w, level))
	}

	// Wire repositories
	recordRepo := repository.NewSQLiteTrackedRecordRepo(database)
	equipmentRepo := repository.NewSQLiteEquipmentRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	engineOpts := []reminder.Option{
		reminder.WithDateLayout(cfg.Display.DateFormat),
		reminder.WithTrackedWindow(cfg.Reminders.TrackedWindowDays),
		reminder.WithRecurringWindow(cfg.Reminders.RecurringWindowDays),
	}

	app := &cli.App{
		Records:    service.NewTrackedRecordService(recordRepo),
		Equipment:  service.NewEquipmentService(equipmentRepo),
		Checklists: service.NewChecklistService(checklistRepo, uow, observers...),
		Reminders:  service.NewReminderService(recordRepo, equipmentRepo, checklistRepo, engineOpts, observers...),
		Transfer:   service.NewTransferService(uow, observers...),
		Config:     cfg,
	}

	if cfg.TelegramEnabled() {
		token, chatID := cfg.Telegram.Token, cfg.Telegram.ChatID
		app.Sender = notify.Lazy(func() (notify.Sender, error) {
			return notify.NewTelegramSender(token, chatID)
		})
	}

	// Forms and the panel only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
