// Command safeops-mcp serves safety reminders and review statuses over MCP.
//
// Usage:
//
//	./safeops-mcp          # Start MCP server (stdio)
//	./safeops-mcp --help   # Show help
//
// Environment:
//
//	SAFEOPS_CONFIG   Path to the YAML config file (default: ~/.safeops/config.yaml)
//	SAFEOPS_DB_PATH  Path to SQLite database (default: ~/.safeops/safeops.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/safeops/internal/config"
	"github.com/alexanderramin/safeops/internal/db"
	"github.com/alexanderramin/safeops/internal/mcpserver"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/alexanderramin/safeops/internal/repository"
	"github.com/alexanderramin/safeops/internal/service"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	// stdout carries the protocol, so use-case logs only ever go to stderr.
	var observers []service.UseCaseObserver
	if cfg.Log.Enabled {
		level, _ := cfg.SlogLevel()
		observers = append(observers, service.NewLeveledUseCaseObserver(os.Stderr, level))
	}

	records := repository.NewSQLiteTrackedRecordRepo(database)
	engineOpts := []reminder.Option{
		reminder.WithDateLayout(cfg.Display.DateFormat),
		reminder.WithTrackedWindow(cfg.Reminders.TrackedWindowDays),
		reminder.WithRecurringWindow(cfg.Reminders.RecurringWindowDays),
	}
	reminders := service.NewReminderService(
		records,
		repository.NewSQLiteEquipmentRepo(database),
		repository.NewSQLiteChecklistRepo(database),
		engineOpts,
		observers...,
	)

	s := mcpserver.NewServer(reminders, service.NewTrackedRecordService(records))

	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`SafeOps MCP Server - Health and safety reminders via MCP protocol

USAGE:
    safeops-mcp          Start MCP server (communicates via stdio)
    safeops-mcp --help   Show this help

ENVIRONMENT:
    SAFEOPS_CONFIG   Path to the YAML config file
                     Default: ~/.safeops/config.yaml
    SAFEOPS_DB_PATH  Path to SQLite database file
                     Default: ~/.safeops/safeops.db

TOOLS:
    list_reminders           Upcoming and overdue reminders (now, severity, type)
    overdue_checklist_count  Equipment with overdue or missing checklists (now)
    review_status            Review status of tracked records (kind, now)

CONFIGURATION:
    Add to your MCP client config:
    {
      "mcpServers": {
        "safeops": {
          "command": "/path/to/safeops-mcp",
          "args": []
        }
      }
    }`)
}
