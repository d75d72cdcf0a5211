package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "safeops"
	serverVersion = "1.0.0"
)

// Server exposes reminders and review statuses as read-only MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	reminders app.RemindersUseCase
	statuses  app.ReviewStatusUseCase
	clock     func() time.Time
}

type Option func(*Server)

// WithClock replaces the wall clock used when a tool call omits "now".
func WithClock(fn func() time.Time) Option {
	return func(s *Server) {
		s.clock = fn
	}
}

func NewServer(reminders app.RemindersUseCase, statuses app.ReviewStatusUseCase, opts ...Option) *Server {
	s := &Server{
		reminders: reminders,
		statuses:  statuses,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List upcoming and overdue safety reminders sorted by due date"),
			mcp.WithString("now", mcp.Description("Evaluate as of this ISO date (default: today)")),
			mcp.WithString("severity", mcp.Description("Minimum severity: ok, warning or danger")),
			mcp.WithString("type", mcp.Description("Reminder type: tracked or recurring")),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("overdue_checklist_count",
			mcp.WithDescription("Count equipment whose recurring checklist is overdue or has never been done"),
			mcp.WithString("now", mcp.Description("Evaluate as of this ISO date (default: today)")),
		),
		s.handleOverdueChecklistCount,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("review_status",
			mcp.WithDescription("Review status of risk assessments, CPPs and first-aid kits"),
			mcp.WithString("kind", mcp.Description("risk_assessment, cpp or first_aid_kit (default: all)")),
			mcp.WithString("now", mcp.Description("Evaluate as of this ISO date (default: today)")),
		),
		s.handleReviewStatus,
	)
}

func (s *Server) now(req mcp.CallToolRequest) (time.Time, error) {
	raw := req.GetString("now", "")
	if raw == "" {
		return s.clock(), nil
	}
	t, err := reminder.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid now %q: %w", raw, err)
	}
	return t, nil
}

func (s *Server) handleListReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now, err := s.now(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rr := app.RemindersRequest{Now: &now}
	if v := req.GetString("severity", ""); v != "" {
		sev, err := domain.ParseSeverity(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rr.MinSeverity = sev
	}
	if v := req.GetString("type", ""); v != "" {
		typ, err := domain.ParseReminderType(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rr.Type = typ
	}

	resp, err := s.reminders.GetReminders(ctx, rr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute reminders: %v", err)), nil
	}

	if len(resp.Reminders) == 0 {
		return mcp.NewToolResultText("No reminders."), nil
	}

	return jsonResult(resp), nil
}

func (s *Server) handleOverdueChecklistCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now, err := s.now(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.reminders.GetReminders(ctx, app.RemindersRequest{Now: &now})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute reminders: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d", resp.Summary.OverdueChecklists)), nil
}

type reviewStatusEntry struct {
	ID         string              `json:"id"`
	Kind       domain.RecordKind   `json:"kind"`
	Name       string              `json:"name"`
	TargetDate string              `json:"target_date,omitempty"`
	Status     domain.ReviewStatus `json:"status"`
	Label      string              `json:"label"`
	DaysUntil  *int                `json:"days_until,omitempty"`
}

func (s *Server) handleReviewStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now, err := s.now(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var kind domain.RecordKind
	if v := req.GetString("kind", ""); v != "" {
		if kind, err = domain.ParseRecordKind(v); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	views, err := s.statuses.ListWithStatus(ctx, kind, now)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load records: %v", err)), nil
	}
	if len(views) == 0 {
		return mcp.NewToolResultText("No records found."), nil
	}

	entries := make([]reviewStatusEntry, 0, len(views))
	for _, v := range views {
		e := reviewStatusEntry{
			ID:        v.Record.ID,
			Kind:      v.Record.Kind,
			Name:      v.Record.DisplayName(),
			Status:    v.Status,
			Label:     v.Status.Label(),
			DaysUntil: v.DaysUntil,
		}
		if v.Record.TargetDate != nil {
			e.TargetDate = v.Record.TargetDate.Format("2006-01-02")
		}
		entries = append(entries, e)
	}

	return jsonResult(entries), nil
}

// jsonResult renders v as indented JSON text, or a tool error if it cannot
// be encoded.
func jsonResult(v any) *mcp.CallToolResult {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(output))
}
