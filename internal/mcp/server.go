// Package mcp exposes the tracking service as MCP tools so an AI
// assistant can drive the same operations as the HTTP API.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/medlink/pharmtrack/internal/domain/project"
)

const serverInstructions = `pharmtrack tracks pharmaceutical manufacturer partnerships as
Projects, each with monthly sales/coverage records.

Use list_projects to browse (optionally filtered), dashboard_summary for
portfolio KPIs, create_project / record_month to mutate, and
project_report to generate an AI progress report for one project.`

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	GetAll(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	RecordMonth(ctx context.Context, projectID string, rec project.MonthlyRecord) error
}

// ReportService defines report generation needed by MCP.
type ReportService interface {
	Generate(ctx context.Context, p project.Project) (string, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Reports  ReportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pharmtrack",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerTools(server, cfg.Services)

	return server
}
