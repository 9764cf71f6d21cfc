package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/medlink/pharmtrack/internal/domain/metrics"
	"github.com/medlink/pharmtrack/internal/domain/project"
)

const dashboardTopN = 5

func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List tracked projects, optionally filtered by search term and status",
	}, listProjectsHandler(svcs.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project including its monthly records",
	}, getProjectHandler(svcs.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new manufacturer partnership project",
	}, createProjectHandler(svcs.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_month",
		Description: "Record or overwrite one month of sales/coverage data for a project",
	}, recordMonthHandler(svcs.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_summary",
		Description: "Portfolio KPIs: totals, achievement rate, manufacturer count, top projects",
	}, dashboardHandler(svcs.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_report",
		Description: "Generate an AI progress report for a project from its recent months",
	}, reportHandler(svcs.Projects, svcs.Reports))
}

// ListProjectsInput filters the project list.
type ListProjectsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"search term matched against name, manufacturer and products"`
	Status string `json:"status,omitempty" jsonschema:"status filter: Active, Pending, Completed or All"`
}

// ListProjectsResult carries the filtered collection.
type ListProjectsResult struct {
	Projects []project.Project `json:"projects"`
}

func listProjectsHandler(svc ProjectService) sdkmcp.ToolHandlerFor[ListProjectsInput, ListProjectsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		projects, err := svc.GetAll(ctx)
		if err != nil {
			return nil, ListProjectsResult{}, err
		}
		filtered := project.Filter(projects, input.Query, project.Status(input.Status))
		return nil, ListProjectsResult{Projects: filtered}, nil
	}
}

// GetProjectInput identifies one project.
type GetProjectInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

// GetProjectResult carries one project.
type GetProjectResult struct {
	Project project.Project `json:"project"`
}

func getProjectHandler(svc ProjectService) sdkmcp.ToolHandlerFor[GetProjectInput, GetProjectResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetProjectInput) (*sdkmcp.CallToolResult, GetProjectResult, error) {
		proj, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, GetProjectResult{}, err
		}
		return nil, GetProjectResult{Project: *proj}, nil
	}
}

// CreateProjectInput defines project creation inputs.
type CreateProjectInput struct {
	Name         string `json:"name" jsonschema:"project display name"`
	Manufacturer string `json:"manufacturer" jsonschema:"upstream pharma company"`
	Products     string `json:"products,omitempty" jsonschema:"covered products, comma-separated"`
	Description  string `json:"description,omitempty"`
}

func createProjectHandler(svc ProjectService) sdkmcp.ToolHandlerFor[CreateProjectInput, GetProjectResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input CreateProjectInput) (*sdkmcp.CallToolResult, GetProjectResult, error) {
		proj, err := svc.Create(ctx, project.CreateRequest{
			Name:         input.Name,
			Manufacturer: input.Manufacturer,
			Products:     input.Products,
			Description:  input.Description,
		})
		if err != nil {
			return nil, GetProjectResult{}, err
		}
		return nil, GetProjectResult{Project: *proj}, nil
	}
}

// RecordMonthInput upserts one monthly record.
type RecordMonthInput struct {
	ProjectID        string  `json:"project_id" jsonschema:"project identifier"`
	Month            string  `json:"month" jsonschema:"month formatted YYYY-MM"`
	ActualSales      float64 `json:"actual_sales"`
	TargetSales      float64 `json:"target_sales"`
	HospitalCoverage int     `json:"hospital_coverage"`
	Activities       string  `json:"activities,omitempty"`
}

func recordMonthHandler(svc ProjectService) sdkmcp.ToolHandlerFor[RecordMonthInput, GetProjectResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input RecordMonthInput) (*sdkmcp.CallToolResult, GetProjectResult, error) {
		err := svc.RecordMonth(ctx, input.ProjectID, project.MonthlyRecord{
			Month:            input.Month,
			ActualSales:      input.ActualSales,
			TargetSales:      input.TargetSales,
			HospitalCoverage: input.HospitalCoverage,
			Activities:       input.Activities,
		})
		if err != nil {
			return nil, GetProjectResult{}, err
		}
		proj, err := svc.Get(ctx, input.ProjectID)
		if err != nil {
			return nil, GetProjectResult{}, err
		}
		return nil, GetProjectResult{Project: *proj}, nil
	}
}

// DashboardInput has no parameters.
type DashboardInput struct{}

func dashboardHandler(svc ProjectService) sdkmcp.ToolHandlerFor[DashboardInput, metrics.Summary] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ DashboardInput) (*sdkmcp.CallToolResult, metrics.Summary, error) {
		projects, err := svc.GetAll(ctx)
		if err != nil {
			return nil, metrics.Summary{}, err
		}
		return nil, metrics.Summarize(projects, dashboardTopN), nil
	}
}

// ReportInput identifies the project to report on.
type ReportInput struct {
	ProjectID string `json:"project_id" jsonschema:"project identifier"`
}

// ReportResult carries the generated report text (Markdown).
type ReportResult struct {
	ProjectID string `json:"project_id"`
	Report    string `json:"report"`
}

func reportHandler(projects ProjectService, reports ReportService) sdkmcp.ToolHandlerFor[ReportInput, ReportResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ReportInput) (*sdkmcp.CallToolResult, ReportResult, error) {
		proj, err := projects.Get(ctx, input.ProjectID)
		if err != nil {
			return nil, ReportResult{}, err
		}
		text, err := reports.Generate(ctx, *proj)
		if err != nil {
			return nil, ReportResult{}, fmt.Errorf("report for %s: %w", input.ProjectID, err)
		}
		return nil, ReportResult{ProjectID: proj.ID, Report: text}, nil
	}
}
