package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medlink/pharmtrack/internal/domain/metrics"
	"github.com/medlink/pharmtrack/internal/domain/project"
	"github.com/medlink/pharmtrack/internal/domain/report"
)

// dashboardTopN bounds the ranking chart on the dashboard payload.
const dashboardTopN = 5

// ProjectService defines project operations needed by the HTTP API.
type ProjectService interface {
	GetAll(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, p project.Project) error
	RecordMonth(ctx context.Context, projectID string, rec project.MonthlyRecord) error
}

// ReportService defines report generation needed by the HTTP API.
type ReportService interface {
	Generate(ctx context.Context, p project.Project) (string, error)
}

// Server wires HTTP handlers.
type Server struct {
	projects ProjectService
	reports  ReportService
	logger   *slog.Logger
}

// NewRouter creates the API router.
func NewRouter(projects ProjectService, reports ReportService, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{projects: projects, reports: reports, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", srv.handleDashboard)
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", srv.handleListProjects)
			r.Post("/", srv.handleCreateProject)
			r.Get("/{id}", srv.handleGetProject)
			r.Put("/{id}", srv.handleUpdateProject)
			r.Post("/{id}/months", srv.handleRecordMonth)
			r.Post("/{id}/report", srv.handleReport)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.GetAll(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	term := r.URL.Query().Get("q")
	status := project.Status(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, project.Filter(projects, term, status))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	proj, err := s.projects.Create(r.Context(), project.CreateRequest{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Products:     req.Products,
		Description:  req.Description,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	p := req.toProject(chi.URLParam(r, "id"))
	if err := s.projects.Update(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}

	// Re-read so the response reflects persisted truth.
	proj, err := s.projects.Get(r.Context(), p.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleRecordMonth(w http.ResponseWriter, r *http.Request) {
	var req MonthlyRecordRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	err := s.projects.RecordMonth(r.Context(), id, project.MonthlyRecord{
		Month:            req.Month,
		ActualSales:      req.ActualSales,
		TargetSales:      req.TargetSales,
		HospitalCoverage: req.HospitalCoverage,
		Activities:       req.Activities,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	proj, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.GetAll(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.Summarize(projects, dashboardTopN))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	text, err := s.reports.Generate(r.Context(), *proj)
	if err != nil {
		if errors.Is(err, report.ErrReportInFlight) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ReportResponse{ProjectID: proj.ID, Report: text})
}
