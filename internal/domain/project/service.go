package project

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service handles project operations. It owns the authoritative
// in-memory view of the collection for the duration of each call;
// every mutation is a full read-modify-write of the persisted
// collection, serialized through mu so concurrent callers cannot
// interleave their read and write.
type Service struct {
	store  Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewService creates a new project service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name         string
	Manufacturer string
	Products     string
	Description  string
}

// GetAll returns the full collection.
func (s *Service) GetAll(ctx context.Context) ([]Project, error) {
	projects, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	return projects, nil
}

// Get fetches a single project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	projects, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i].Clone()
			return &p, nil
		}
	}
	return nil, ErrProjectNotFound
}

// Create constructs a new project with a fresh unique id, Active
// status, today's start date and no monthly data, appends it to the
// collection and persists.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	proj := Project{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Products:     req.Products,
		StartDate:    time.Now().Format("2006-01-02"),
		Status:       StatusActive,
		Description:  req.Description,
		MonthlyData:  []MonthlyRecord{},
	}

	projects = append(projects, proj)
	if err := s.store.Save(ctx, projects); err != nil {
		return nil, fmt.Errorf("saving projects: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "name", proj.Name)
	out := proj.Clone()
	return &out, nil
}

// Update replaces the stored project matching p.ID, or appends it if
// no match exists (upsert-by-id). Monthly records are stored sorted
// ascending by month; duplicate months are rejected.
func (s *Service) Update(ctx context.Context, p Project) error {
	if err := ValidateProject(p); err != nil {
		return err
	}

	sort.Slice(p.MonthlyData, func(i, j int) bool {
		return p.MonthlyData[i].Month < p.MonthlyData[j].Month
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, p)
	}

	if err := s.store.Save(ctx, projects); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}
	return nil
}

// RecordMonth upserts a monthly record on the identified project. A
// record for an existing month replaces the old entry in place; a new
// month is appended and the sequence re-sorted ascending by month.
func (s *Service) RecordMonth(ctx context.Context, projectID string, rec MonthlyRecord) error {
	if err := ValidateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	idx := -1
	for i := range projects {
		if projects[i].ID == projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProjectNotFound
	}

	proj := &projects[idx]
	replaced := false
	for i := range proj.MonthlyData {
		if proj.MonthlyData[i].Month == rec.Month {
			proj.MonthlyData[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		proj.MonthlyData = append(proj.MonthlyData, rec)
		sort.Slice(proj.MonthlyData, func(i, j int) bool {
			return proj.MonthlyData[i].Month < proj.MonthlyData[j].Month
		})
	}

	if err := s.store.Save(ctx, projects); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}

	s.logger.Info("monthly record saved", "project", projectID, "month", rec.Month, "replaced", replaced)
	return nil
}
