package repository

import (
	"context"

	"github.com/medlink/pharmtrack/internal/domain/project"
)

// CollectionStore persists the project collection as one unit. Load
// seeds storage on first access and recovers from undecodable data by
// re-seeding; it does not fail under normal operation.
type CollectionStore interface {
	Load(ctx context.Context) ([]project.Project, error)
	Save(ctx context.Context, projects []project.Project) error
}
