package project

import "context"

// Store provides persistence for the project collection. The whole
// collection is read and written as one unit.
type Store interface {
	Load(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
}
