package mocks

import (
	"context"

	"github.com/medlink/pharmtrack/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// CollectionStore is a mock for repository.CollectionStore.
type CollectionStore struct {
	mock.Mock
}

func (m *CollectionStore) Load(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]project.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CollectionStore) Save(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// Generator is a mock for report.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
