package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/medlink/pharmtrack/internal/domain/project"
	"github.com/medlink/pharmtrack/internal/repository"
)

// collectionKey is the fixed slot holding the serialized collection.
const collectionKey = "pharma_projects"

// envelopeVersion tags the persisted format so later field additions
// can migrate old data instead of silently misreading it.
const envelopeVersion = 1

type envelope struct {
	Version  int               `json:"version"`
	Projects []project.Project `json:"projects"`
}

// CollectionStore implements repository.CollectionStore over a single
// key/value slot. The whole collection is serialized and overwritten
// on every save; there is no partial update.
type CollectionStore struct {
	db     *DB
	logger *slog.Logger
	seed   func() []project.Project
}

var _ repository.CollectionStore = (*CollectionStore)(nil)

// NewCollectionStore creates a new CollectionStore seeded with the
// default portfolio.
func NewCollectionStore(db *DB, logger *slog.Logger) *CollectionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionStore{db: db, logger: logger, seed: SeedProjects}
}

// Load returns the persisted collection. An absent slot is seeded with
// the default collection; undecodable data is logged and re-seeded
// rather than propagated as a crash.
func (s *CollectionStore) Load(ctx context.Context) ([]project.Project, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, collectionKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return s.reseed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	projects, err := decodeCollection([]byte(raw))
	if err != nil {
		s.logger.Warn("persisted collection is undecodable, re-seeding", "error", err)
		return s.reseed(ctx)
	}
	return projects, nil
}

// Save serializes and overwrites the entire persisted collection.
func (s *CollectionStore) Save(ctx context.Context, projects []project.Project) error {
	data, err := json.Marshal(envelope{Version: envelopeVersion, Projects: projects})
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, collectionKey, string(data)); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

func (s *CollectionStore) reseed(ctx context.Context) ([]project.Project, error) {
	projects := s.seed()
	if err := s.Save(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to seed collection: %w", err)
	}
	s.logger.Info("seeded project collection", "projects", len(projects))
	return projects, nil
}

// decodeCollection parses a persisted value. A bare JSON array is the
// pre-envelope legacy format and is accepted as version 0.
func decodeCollection(data []byte) ([]project.Project, error) {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			var legacy []project.Project
			if err := json.Unmarshal(data, &legacy); err != nil {
				return nil, fmt.Errorf("%w: legacy collection: %v", repository.ErrCorruptData, err)
			}
			return legacy, nil
		}
		break
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: collection envelope: %v", repository.ErrCorruptData, err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported collection version %d", repository.ErrCorruptData, env.Version)
	}
	return env.Projects, nil
}
