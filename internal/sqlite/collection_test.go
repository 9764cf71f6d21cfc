package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medlink/pharmtrack/internal/domain/project"
)

func TestCollectionStore_SeedsOnFirstLoad(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	projects, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 9)
	require.Equal(t, "p1", projects[0].ID)
	require.Contains(t, projects[0].Manufacturer, "辉瑞")

	// The seed was persisted, not just returned.
	var raw string
	err = db.QueryRow(`SELECT value FROM kv WHERE key = 'pharma_projects'`).Scan(&raw)
	require.NoError(t, err)

	var env struct {
		Version  int               `json:"version"`
		Projects []project.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	require.Equal(t, 1, env.Version)
	require.Len(t, env.Projects, 9)
}

func TestCollectionStore_LoadIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	first, err := store.Load(ctx)
	require.NoError(t, err)
	second, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCollectionStore_SaveRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	projects := []project.Project{
		{
			ID:           "x1",
			Name:         "测试项目",
			Manufacturer: "测试药企",
			Status:       project.StatusPending,
			MonthlyData: []project.MonthlyRecord{
				{Month: "2024-01", ActualSales: 1000, TargetSales: 2000, HospitalCoverage: 3, Activities: "试点"},
			},
		},
	}
	require.NoError(t, store.Save(ctx, projects))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, projects, loaded)

	// Save overwrites the whole collection.
	require.NoError(t, store.Save(ctx, projects[:0]))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestCollectionStore_CorruptDataReseeds(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('pharma_projects', '{not json')`)
	require.NoError(t, err)

	projects, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 9)

	// The slot was rewritten with the seed.
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, projects, loaded)
}

func TestCollectionStore_UnknownVersionReseeds(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('pharma_projects', '{"version":7,"projects":[]}')`)
	require.NoError(t, err)

	projects, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 9)
}

func TestCollectionStore_LegacyArrayMigrates(t *testing.T) {
	db := NewTestDB(t)
	store := NewCollectionStore(db, nil)
	ctx := context.Background()

	legacy := `[{"id":"old1","name":"历史项目","manufacturer":"老厂家","products":"",` +
		`"startDate":"2022-01-01","status":"Completed","description":"","monthlyData":[]}]`
	_, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('pharma_projects', ?)`, legacy)
	require.NoError(t, err)

	projects, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "old1", projects[0].ID)
	require.Equal(t, project.StatusCompleted, projects[0].Status)
}
