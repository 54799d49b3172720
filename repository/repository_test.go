package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pipetrak/models"
	"pipetrak/storage"
)

func newTestGorm(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := storage.InitSQLiteGormDB(":memory:", "silent")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestReportConfigRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewReportConfigRepository(newTestGorm(t))

	cfg := &models.ReportConfiguration{
		ProjectID:         "p1",
		Name:              "Weekly by area",
		GroupingDimension: models.DimensionArea,
		Filters:           models.ComponentFilter{ComponentTypes: []models.ComponentType{models.ComponentSpool}},
		CreatedBy:         "u1",
	}
	require.NoError(t, repo.Create(ctx, cfg))
	require.NotEmpty(t, cfg.ID)
	assert.False(t, cfg.CreatedAt.IsZero())

	got, err := repo.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly by area", got.Name)
	assert.Equal(t, "u1", got.CreatedBy)
	assert.Equal(t, []models.ComponentType{models.ComponentSpool}, got.Filters.ComponentTypes)

	got.Name = "Weekly by system"
	got.GroupingDimension = models.DimensionSystem
	got.Filters = models.ComponentFilter{}
	require.NoError(t, repo.Update(ctx, &got))

	again, err := repo.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly by system", again.Name)
	assert.Equal(t, models.DimensionSystem, again.GroupingDimension)
	assert.True(t, again.Filters.IsZero())

	require.NoError(t, repo.Delete(ctx, cfg.ID))
	_, err = repo.Get(ctx, cfg.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, cfg.ID), ErrNotFound)

	missing := models.ReportConfiguration{ID: "nope", Name: "x", GroupingDimension: models.DimensionArea}
	assert.ErrorIs(t, repo.Update(ctx, &missing), ErrNotFound)
}

func TestReportConfigRepository_DuplicateNamePerProject(t *testing.T) {
	ctx := context.Background()
	repo := NewReportConfigRepository(newTestGorm(t))

	mk := func(project string) *models.ReportConfiguration {
		return &models.ReportConfiguration{ProjectID: project, Name: "Mine", GroupingDimension: models.DimensionArea, CreatedBy: "u"}
	}
	require.NoError(t, repo.Create(ctx, mk("p1")))
	assert.ErrorIs(t, repo.Create(ctx, mk("p1")), ErrDuplicate)
	assert.NoError(t, repo.Create(ctx, mk("p2")))
}

func TestReportConfigRepository_ListByProject(t *testing.T) {
	ctx := context.Background()
	repo := NewReportConfigRepository(newTestGorm(t))
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, repo.Create(ctx, &models.ReportConfiguration{ProjectID: "p1", Name: name, GroupingDimension: models.DimensionArea, CreatedBy: "u"}))
	}
	require.NoError(t, repo.Create(ctx, &models.ReportConfiguration{ProjectID: "p2", Name: "other", GroupingDimension: models.DimensionArea, CreatedBy: "u"}))

	list, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "c", list[2].Name)

	empty, err := repo.ListByProject(ctx, "p3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWeightOverrideRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWeightOverrideRepository(newTestGorm(t))

	require.NoError(t, repo.Replace(ctx, "p1", models.ComponentSpool, map[string]float64{"Erect": 45, "Connect": 35}, "u1"))
	require.NoError(t, repo.Replace(ctx, "p1", models.ComponentValve, map[string]float64{"Install": 70}, "u1"))
	require.NoError(t, repo.Replace(ctx, "p2", models.ComponentSpool, map[string]float64{"Erect": 1}, "u1"))

	got, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[models.ComponentType]map[string]float64{
		models.ComponentSpool: {"Erect": 45, "Connect": 35},
		models.ComponentValve: {"Install": 70},
	}, got)

	require.NoError(t, repo.Replace(ctx, "p1", models.ComponentSpool, map[string]float64{"Erect": 50}, "u2"))
	got, err = repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Erect": 50}, got[models.ComponentSpool])

	require.NoError(t, repo.Reset(ctx, "p1", models.ComponentSpool))
	got, err = repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.NotContains(t, got, models.ComponentSpool)
	assert.Contains(t, got, models.ComponentValve)
}

func TestActivityLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(newTestGorm(t))

	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, &models.ActivityLogGorm{
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			UserID:       "u1",
			EventContext: "report",
			EventName:    "export",
			Description:  "exported",
			ProjectID:    "p1",
		}))
	}
	require.NoError(t, repo.Record(ctx, &models.ActivityLogGorm{UserID: "u1", EventContext: "report", EventName: "export", Description: "x", ProjectID: "p2"}))

	page, total, err := repo.ListByProject(ctx, "p1", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt))
	assert.Equal(t, base.Add(4*time.Hour), page[0].CreatedAt.UTC())

	last, _, err := repo.ListByProject(ctx, "p1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	none, total, err := repo.ListByProject(ctx, "missing", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}
