package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"pipetrak/models"
	"pipetrak/utils"
)

// WeightOverrideRepository stores per-project milestone weight edits.
type WeightOverrideRepository struct {
	db *gorm.DB
}

func NewWeightOverrideRepository(db *gorm.DB) *WeightOverrideRepository {
	return &WeightOverrideRepository{db: db}
}

// ListByProject returns all overrides of a project, keyed by component type
// and then milestone name.
func (r *WeightOverrideRepository) ListByProject(ctx context.Context, projectID string) (map[models.ComponentType]map[string]float64, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var rows []models.MilestoneWeightOverrideGorm
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list weight overrides: %w", err)
	}
	out := make(map[models.ComponentType]map[string]float64)
	for _, row := range rows {
		ct := models.ComponentType(row.ComponentType)
		if out[ct] == nil {
			out[ct] = make(map[string]float64)
		}
		out[ct][row.Milestone] = row.Weight
	}
	return out, nil
}

// Replace swaps the full weight set of one component type in a single
// transaction. Validation is the caller's job.
func (r *WeightOverrideRepository) Replace(ctx context.Context, projectID string, ct models.ComponentType, weights map[string]float64, userID string) error {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ? AND component_type = ?", projectID, string(ct)).
			Delete(&models.MilestoneWeightOverrideGorm{}).Error; err != nil {
			return fmt.Errorf("clear weight overrides: %w", err)
		}
		if len(names) == 0 {
			return nil
		}
		rows := make([]models.MilestoneWeightOverrideGorm, 0, len(names))
		for _, name := range names {
			rows = append(rows, models.MilestoneWeightOverrideGorm{
				ProjectID:     projectID,
				ComponentType: string(ct),
				Milestone:     name,
				Weight:        weights[name],
				UpdatedBy:     userID,
				UpdatedAt:     now,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert weight overrides: %w", err)
		}
		return nil
	})
}

// Reset drops a component type's overrides, restoring catalog defaults.
func (r *WeightOverrideRepository) Reset(ctx context.Context, projectID string, ct models.ComponentType) error {
	return r.Replace(ctx, projectID, ct, nil, "")
}
