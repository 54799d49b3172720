package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pipetrak/models"
	"pipetrak/utils"
)

// ActivityLogRepository records report exports and configuration changes.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Record(ctx context.Context, entry *models.ActivityLogGorm) error {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// ListByProject returns one page of a project's log, newest first, and the
// total number of entries.
func (r *ActivityLogRepository) ListByProject(ctx context.Context, projectID string, page, limit int) ([]models.ActivityLogGorm, int64, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.DefaultQueryTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.ActivityLogGorm{}).Where("project_id = ?", projectID)
	}
	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	logs := []models.ActivityLogGorm{}
	if err := scoped().Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}
	return logs, total, nil
}
