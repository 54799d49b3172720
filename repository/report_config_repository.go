package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pipetrak/models"
	"pipetrak/utils"
)

// ReportConfigRepository persists saved report configurations. It knows
// nothing about ownership; callers decide who may change a row.
type ReportConfigRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportConfigRepository(db *gorm.DB) *ReportConfigRepository {
	return &ReportConfigRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Create assigns an id and timestamps and inserts the configuration.
func (r *ReportConfigRepository) Create(ctx context.Context, cfg *models.ReportConfiguration) error {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	now := r.now()
	cfg.ID = uuid.NewString()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	row, err := cfg.ToGorm()
	if err != nil {
		return fmt.Errorf("encode report config: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create report config: %w", err)
	}
	return nil
}

func (r *ReportConfigRepository) Get(ctx context.Context, id string) (models.ReportConfiguration, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var row models.ReportConfigGorm
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ReportConfiguration{}, ErrNotFound
	}
	if err != nil {
		return models.ReportConfiguration{}, fmt.Errorf("get report config: %w", err)
	}
	return row.ToAPI()
}

// ListByProject returns the project's configurations ordered by name.
func (r *ReportConfigRepository) ListByProject(ctx context.Context, projectID string) ([]models.ReportConfiguration, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.DefaultQueryTimeout)
	defer cancel()

	var rows []models.ReportConfigGorm
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list report configs: %w", err)
	}
	out := make([]models.ReportConfiguration, 0, len(rows))
	for _, row := range rows {
		cfg, err := row.ToAPI()
		if err != nil {
			return nil, fmt.Errorf("decode report config %s: %w", row.ID, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

// Update rewrites the name, dimension and filters of an existing
// configuration. Owner, project and creation time are immutable.
func (r *ReportConfigRepository) Update(ctx context.Context, cfg *models.ReportConfiguration) error {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	row, err := cfg.ToGorm()
	if err != nil {
		return fmt.Errorf("encode report config: %w", err)
	}
	cfg.UpdatedAt = r.now()

	res := r.db.WithContext(ctx).Model(&models.ReportConfigGorm{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]interface{}{
			"name":               row.Name,
			"grouping_dimension": row.GroupingDimension,
			"filters":            row.Filters,
			"updated_at":         cfg.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrDuplicate
		}
		return fmt.Errorf("update report config: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReportConfigRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ReportConfigGorm{})
	if res.Error != nil {
		return fmt.Errorf("delete report config: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
