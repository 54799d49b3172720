package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ComponentFilter narrows the component universe before aggregation.
// Empty slices mean "no restriction".
type ComponentFilter struct {
	ComponentTypes []ComponentType `json:"component_types,omitempty"`
	AreaIDs        []string        `json:"area_ids,omitempty"`
	SystemIDs      []string        `json:"system_ids,omitempty"`
	TestPackageIDs []string        `json:"test_package_ids,omitempty"`
}

func (f ComponentFilter) IsZero() bool {
	return len(f.ComponentTypes) == 0 && len(f.AreaIDs) == 0 &&
		len(f.SystemIDs) == 0 && len(f.TestPackageIDs) == 0
}

// ReportConfigGorm represents the report_configs table with GORM tags
type ReportConfigGorm struct {
	ID                string         `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	ProjectID         string         `gorm:"column:project_id;type:varchar(36);not null;uniqueIndex:idx_report_config_project_name" json:"project_id"`
	Name              string         `gorm:"column:name;not null;uniqueIndex:idx_report_config_project_name" json:"name"`
	GroupingDimension string         `gorm:"column:grouping_dimension;type:varchar(20);not null" json:"grouping_dimension"`
	Filters           datatypes.JSON `gorm:"column:filters" json:"filters"`
	CreatedBy         string         `gorm:"column:created_by;type:varchar(64);not null;index" json:"created_by"`
	CreatedAt         time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for ReportConfigGorm
func (ReportConfigGorm) TableName() string {
	return "report_configs"
}

// ReportConfiguration is a saved (dimension, filters) tuple for re-use.
type ReportConfiguration struct {
	ID                string            `json:"id,omitempty" example:"0f3c1d0e-2d6e-4f8e-8a43-5c1e7d9d4a21"`
	ProjectID         string            `json:"project_id" example:"7e1b5c1a-0d53-4c8c-9a3f-3b2b0a6e9d10"`
	Name              string            `json:"name" binding:"required" example:"Weekly by area"`
	GroupingDimension GroupingDimension `json:"grouping_dimension" binding:"required" example:"area"`
	Filters           ComponentFilter   `json:"filters"`
	CreatedBy         string            `json:"created_by,omitempty" example:"user-42"`
	CreatedAt         time.Time         `json:"created_at,omitempty"`
	UpdatedAt         time.Time         `json:"updated_at,omitempty"`
}

// ToGorm converts the API shape into its table row.
func (rc ReportConfiguration) ToGorm() (ReportConfigGorm, error) {
	filters, err := json.Marshal(rc.Filters)
	if err != nil {
		return ReportConfigGorm{}, err
	}
	return ReportConfigGorm{
		ID:                rc.ID,
		ProjectID:         rc.ProjectID,
		Name:              rc.Name,
		GroupingDimension: string(rc.GroupingDimension),
		Filters:           datatypes.JSON(filters),
		CreatedBy:         rc.CreatedBy,
		CreatedAt:         rc.CreatedAt,
		UpdatedAt:         rc.UpdatedAt,
	}, nil
}

// ToAPI converts a table row into the API shape.
func (g ReportConfigGorm) ToAPI() (ReportConfiguration, error) {
	var filters ComponentFilter
	if len(g.Filters) > 0 && string(g.Filters) != "null" {
		if err := json.Unmarshal(g.Filters, &filters); err != nil {
			return ReportConfiguration{}, err
		}
	}
	return ReportConfiguration{
		ID:                g.ID,
		ProjectID:         g.ProjectID,
		Name:              g.Name,
		GroupingDimension: GroupingDimension(g.GroupingDimension),
		Filters:           filters,
		CreatedBy:         g.CreatedBy,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}, nil
}

// ReportConfigResponse represents the response for report configuration operations
type ReportConfigResponse struct {
	Success bool                 `json:"success" example:"true"`
	Message string               `json:"message" example:"Success"`
	Data    *ReportConfiguration `json:"data,omitempty"`
	Error   string               `json:"error,omitempty" example:""`
}

// ReportConfigListResponse represents the response for report configuration list operations
type ReportConfigListResponse struct {
	Success bool                  `json:"success" example:"true"`
	Message string                `json:"message" example:"Success"`
	Data    []ReportConfiguration `json:"data"`
	Error   string                `json:"error,omitempty" example:""`
}
