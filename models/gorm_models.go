package models

import (
	"time"
)

// GORM-compatible models with proper tags

// ActivityLogGorm represents the activity_log table with GORM tags
type ActivityLogGorm struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
	UserID       string    `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`
	IPAddress    string    `gorm:"column:ip_address" json:"ip_address"`
	EventContext string    `gorm:"column:event_context;not null" json:"event_context"`
	EventName    string    `gorm:"column:event_name;not null" json:"event_name"`
	Description  string    `gorm:"column:description;not null" json:"description"`
	ProjectID    string    `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
}

// TableName specifies the table name for ActivityLogGorm
func (ActivityLogGorm) TableName() string {
	return "activity_log"
}

// MilestoneWeightOverrideGorm represents the milestone_weight_overrides table with GORM tags.
// One row per (project, component type, milestone).
type MilestoneWeightOverrideGorm struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     string    `gorm:"column:project_id;type:varchar(36);not null;uniqueIndex:idx_weight_override" json:"project_id"`
	ComponentType string    `gorm:"column:component_type;type:varchar(32);not null;uniqueIndex:idx_weight_override" json:"component_type"`
	Milestone     string    `gorm:"column:milestone;not null;uniqueIndex:idx_weight_override" json:"milestone"`
	Weight        float64   `gorm:"column:weight;not null" json:"weight"`
	UpdatedBy     string    `gorm:"column:updated_by;type:varchar(64)" json:"updated_by"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for MilestoneWeightOverrideGorm
func (MilestoneWeightOverrideGorm) TableName() string {
	return "milestone_weight_overrides"
}
