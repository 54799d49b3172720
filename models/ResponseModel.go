package models

// Swagger / API docs: common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Code    string `json:"code,omitempty" example:"validation_error"`
	Details string `json:"details,omitempty" example:""`
}

// MessageResponse is used in @Success for plain acknowledgements
type MessageResponse struct {
	Message string `json:"message" example:"Report configuration deleted successfully"`
}

type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	PageSize     int  `json:"page_size"`
	TotalRecords int  `json:"total_records"`
	TotalPages   int  `json:"total_pages"`
	HasNext      bool `json:"has_next"`
	HasPrev      bool `json:"has_prev"`
}

// ActivityLogListResponse is used in @Success for the paginated activity log
type ActivityLogListResponse struct {
	Data       []ActivityLogGorm `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// MilestoneWeight is one (milestone, weight) pair in a weight override request.
type MilestoneWeight struct {
	Milestone string  `json:"milestone" binding:"required" example:"Erect"`
	Weight    float64 `json:"weight" example:"40"`
}

// MilestoneWeightsRequest is used in @Param for saving a component type's weights
type MilestoneWeightsRequest struct {
	Weights []MilestoneWeight `json:"weights" binding:"required"`
}

// ComponentTemplateResponse describes one component type's effective milestone set
type ComponentTemplateResponse struct {
	ComponentType ComponentType         `json:"component_type" example:"spool"`
	Milestones    []MilestoneDefinition `json:"milestones"`
	TotalWeight   float64               `json:"total_weight" example:"100"`
}

// EmailReportRequest is used in @Param for e-mailing a report
type EmailReportRequest struct {
	Recipients []string `json:"recipients" binding:"required" example:"pm@example.com"`
	Dimension  string   `json:"dimension" example:"area"`
	Format     string   `json:"format" example:"pdf"`
	Message    string   `json:"message" example:"Weekly progress attached."`
}
