package handlers

import (
	"github.com/gin-gonic/gin"
)

// API holds the dependencies of every route.
type API struct {
	JWTSecret     string
	Reports       ReportGenerator
	Configs       ReportConfigStore
	Weights       WeightOverrideStore
	Activity      ActivityStore
	Archive       ExportStore
	Mailer        ReportMailer
	ProductPrefix string
}

func (a API) reportDeps() ReportDeps {
	return ReportDeps{
		Reports:       a.Reports,
		Archive:       a.Archive,
		Activity:      a.Activity,
		Mailer:        a.Mailer,
		ProductPrefix: a.ProductPrefix,
	}
}

// Register mounts the API on r.
func (a API) Register(r *gin.Engine) {
	r.GET("/health", Health())

	api := r.Group("/api", RequireUser(a.JWTSecret))

	// ==================== CATALOG & WEIGHTS ====================
	api.GET("/catalog", GetCatalog(a.Reports))
	api.GET("/projects/:project_id/milestone-weights", GetMilestoneWeights(a.Reports))
	api.PUT("/projects/:project_id/milestone-weights/:component_type", PutMilestoneWeights(a.Reports, a.Weights, a.Activity))
	api.DELETE("/projects/:project_id/milestone-weights/:component_type", ResetMilestoneWeights(a.Reports, a.Weights, a.Activity))

	// ==================== PROGRESS REPORT ====================
	api.GET("/projects/:project_id/progress-report", GetProgressReport(a.Reports))
	api.GET("/projects/:project_id/progress-report/export", ExportProgressReport(a.reportDeps()))
	api.POST("/projects/:project_id/progress-report/email", EmailProgressReport(a.reportDeps()))

	// ==================== SAVED CONFIGURATIONS ====================
	api.GET("/projects/:project_id/report-configs", ListReportConfigs(a.Configs))
	api.POST("/projects/:project_id/report-configs", CreateReportConfig(a.Reports, a.Configs, a.Activity))
	api.GET("/report-configs/:id", GetReportConfig(a.Configs))
	api.PUT("/report-configs/:id", UpdateReportConfig(a.Reports, a.Configs, a.Activity))
	api.DELETE("/report-configs/:id", DeleteReportConfig(a.Configs, a.Activity))
	api.GET("/report-configs/:id/report", RunReportConfig(a.Configs, a.reportDeps()))

	// ==================== ACTIVITY & ARCHIVE ====================
	api.GET("/projects/:project_id/activity-logs", GetActivityLogs(a.Activity))
	api.GET("/projects/:project_id/exports/:name", DownloadExport(a.Archive))
}
