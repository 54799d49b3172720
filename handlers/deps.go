package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pipetrak/models"
	"pipetrak/progress"
	"pipetrak/repository"
	"pipetrak/services"
	"pipetrak/utils"
)

// ReportGenerator builds progress reports.
type ReportGenerator interface {
	Generate(ctx context.Context, req services.ReportRequest) (models.ProgressReport, error)
	Catalog() *progress.WeightCatalog
	CatalogFor(ctx context.Context, projectID string) (*progress.WeightCatalog, error)
}

// ReportConfigStore persists saved report configurations.
type ReportConfigStore interface {
	Create(ctx context.Context, cfg *models.ReportConfiguration) error
	Get(ctx context.Context, id string) (models.ReportConfiguration, error)
	ListByProject(ctx context.Context, projectID string) ([]models.ReportConfiguration, error)
	Update(ctx context.Context, cfg *models.ReportConfiguration) error
	Delete(ctx context.Context, id string) error
}

// WeightOverrideStore persists per-project milestone weights.
type WeightOverrideStore interface {
	Replace(ctx context.Context, projectID string, ct models.ComponentType, weights map[string]float64, userID string) error
	Reset(ctx context.Context, projectID string, ct models.ComponentType) error
}

// ActivityStore records and lists activity log entries.
type ActivityStore interface {
	Record(ctx context.Context, entry *models.ActivityLogGorm) error
	ListByProject(ctx context.Context, projectID string, page, limit int) ([]models.ActivityLogGorm, int64, error)
}

// ExportStore keeps generated export files for later download.
type ExportStore interface {
	Save(projectID, filename string, data []byte) (string, error)
	Path(projectID, name string) (string, error)
}

// ReportMailer sends reports by e-mail.
type ReportMailer interface {
	Enabled() bool
	SendReport(e services.ReportEmail) error
}

// respondError maps service and store errors onto HTTP answers.
func respondError(c *gin.Context, err error) {
	var cfgErr *progress.ConfigurationError
	var valErr *progress.ValidationError
	switch {
	case errors.As(err, &cfgErr):
		log.Printf("[report] configuration error: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "configuration_error", "Milestone configuration is invalid", err.Error())
	case errors.As(err, &valErr):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "validation_error", "Component data is invalid", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "not_found", "Not found", "")
	case errors.Is(err, repository.ErrDuplicate):
		utils.ErrorResponse(c, http.StatusConflict, "duplicate", "A report configuration with this name already exists", "")
	case errors.Is(err, context.DeadlineExceeded):
		utils.ErrorResponse(c, http.StatusGatewayTimeout, "timeout", "The request timed out", "")
	default:
		log.Printf("[http] %s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal_error", "Internal server error", "")
	}
}

func badRequest(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	utils.ErrorResponse(c, http.StatusBadRequest, "bad_request", message, details)
}

// projectParam reads and validates the :project_id path parameter.
func projectParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("project_id"))
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "Invalid project_id", err)
		return "", false
	}
	return id, true
}

// queryList collects a repeated or comma separated query parameter.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// filterFromQuery reads component_type, area_id, system_id and
// test_package_id.
func filterFromQuery(c *gin.Context) models.ComponentFilter {
	var f models.ComponentFilter
	for _, t := range queryList(c, "component_type") {
		f.ComponentTypes = append(f.ComponentTypes, models.ComponentType(strings.ToLower(t)))
	}
	f.AreaIDs = queryList(c, "area_id")
	f.SystemIDs = queryList(c, "system_id")
	f.TestPackageIDs = queryList(c, "test_package_id")
	return f
}

// validateFilter rejects component types the catalog does not know.
func validateFilter(catalog *progress.WeightCatalog, f models.ComponentFilter) error {
	for _, ct := range f.ComponentTypes {
		if _, ok := catalog.Template(ct); !ok {
			return errors.New("unknown component_type " + string(ct))
		}
	}
	return nil
}

// reportRequestFromQuery parses the common report query parameters.
func reportRequestFromQuery(c *gin.Context, projectID string, catalog *progress.WeightCatalog) (services.ReportRequest, bool) {
	dimension, err := models.ParseGroupingDimension(c.DefaultQuery("dimension", string(models.DimensionArea)))
	if err != nil {
		badRequest(c, "Invalid dimension", err)
		return services.ReportRequest{}, false
	}
	policy, err := services.ParseInvalidPolicy(c.Query("on_invalid"))
	if err != nil {
		badRequest(c, "Invalid on_invalid", err)
		return services.ReportRequest{}, false
	}
	filter := filterFromQuery(c)
	if err := validateFilter(catalog, filter); err != nil {
		badRequest(c, "Invalid filter", err)
		return services.ReportRequest{}, false
	}
	return services.ReportRequest{ProjectID: projectID, Dimension: dimension, Filter: filter, OnInvalid: policy}, true
}

// logActivity records an activity entry; failures are logged, never
// returned to the client.
func logActivity(c *gin.Context, store ActivityStore, projectID, eventContext, event, description string) {
	if store == nil {
		return
	}
	user, _ := CurrentUser(c)
	entry := &models.ActivityLogGorm{
		UserID:       user.UserID,
		IPAddress:    c.ClientIP(),
		EventContext: eventContext,
		EventName:    event,
		Description:  description,
		ProjectID:    projectID,
	}
	if err := store.Record(c.Request.Context(), entry); err != nil {
		log.Printf("[activity] failed to record %s for project %s: %v", event, projectID, err)
	}
}
