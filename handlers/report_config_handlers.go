package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pipetrak/models"
	"pipetrak/services"
	"pipetrak/utils"
)

// reportConfigInput is the writable part of a saved configuration.
type reportConfigInput struct {
	Name              string                 `json:"name" binding:"required"`
	GroupingDimension string                 `json:"grouping_dimension" binding:"required"`
	Filters           models.ComponentFilter `json:"filters"`
}

func bindReportConfig(c *gin.Context, reports ReportGenerator) (reportConfigInput, models.GroupingDimension, bool) {
	var in reportConfigInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body", err)
		return in, "", false
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		badRequest(c, "name is required", nil)
		return in, "", false
	}
	dimension, err := models.ParseGroupingDimension(in.GroupingDimension)
	if err != nil {
		badRequest(c, "Invalid grouping_dimension", err)
		return in, "", false
	}
	if err := validateFilter(reports.Catalog(), in.Filters); err != nil {
		badRequest(c, "Invalid filters", err)
		return in, "", false
	}
	return in, dimension, true
}

// loadOwnedConfig fetches :id and, when write is set, checks the caller
// created it.
func loadOwnedConfig(c *gin.Context, store ReportConfigStore, write bool) (models.ReportConfiguration, bool) {
	user, ok := mustUser(c)
	if !ok {
		return models.ReportConfiguration{}, false
	}
	cfg, err := store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return cfg, false
	}
	if write && cfg.CreatedBy != user.UserID {
		utils.ErrorResponse(c, http.StatusForbidden, "forbidden", "Only the creator may change this report configuration", "")
		return cfg, false
	}
	return cfg, true
}

// ListReportConfigs godoc
// @Summary      List saved report configurations
// @Tags         report-configs
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {object}  models.ReportConfigListResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/report-configs [get]
func ListReportConfigs(store ReportConfigStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		configs, err := store.ListByProject(c.Request.Context(), projectID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ReportConfigListResponse{Success: true, Message: "Success", Data: configs})
	}
}

// CreateReportConfig godoc
// @Summary      Save a report configuration
// @Tags         report-configs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  path  string                      true  "Project ID"
// @Param        body        body  models.ReportConfiguration  true  "Name, dimension and filters"
// @Success      201  {object}  models.ReportConfigResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/report-configs [post]
func CreateReportConfig(reports ReportGenerator, store ReportConfigStore, activity ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := mustUser(c)
		if !ok {
			return
		}
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		in, dimension, ok := bindReportConfig(c, reports)
		if !ok {
			return
		}

		cfg := models.ReportConfiguration{
			ProjectID:         projectID,
			Name:              in.Name,
			GroupingDimension: dimension,
			Filters:           in.Filters,
			CreatedBy:         user.UserID,
		}
		if err := store.Create(c.Request.Context(), &cfg); err != nil {
			respondError(c, err)
			return
		}
		logActivity(c, activity, projectID, "report_config", "report_config_created",
			fmt.Sprintf("Report configuration %q created", cfg.Name))
		c.JSON(http.StatusCreated, models.ReportConfigResponse{Success: true, Message: "Report configuration created", Data: &cfg})
	}
}

// GetReportConfig godoc
// @Summary      Get a saved report configuration
// @Tags         report-configs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Configuration ID"
// @Success      200  {object}  models.ReportConfigResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/report-configs/{id} [get]
func GetReportConfig(store ReportConfigStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := loadOwnedConfig(c, store, false)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, models.ReportConfigResponse{Success: true, Message: "Success", Data: &cfg})
	}
}

// UpdateReportConfig godoc
// @Summary      Update a saved report configuration
// @Description  Only the creator may update a configuration
// @Tags         report-configs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "Configuration ID"
// @Param        body  body  models.ReportConfiguration  true  "Name, dimension and filters"
// @Success      200  {object}  models.ReportConfigResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/report-configs/{id} [put]
func UpdateReportConfig(reports ReportGenerator, store ReportConfigStore, activity ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := loadOwnedConfig(c, store, true)
		if !ok {
			return
		}
		in, dimension, ok := bindReportConfig(c, reports)
		if !ok {
			return
		}
		cfg.Name = in.Name
		cfg.GroupingDimension = dimension
		cfg.Filters = in.Filters
		if err := store.Update(c.Request.Context(), &cfg); err != nil {
			respondError(c, err)
			return
		}
		logActivity(c, activity, cfg.ProjectID, "report_config", "report_config_updated",
			fmt.Sprintf("Report configuration %q updated", cfg.Name))
		c.JSON(http.StatusOK, models.ReportConfigResponse{Success: true, Message: "Report configuration updated", Data: &cfg})
	}
}

// DeleteReportConfig godoc
// @Summary      Delete a saved report configuration
// @Description  Only the creator may delete a configuration
// @Tags         report-configs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Configuration ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/report-configs/{id} [delete]
func DeleteReportConfig(store ReportConfigStore, activity ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := loadOwnedConfig(c, store, true)
		if !ok {
			return
		}
		if err := store.Delete(c.Request.Context(), cfg.ID); err != nil {
			respondError(c, err)
			return
		}
		logActivity(c, activity, cfg.ProjectID, "report_config", "report_config_deleted",
			fmt.Sprintf("Report configuration %q deleted", cfg.Name))
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Report configuration deleted successfully"})
	}
}

// RunReportConfig godoc
// @Summary      Run a saved report configuration
// @Description  JSON report, or an export file when format is given
// @Tags         report-configs
// @Produce      json
// @Security     BearerAuth
// @Param        id          path   string  true   "Configuration ID"
// @Param        format      query  string  false  "csv | xlsx | pdf"
// @Param        on_invalid  query  string  false  "abort | skip"  default(abort)
// @Success      200  {object}  models.ProgressReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/report-configs/{id}/report [get]
func RunReportConfig(store ReportConfigStore, deps ReportDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := loadOwnedConfig(c, store, false)
		if !ok {
			return
		}
		policy, err := services.ParseInvalidPolicy(c.Query("on_invalid"))
		if err != nil {
			badRequest(c, "Invalid on_invalid", err)
			return
		}
		var format services.ExportFormat
		if f := c.Query("format"); f != "" {
			if format, err = services.ParseExportFormat(f); err != nil {
				badRequest(c, "Invalid format", err)
				return
			}
		}

		report, err := deps.Reports.Generate(c.Request.Context(), services.ReportRequest{
			ProjectID: cfg.ProjectID,
			Dimension: cfg.GroupingDimension,
			Filter:    cfg.Filters,
			OnInvalid: policy,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		if format == "" {
			c.JSON(http.StatusOK, report)
			return
		}
		sendExport(c, deps, cfg.ProjectID, report, format)
	}
}
