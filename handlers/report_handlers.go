package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pipetrak/models"
	"pipetrak/services"
	"pipetrak/utils"
)

// ReportDeps bundles what the report endpoints need. Archive, Activity and
// Mailer are optional.
type ReportDeps struct {
	Reports       ReportGenerator
	Archive       ExportStore
	Activity      ActivityStore
	Mailer        ReportMailer
	ProductPrefix string
}

// RenderExport renders report in format and returns the bytes together with
// the download file name.
func RenderExport(report models.ProgressReport, format services.ExportFormat, prefix string) ([]byte, string, error) {
	exporter, err := services.NewExporter(format, services.ExportOptions{ProductPrefix: prefix})
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := exporter.Export(&buf, report); err != nil {
		return nil, "", fmt.Errorf("render %s export: %w", format, err)
	}
	return buf.Bytes(), services.ExportFilename(prefix, report, format), nil
}

// sendExport renders, archives and streams one export file.
func sendExport(c *gin.Context, deps ReportDeps, projectID string, report models.ProgressReport, format services.ExportFormat) {
	data, filename, err := RenderExport(report, format, deps.ProductPrefix)
	if err != nil {
		respondError(c, err)
		return
	}

	if deps.Archive != nil {
		name, err := deps.Archive.Save(projectID, filename, data)
		if err != nil {
			log.Printf("[export] failed to archive %s: %v", filename, err)
		} else {
			c.Header("X-Archive-Name", name)
		}
	}
	logActivity(c, deps.Activity, projectID, "progress_report", "report_exported",
		fmt.Sprintf("Exported %s (%d components, %d%% complete)", filename, report.GrandTotal.Budget, report.GrandTotal.PctTotal))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// GetProgressReport godoc
// @Summary      Progress report
// @Description  Aggregates the project's components by area, system or test package
// @Tags         progress-report
// @Produce      json
// @Security     BearerAuth
// @Param        project_id       path   string  true   "Project ID"
// @Param        dimension        query  string  false  "area | system | test_package"  default(area)
// @Param        on_invalid       query  string  false  "abort | skip"  default(abort)
// @Param        component_type   query  string  false  "Component types, comma separated"
// @Param        area_id          query  string  false  "Area IDs, comma separated"
// @Param        system_id        query  string  false  "System IDs, comma separated"
// @Param        test_package_id  query  string  false  "Test package IDs, comma separated"
// @Success      200  {object}  models.ProgressReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/progress-report [get]
func GetProgressReport(reports ReportGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		req, ok := reportRequestFromQuery(c, projectID, reports.Catalog())
		if !ok {
			return
		}
		report, err := reports.Generate(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// ExportProgressReport godoc
// @Summary      Export progress report
// @Description  Same selection as the JSON report, rendered as CSV, XLSX or PDF
// @Tags         progress-report
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        project_id  path   string  true   "Project ID"
// @Param        format      query  string  true   "csv | xlsx | pdf"
// @Param        dimension   query  string  false  "area | system | test_package"  default(area)
// @Param        on_invalid  query  string  false  "abort | skip"  default(abort)
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/progress-report/export [get]
func ExportProgressReport(deps ReportDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		format, err := services.ParseExportFormat(c.Query("format"))
		if err != nil {
			badRequest(c, "Invalid format", err)
			return
		}
		req, ok := reportRequestFromQuery(c, projectID, deps.Reports.Catalog())
		if !ok {
			return
		}
		report, err := deps.Reports.Generate(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		sendExport(c, deps, projectID, report, format)
	}
}

// EmailProgressReport godoc
// @Summary      E-mail progress report
// @Description  Sends the report summary with the export attached
// @Tags         progress-report
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  path   string                     true   "Project ID"
// @Param        on_invalid  query  string                     false  "abort | skip"  default(abort)
// @Param        body        body   models.EmailReportRequest  true   "Recipients and format"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/progress-report/email [post]
func EmailProgressReport(deps ReportDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		if deps.Mailer == nil || !deps.Mailer.Enabled() {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "email_disabled", "E-mail is not configured", "")
			return
		}

		var body models.EmailReportRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		recipients, err := services.ParseRecipients(body.Recipients)
		if err != nil {
			badRequest(c, "Invalid recipients", err)
			return
		}
		dimension := models.DimensionArea
		if strings.TrimSpace(body.Dimension) != "" {
			if dimension, err = models.ParseGroupingDimension(body.Dimension); err != nil {
				badRequest(c, "Invalid dimension", err)
				return
			}
		}
		format := services.FormatPDF
		if strings.TrimSpace(body.Format) != "" {
			if format, err = services.ParseExportFormat(body.Format); err != nil {
				badRequest(c, "Invalid format", err)
				return
			}
		}
		policy, err := services.ParseInvalidPolicy(c.Query("on_invalid"))
		if err != nil {
			badRequest(c, "Invalid on_invalid", err)
			return
		}

		report, err := deps.Reports.Generate(c.Request.Context(), services.ReportRequest{
			ProjectID: projectID,
			Dimension: dimension,
			OnInvalid: policy,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		data, filename, err := RenderExport(report, format, deps.ProductPrefix)
		if err != nil {
			respondError(c, err)
			return
		}

		err = deps.Mailer.SendReport(services.ReportEmail{
			Recipients:  recipients,
			Message:     body.Message,
			Report:      report,
			Filename:    filename,
			ContentType: format.ContentType(),
			Attachment:  data,
		})
		if errors.Is(err, services.ErrEmailDisabled) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "email_disabled", "E-mail is not configured", "")
			return
		}
		if err != nil {
			log.Printf("[email] project %s: %v", projectID, err)
			utils.ErrorResponse(c, http.StatusBadGateway, "email_failed", "Failed to send e-mail", err.Error())
			return
		}
		logActivity(c, deps.Activity, projectID, "progress_report", "report_emailed",
			fmt.Sprintf("Emailed %s to %s", filename, strings.Join(recipients, ", ")))
		c.JSON(http.StatusOK, models.MessageResponse{Message: fmt.Sprintf("Report sent to %d recipient(s)", len(recipients))})
	}
}
