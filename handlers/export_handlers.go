package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pipetrak/services"
	"pipetrak/utils"
)

// DownloadExport godoc
// @Summary      Download an archived export
// @Description  Re-downloads a file produced by an earlier export while it is within the retention window
// @Tags         exports
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        project_id  path  string  true  "Project ID"
// @Param        name        path  string  true  "Archive name (X-Archive-Name header of the export)"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/exports/{name} [get]
func DownloadExport(archive ExportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		name := c.Param("name")
		path, err := archive.Path(projectID, name)
		if err != nil {
			utils.ErrorResponse(c, http.StatusNotFound, "not_found", "Export not found or expired", "")
			return
		}
		format, err := services.ParseExportFormat(strings.TrimPrefix(filepath.Ext(name), "."))
		contentType := "application/octet-stream"
		if err == nil {
			contentType = format.ContentType()
		}
		c.Header("Content-Type", contentType)
		c.FileAttachment(path, services.DownloadName(name))
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
