package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pipetrak/models"
)

const maxActivityPageSize = 100

// GetActivityLogs godoc
// @Summary      Project activity log
// @Description  Report exports, e-mails and configuration changes, newest first
// @Tags         activity-logs
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  path   string  true   "Project ID"
// @Param        page        query  int     false  "Page"   default(1)
// @Param        limit       query  int     false  "Limit"  default(10)
// @Success      200  {object}  models.ActivityLogListResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/activity-logs [get]
func GetActivityLogs(store ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}
		if limit > maxActivityPageSize {
			limit = maxActivityPageSize
		}

		logs, total, err := store.ListByProject(c.Request.Context(), projectID, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		totalPages := int(math.Ceil(float64(total) / float64(limit)))
		c.JSON(http.StatusOK, models.ActivityLogListResponse{
			Data: logs,
			Pagination: models.Pagination{
				CurrentPage:  page,
				PageSize:     limit,
				TotalRecords: int(total),
				TotalPages:   totalPages,
				HasNext:      page < totalPages,
				HasPrev:      page > 1,
			},
		})
	}
}
