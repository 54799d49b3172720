package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pipetrak/models"
	"pipetrak/progress"
	"pipetrak/utils"
)

func templateResponses(catalog *progress.WeightCatalog) []models.ComponentTemplateResponse {
	templates := catalog.Templates()
	out := make([]models.ComponentTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, models.ComponentTemplateResponse{
			ComponentType: t.Type,
			Milestones:    t.Milestones,
			TotalWeight:   t.TotalWeight(),
		})
	}
	return out
}

// GetCatalog godoc
// @Summary      Default milestone catalog
// @Description  Milestone sets and default weights for every component type
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.ComponentTemplateResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/catalog [get]
func GetCatalog(reports ReportGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, templateResponses(reports.Catalog()))
	}
}

// GetMilestoneWeights godoc
// @Summary      Effective milestone weights of a project
// @Description  Catalog defaults with the project's saved overrides applied
// @Tags         milestone-weights
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {array}   models.ComponentTemplateResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/milestone-weights [get]
func GetMilestoneWeights(reports ReportGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		catalog, err := reports.CatalogFor(c.Request.Context(), projectID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, templateResponses(catalog))
	}
}

func componentTypeParam(c *gin.Context, catalog *progress.WeightCatalog) (models.ComponentType, bool) {
	ct := models.ComponentType(strings.ToLower(strings.TrimSpace(c.Param("component_type"))))
	if _, ok := catalog.Template(ct); !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "not_found", "Unknown component type", string(ct))
		return "", false
	}
	return ct, true
}

// PutMilestoneWeights godoc
// @Summary      Save milestone weights for a component type
// @Description  Replaces the project's weights for one component type. Every milestone must be listed once, each weight in 0-100, total 100.
// @Tags         milestone-weights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project_id      path  string                          true  "Project ID"
// @Param        component_type  path  string                          true  "Component type"
// @Param        body            body  models.MilestoneWeightsRequest  true  "Weights"
// @Success      200  {object}  models.ComponentTemplateResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/milestone-weights/{component_type} [put]
func PutMilestoneWeights(reports ReportGenerator, store WeightOverrideStore, activity ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := mustUser(c)
		if !ok {
			return
		}
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		ct, ok := componentTypeParam(c, reports.Catalog())
		if !ok {
			return
		}

		var req models.MilestoneWeightsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		weights := make(map[string]float64, len(req.Weights))
		for _, w := range req.Weights {
			if _, dup := weights[w.Milestone]; dup {
				badRequest(c, "Milestone listed more than once", fmt.Errorf("milestone %q", w.Milestone))
				return
			}
			weights[w.Milestone] = w.Weight
		}
		if err := reports.Catalog().ValidateWeights(ct, weights); err != nil {
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, "invalid_weights", "Milestone weights are invalid", err.Error())
			return
		}

		if err := store.Replace(c.Request.Context(), projectID, ct, weights, user.UserID); err != nil {
			respondError(c, err)
			return
		}
		logActivity(c, activity, projectID, "milestone_weights", "weights_updated",
			fmt.Sprintf("Milestone weights for %s updated", ct))

		catalog, err := reports.CatalogFor(c.Request.Context(), projectID)
		if err != nil {
			respondError(c, err)
			return
		}
		t, _ := catalog.Template(ct)
		c.JSON(http.StatusOK, models.ComponentTemplateResponse{ComponentType: ct, Milestones: t.Milestones, TotalWeight: t.TotalWeight()})
	}
}

// ResetMilestoneWeights godoc
// @Summary      Reset a component type to catalog weights
// @Tags         milestone-weights
// @Produce      json
// @Security     BearerAuth
// @Param        project_id      path  string  true  "Project ID"
// @Param        component_type  path  string  true  "Component type"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/milestone-weights/{component_type} [delete]
func ResetMilestoneWeights(reports ReportGenerator, store WeightOverrideStore, activity ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := mustUser(c); !ok {
			return
		}
		projectID, ok := projectParam(c)
		if !ok {
			return
		}
		ct, ok := componentTypeParam(c, reports.Catalog())
		if !ok {
			return
		}
		if err := store.Reset(c.Request.Context(), projectID, ct); err != nil {
			respondError(c, err)
			return
		}
		logActivity(c, activity, projectID, "milestone_weights", "weights_reset",
			fmt.Sprintf("Milestone weights for %s reset to defaults", ct))
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Milestone weights reset to catalog defaults"})
	}
}
