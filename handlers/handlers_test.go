package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipetrak/models"
	"pipetrak/progress"
	"pipetrak/repository"
	"pipetrak/services"
	"pipetrak/storage"
	"pipetrak/utils"
)

const (
	testSecret   = "test-secret"
	testProject  = "7e1b5c1a-0d53-4c8c-9a3f-3b2b0a6e9d10"
	otherProject = "0f3c1d0e-2d6e-4f8e-8a43-5c1e7d9d4a21"
)

type fakeComponents struct {
	components []models.ComponentProgressRecord
	groups     []models.Group
}

func (f *fakeComponents) ListComponents(context.Context, string, models.ComponentFilter) ([]models.ComponentProgressRecord, error) {
	return f.components, nil
}

func (f *fakeComponents) ListGroups(_ context.Context, _ string, d models.GroupingDimension, _ []string) ([]models.Group, error) {
	if d != models.DimensionArea {
		return nil, nil
	}
	return f.groups, nil
}

func (f *fakeComponents) ProjectName(_ context.Context, projectID string) (string, error) {
	if projectID != testProject {
		return "", repository.ErrNotFound
	}
	return "Plant 7", nil
}

type fakeMailer struct {
	enabled bool
	sent    []services.ReportEmail
	err     error
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) SendReport(e services.ReportEmail) error {
	m.sent = append(m.sent, e)
	return m.err
}

type testEnv struct {
	router     *gin.Engine
	components *fakeComponents
	mailer     *fakeMailer
}

func spoolWith(id string, area *models.GroupRef, pct float64, state models.MilestoneState) models.ComponentProgressRecord {
	return models.ComponentProgressRecord{
		ID:                id,
		ComponentType:     models.ComponentSpool,
		GroupKeys:         models.GroupKeys{Area: area},
		CurrentMilestones: state,
		PercentComplete:   pct,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.InitSQLiteGormDB(":memory:", "silent")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	area := &models.GroupRef{ID: "a1", Name: "B-64"}
	components := &fakeComponents{
		components: []models.ComponentProgressRecord{
			spoolWith("c1", area, 45, models.MilestoneState{"Receive": models.Complete(true), "Erect": models.Complete(true)}),
			spoolWith("c2", area, 100, models.MilestoneState{
				"Receive": models.Complete(true), "Erect": models.Complete(true), "Connect": models.Complete(true),
				"Punch": models.Complete(true), "Test": models.Complete(true), "Restore": models.Complete(true),
			}),
		},
		groups: []models.Group{{ID: "a1", Name: "B-64"}},
	}
	weights := repository.NewWeightOverrideRepository(db)
	activity := repository.NewActivityLogRepository(db)
	archive, err := services.NewExportArchive(t.TempDir(), time.Hour)
	require.NoError(t, err)
	mailer := &fakeMailer{enabled: true}

	r := gin.New()
	API{
		JWTSecret:     testSecret,
		Reports:       services.NewReportService(components, weights, progress.DefaultCatalog()),
		Configs:       repository.NewReportConfigRepository(db),
		Weights:       weights,
		Activity:      activity,
		Archive:       archive,
		Mailer:        mailer,
		ProductPrefix: "PipeTrak",
	}.Register(r)

	return &testEnv{router: r, components: components, mailer: mailer}
}

func (e *testEnv) do(t *testing.T, user, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		tok, err := utils.GenerateJWT(testSecret, user, "engineer", time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, "", http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "", http.MethodGet, "/api/catalog", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	w = env.do(t, "u1", http.MethodGet, "/api/catalog", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	templates := decode[[]models.ComponentTemplateResponse](t, w)
	require.NotEmpty(t, templates)
	assert.Equal(t, models.ComponentSpool, templates[0].ComponentType)
	assert.InDelta(t, 100, templates[0].TotalWeight, 1e-9)
}

func TestGetProgressReport(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report?dimension=area", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[models.ProgressReport](t, w)
	assert.Equal(t, "Plant 7 Progress by Area", report.Title)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 75, report.Rows[0].PctInstalled)
	assert.Equal(t, 73, report.GrandTotal.PctTotal)
}

func TestGetProgressReport_BadInput(t *testing.T) {
	env := newTestEnv(t)

	project := "/api/projects/" + testProject
	cases := []struct {
		path string
		want int
	}{
		{"/api/projects/not-a-uuid/progress-report", http.StatusBadRequest},
		{project + "/progress-report?dimension=zone", http.StatusBadRequest},
		{project + "/progress-report?on_invalid=maybe", http.StatusBadRequest},
		{project + "/progress-report?component_type=rebar", http.StatusBadRequest},
		{"/api/projects/0f3c1d0e-2d6e-4f8e-8a43-5c1e7d9d4a21/progress-report", http.StatusNotFound},
		{project + "/progress-report/export?format=docx", http.StatusBadRequest},
		{project + "/progress-report?component_type=spool,valve", http.StatusOK},
	}
	for _, tc := range cases {
		w := env.do(t, "u1", http.MethodGet, tc.path, nil)
		assert.Equal(t, tc.want, w.Code, tc.path)
	}
}

func TestGetProgressReport_InvalidComponent(t *testing.T) {
	env := newTestEnv(t)
	env.components.components = append(env.components.components,
		spoolWith("bad", nil, 0, models.MilestoneState{"Erect": models.Partial(40)}))

	w := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_error", decode[models.ErrorResponse](t, w).Code)

	w = env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report?on_invalid=skip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[models.ProgressReport](t, w)
	assert.Equal(t, 1, report.SkippedComponents)
	assert.Equal(t, 2, report.GrandTotal.Budget)
}

func TestGetProgressReport_ConfigurationError(t *testing.T) {
	env := newTestEnv(t)
	env.components.components = append(env.components.components,
		spoolWith("odd", nil, 0, models.MilestoneState{"Paint": models.Complete(true)}))

	w := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "configuration_error", decode[models.ErrorResponse](t, w).Code)
}

func TestExportProgressReport(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "PipeTrak_Plant-7_area_")

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Grand Total", records[2][0])

	name := w.Header().Get("X-Archive-Name")
	require.NotEmpty(t, name)
	d := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/exports/"+name, nil)
	assert.Equal(t, http.StatusOK, d.Code)
	assert.Equal(t, w.Body.String(), d.Body.String())

	foreign := env.do(t, "u1", http.MethodGet, "/api/projects/"+otherProject+"/exports/"+name, nil)
	assert.Equal(t, http.StatusNotFound, foreign.Code)

	missing := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/exports/nope.csv", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	logs := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/activity-logs", nil)
	require.Equal(t, http.StatusOK, logs.Code)
	list := decode[models.ActivityLogListResponse](t, logs)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "report_exported", list.Data[0].EventName)
	assert.Equal(t, "u1", list.Data[0].UserID)
	assert.Equal(t, 1, list.Pagination.TotalRecords)
}

func TestExportProgressReport_PDFAndXLSX(t *testing.T) {
	env := newTestEnv(t)
	for _, f := range []string{"pdf", "xlsx"} {
		w := env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report/export?format="+f, nil)
		require.Equal(t, http.StatusOK, w.Code, f)
		assert.NotEmpty(t, w.Body.Bytes())
	}
}

func TestEmailProgressReport(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/projects/" + testProject + "/progress-report/email"

	w := env.do(t, "u1", http.MethodPost, path, models.EmailReportRequest{Recipients: []string{"pm@example.com"}, Format: "csv"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "text/csv; charset=utf-8", env.mailer.sent[0].ContentType)
	assert.Equal(t, []string{"pm@example.com"}, env.mailer.sent[0].Recipients)

	w = env.do(t, "u1", http.MethodPost, path, models.EmailReportRequest{Recipients: []string{"bogus"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.mailer.err = errors.New("relay refused")
	w = env.do(t, "u1", http.MethodPost, path, models.EmailReportRequest{Recipients: []string{"pm@example.com"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	env.mailer.enabled = false
	w = env.do(t, "u1", http.MethodPost, path, models.EmailReportRequest{Recipients: []string{"pm@example.com"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReportConfigLifecycle(t *testing.T) {
	env := newTestEnv(t)
	base := "/api/projects/" + testProject + "/report-configs"

	body := map[string]interface{}{
		"name":               "Weekly by area",
		"grouping_dimension": "area",
		"filters":            map[string]interface{}{"component_types": []string{"spool"}},
	}
	w := env.do(t, "owner", http.MethodPost, base, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.ReportConfigResponse](t, w)
	require.NotNil(t, created.Data)
	id := created.Data.ID
	assert.Equal(t, "owner", created.Data.CreatedBy)

	w = env.do(t, "other", http.MethodPost, base, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, "other", http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.ReportConfigListResponse](t, w).Data, 1)

	w = env.do(t, "other", http.MethodGet, "/api/report-configs/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	update := map[string]interface{}{"name": "By system", "grouping_dimension": "system"}
	w = env.do(t, "other", http.MethodPut, "/api/report-configs/"+id, update)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, "other", http.MethodDelete, "/api/report-configs/"+id, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, "owner", http.MethodPut, "/api/report-configs/"+id, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.DimensionSystem, decode[models.ReportConfigResponse](t, w).Data.GroupingDimension)

	w = env.do(t, "other", http.MethodGet, "/api/report-configs/"+id+"/report", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[models.ProgressReport](t, w)
	assert.Equal(t, models.DimensionSystem, report.GroupingDimension)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, progress.UnassignedGroupName, report.Rows[0].GroupName)

	w = env.do(t, "other", http.MethodGet, "/api/report-configs/"+id+"/report?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "_system_")

	w = env.do(t, "owner", http.MethodDelete, "/api/report-configs/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, "owner", http.MethodGet, "/api/report-configs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReportConfig_Validation(t *testing.T) {
	env := newTestEnv(t)
	base := "/api/projects/" + testProject + "/report-configs"

	for _, body := range []map[string]interface{}{
		{"grouping_dimension": "area"},
		{"name": "   ", "grouping_dimension": "area"},
		{"name": "x", "grouping_dimension": "zone"},
		{"name": "x", "grouping_dimension": "area", "filters": map[string]interface{}{"component_types": []string{"rebar"}}},
	} {
		w := env.do(t, "owner", http.MethodPost, base, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestMilestoneWeights(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/projects/" + testProject + "/milestone-weights"

	weights := models.MilestoneWeightsRequest{Weights: []models.MilestoneWeight{
		{Milestone: "Receive", Weight: 10}, {Milestone: "Erect", Weight: 30}, {Milestone: "Connect", Weight: 40},
		{Milestone: "Punch", Weight: 10}, {Milestone: "Test", Weight: 5}, {Milestone: "Restore", Weight: 5},
	}}
	w := env.do(t, "u1", http.MethodPut, path+"/spool", weights)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[models.ComponentTemplateResponse](t, w)
	assert.Equal(t, 10.0, saved.Milestones[0].Weight)

	// Installed = (30 + 0) / (30 + 40) for c1, 100 for c2.
	w = env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 71, decode[models.ProgressReport](t, w).GrandTotal.PctInstalled)

	w = env.do(t, "u1", http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	effective := decode[[]models.ComponentTemplateResponse](t, w)
	assert.Equal(t, 30.0, effective[0].Milestones[1].Weight)

	w = env.do(t, "u1", http.MethodDelete, path+"/spool", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, "u1", http.MethodGet, "/api/projects/"+testProject+"/progress-report", nil)
	assert.Equal(t, 75, decode[models.ProgressReport](t, w).GrandTotal.PctInstalled)
}

func TestMilestoneWeights_Invalid(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/projects/" + testProject + "/milestone-weights/spool"

	short := models.MilestoneWeightsRequest{Weights: []models.MilestoneWeight{{Milestone: "Receive", Weight: 100}}}
	w := env.do(t, "u1", http.MethodPut, path, short)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	dup := models.MilestoneWeightsRequest{Weights: []models.MilestoneWeight{{Milestone: "Receive", Weight: 50}, {Milestone: "Receive", Weight: 50}}}
	w = env.do(t, "u1", http.MethodPut, path, dup)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "u1", http.MethodPut, "/api/projects/"+testProject+"/milestone-weights/rebar", short)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
