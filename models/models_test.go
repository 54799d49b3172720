package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupingDimension(t *testing.T) {
	d, err := ParseGroupingDimension(" Test_Package ")
	require.NoError(t, err)
	assert.Equal(t, DimensionTestPackage, d)
	assert.Equal(t, "Test Package", d.Label())
	assert.Equal(t, "Area", DimensionArea.Label())

	_, err = ParseGroupingDimension("region")
	assert.Error(t, err)
}

func TestGroupKeysFor(t *testing.T) {
	keys := GroupKeys{
		Area:   &GroupRef{ID: "a1", Name: "B-64"},
		System: &GroupRef{},
	}
	require.NotNil(t, keys.For(DimensionArea))
	assert.Equal(t, "B-64", keys.For(DimensionArea).Name)
	assert.Nil(t, keys.For(DimensionSystem), "empty id counts as unassigned")
	assert.Nil(t, keys.For(DimensionTestPackage))
}

func TestMilestoneStateJSON(t *testing.T) {
	var state MilestoneState
	require.NoError(t, json.Unmarshal([]byte(`{"Erect": true, "Connect": null, "Fabricate": 37.5}`), &state))

	done, ok := state["Erect"].Bool()
	assert.True(t, ok)
	assert.True(t, done)

	done, ok = state["Connect"].Bool()
	assert.True(t, ok)
	assert.False(t, done)

	pct, ok := state["Fabricate"].Percent()
	assert.True(t, ok)
	assert.Equal(t, 37.5, pct)
	assert.Equal(t, "37.5", state["Fabricate"].String())

	out, err := json.Marshal(state["Fabricate"])
	require.NoError(t, err)
	assert.JSONEq(t, `37.5`, string(out))

	var bad MilestoneState
	require.NoError(t, json.Unmarshal([]byte(`{"Erect": "yes"}`), &bad))
	assert.True(t, bad["Erect"].IsUnreadable())
	_, ok = bad["Erect"].Bool()
	assert.False(t, ok)
	_, ok = bad["Erect"].Percent()
	assert.False(t, ok)

	out, err = json.Marshal(bad)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Erect": "yes"}`, string(out))
}

func TestComponentRecordJSON_UnreadableMilestones(t *testing.T) {
	var recs []ComponentProgressRecord
	err := json.Unmarshal([]byte(`[
  {"id": "a", "component_type": "spool", "group_keys": {"area": {"id": "A1"}}, "current_milestones": "n/a", "percent_complete": 5},
  {"id": "b", "component_type": "spool", "current_milestones": {"Receive": true}},
  {"id": "c", "component_type": "spool"}
]`), &recs)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, `"n/a"`, recs[0].UnreadableMilestones)
	assert.Empty(t, recs[0].CurrentMilestones)
	assert.Equal(t, 5.0, recs[0].PercentComplete)
	require.NotNil(t, recs[0].GroupKeys.For(DimensionArea))

	assert.Empty(t, recs[1].UnreadableMilestones)
	assert.Equal(t, Complete(true), recs[1].CurrentMilestones["Receive"])

	assert.Empty(t, recs[2].UnreadableMilestones)
	assert.Empty(t, recs[2].CurrentMilestones)
}

func TestReportRowPct(t *testing.T) {
	var row ReportRow
	for i, c := range StandardCategories {
		row.SetPct(c, (i+1)*10)
	}
	assert.Equal(t, 10, row.PctReceived)
	assert.Equal(t, 50, row.PctRestored)
	for i, c := range StandardCategories {
		assert.Equal(t, (i+1)*10, row.Pct(c), c)
	}
	assert.Equal(t, 0, row.Pct(StandardCategory("other")))
	assert.False(t, StandardCategory("other").Valid())
}

func TestReportConfigurationGormRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	rc := ReportConfiguration{
		ID:                "cfg-1",
		ProjectID:         "p1",
		Name:              "Weekly by area",
		GroupingDimension: DimensionArea,
		Filters:           ComponentFilter{ComponentTypes: []ComponentType{ComponentSpool}, AreaIDs: []string{"a1"}},
		CreatedBy:         "user-42",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	row, err := rc.ToGorm()
	require.NoError(t, err)
	assert.Equal(t, "area", row.GroupingDimension)

	back, err := row.ToAPI()
	require.NoError(t, err)
	assert.Equal(t, rc, back)
}

func TestReportConfigGormToAPI_NullFilters(t *testing.T) {
	back, err := ReportConfigGorm{ID: "x", Filters: []byte("null")}.ToAPI()
	require.NoError(t, err)
	assert.True(t, back.Filters.IsZero())
}
