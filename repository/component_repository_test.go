package repository

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipetrak/models"
)

func TestDecodeMilestones(t *testing.T) {
	state, err := DecodeMilestones([]byte(`{"Receive": true, "Erect": false, "Fabricate": 42.5, "Test": null}`))
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneState{
		"Receive":   models.Complete(true),
		"Erect":     models.Complete(false),
		"Fabricate": models.Partial(42.5),
		"Test":      models.Complete(false),
	}, state)

	for _, raw := range [][]byte{nil, []byte("null")} {
		state, err := DecodeMilestones(raw)
		require.NoError(t, err)
		assert.Empty(t, state)
	}

	state, err = DecodeMilestones([]byte(`{"Receive": "yes", "Erect": "40"}`))
	require.NoError(t, err)
	assert.True(t, state["Receive"].IsUnreadable())
	assert.Equal(t, `"yes"`, state["Receive"].String())
	assert.True(t, state["Erect"].IsUnreadable())

	_, err = DecodeMilestones([]byte(`["Receive"]`))
	assert.Error(t, err)
}

func TestGroupRef(t *testing.T) {
	assert.Nil(t, groupRef(sql.NullString{}, sql.NullString{String: "x", Valid: true}))
	assert.Nil(t, groupRef(sql.NullString{Valid: true}, sql.NullString{}))
	assert.Equal(t, &models.GroupRef{ID: "a1", Name: "B-64"},
		groupRef(sql.NullString{String: "a1", Valid: true}, sql.NullString{String: "B-64", Valid: true}))
}

func TestNullableArray(t *testing.T) {
	assert.Nil(t, nullableArray(nil))
	assert.Nil(t, nullableArray([]string{}))
	assert.NotNil(t, nullableArray([]string{"a"}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(sql.ErrNoRows))
}
