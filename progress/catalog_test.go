package progress

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipetrak/models"
)

func TestDefaultCatalog_TotalsAndTypes(t *testing.T) {
	cat := DefaultCatalog()
	assert.Equal(t, []models.ComponentType{
		models.ComponentSpool, models.ComponentFieldWeld, models.ComponentThreadedPipe,
		models.ComponentSupport, models.ComponentValve, models.ComponentFitting,
		models.ComponentFlange, models.ComponentInstrument, models.ComponentTubing,
		models.ComponentHose, models.ComponentMisc,
	}, cat.Types())

	for _, tmpl := range cat.Templates() {
		assert.InDelta(t, 100, tmpl.TotalWeight(), weightTolerance, tmpl.Type)
		for _, m := range tmpl.Milestones {
			assert.True(t, m.Category.Valid(), "%s/%s", tmpl.Type, m.Name)
		}
	}
}

func TestTemplate_ReturnsCopy(t *testing.T) {
	cat := DefaultCatalog()
	tmpl, ok := cat.Template(models.ComponentSpool)
	require.True(t, ok)
	tmpl.Milestones[0].Weight = 99

	again, _ := cat.Template(models.ComponentSpool)
	assert.Equal(t, 5.0, again.Milestones[0].Weight)

	_, ok = cat.Template("gizmo")
	assert.False(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	doc := `
types:
  - type: spool
    milestones:
      - { name: Erect, weight: 50, category: installed }
      - { name: Test, weight: 50, category: tested }
`
	cat, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	got, err := EarnedValue(cat, models.ComponentSpool, spoolState("Erect"), models.CategoryInstalled)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	_, err = EarnedValue(cat, models.ComponentValve, nil, models.CategoryInstalled)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadCatalog_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":            "types: []",
		"unknown field":    "types:\n  - type: a\n    colour: red\n",
		"duplicate type":   "types:\n  - type: a\n  - type: a\n",
		"duplicate name":   "types:\n  - type: a\n    milestones:\n      - {name: X, weight: 1}\n      - {name: X, weight: 1}\n",
		"negative weight":  "types:\n  - type: a\n    milestones:\n      - {name: X, weight: -1}\n",
		"unknown category": "types:\n  - type: a\n    milestones:\n      - {name: X, weight: 1, category: painted}\n",
		"not yaml at all":  "{{{",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalogYAML, 0o600))

	cat, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Templates(), cat.Templates())

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWithWeights(t *testing.T) {
	base := DefaultCatalog()
	next, err := base.WithWeights(models.ComponentSpool, map[string]float64{"Erect": 60, "Connect": 20})
	require.NoError(t, err)

	got, err := EarnedValue(next, models.ComponentSpool, spoolState("Erect"), models.CategoryInstalled)
	require.NoError(t, err)
	assert.Equal(t, 75.0, got)

	got, err = EarnedValue(base, models.ComponentSpool, spoolState("Erect"), models.CategoryInstalled)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got, "base catalog must be unchanged")

	_, err = base.WithWeights(models.ComponentSpool, map[string]float64{"Paint": 10})
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = base.WithWeights("gizmo", nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestValidateWeights(t *testing.T) {
	cat := DefaultCatalog()
	valid := map[string]float64{"Receive": 10, "Erect": 35, "Connect": 35, "Punch": 5, "Test": 10, "Restore": 5}
	require.NoError(t, cat.ValidateWeights(models.ComponentSpool, valid))

	clone := func(edit func(map[string]float64)) map[string]float64 {
		out := make(map[string]float64, len(valid))
		for k, v := range valid {
			out[k] = v
		}
		edit(out)
		return out
	}

	assert.ErrorIs(t, cat.ValidateWeights(models.ComponentSpool, clone(func(m map[string]float64) { m["Erect"] = 36 })), ErrValidation)
	assert.ErrorIs(t, cat.ValidateWeights(models.ComponentSpool, clone(func(m map[string]float64) { m["Erect"] = 135; m["Connect"] = -65 })), ErrValidation)
	assert.ErrorIs(t, cat.ValidateWeights(models.ComponentSpool, clone(func(m map[string]float64) { delete(m, "Restore"); m["Test"] = 15 })), ErrValidation)
	assert.ErrorIs(t, cat.ValidateWeights(models.ComponentSpool, clone(func(m map[string]float64) { m["Paint"] = 0 })), ErrConfiguration)
	assert.ErrorIs(t, cat.ValidateWeights("gizmo", valid), ErrConfiguration)
}
