package progress

import (
	"math"
	"sort"
	"strconv"

	"pipetrak/models"
)

// CategoryValues holds one earned percentage per standard category, indexed
// in models.StandardCategories order.
type CategoryValues [len(models.StandardCategories)]float64

// Get returns the value for one category.
func (v CategoryValues) Get(c models.StandardCategory) float64 {
	for i, sc := range models.StandardCategories {
		if sc == c {
			return v[i]
		}
	}
	return 0
}

// EarnedValue converts one component's milestone state into the earned
// percentage, in [0,100], for a single standard category.
//
// Milestones missing from state count as not started. A category to which
// the type maps no milestone yields 0, and Aggregate still counts the
// component in that category's mean, so such types pull the category's row
// percentage toward 0 (threaded_pipe has no Received milestone, for
// example). The whole state is validated first, so a malformed record fails
// identically whichever category is asked for.
func EarnedValue(catalog *WeightCatalog, ct models.ComponentType, state models.MilestoneState, category models.StandardCategory) (float64, error) {
	if !category.Valid() {
		return 0, &ValidationError{ComponentType: ct, Value: string(category), Reason: "unknown standard category"}
	}
	t, err := catalog.lookup(ct)
	if err != nil {
		return 0, err
	}
	if err := t.validate(state); err != nil {
		return 0, err
	}
	return t.earned(state, category), nil
}

// EarnedValues is EarnedValue for all five categories at once, validating
// the state a single time.
func EarnedValues(catalog *WeightCatalog, ct models.ComponentType, state models.MilestoneState) (CategoryValues, error) {
	var out CategoryValues
	t, err := catalog.lookup(ct)
	if err != nil {
		return out, err
	}
	if err := t.validate(state); err != nil {
		return out, err
	}
	for i, c := range models.StandardCategories {
		out[i] = t.earned(state, c)
	}
	return out, nil
}

// validate walks the state in name order so the first reported error is
// stable across runs.
func (t *template) validate(state models.MilestoneState) error {
	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx, ok := t.byName[name]
		if !ok {
			return &ConfigurationError{ComponentType: t.Type, Milestone: name, Reason: "milestone is not defined for component type"}
		}
		def := t.Milestones[idx]
		v := state[name]
		if v.IsUnreadable() {
			return &ValidationError{ComponentType: t.Type, Milestone: name, Value: v.String(), Reason: "milestone value must be a boolean or a number"}
		}
		pct, partial := v.Percent()
		if !partial {
			continue
		}
		if !def.IsPartial {
			return &ValidationError{ComponentType: t.Type, Milestone: name, Value: v.String(), Reason: "numeric value supplied for a non-partial milestone"}
		}
		if math.IsNaN(pct) || pct < 0 || pct > 100 {
			return &ValidationError{ComponentType: t.Type, Milestone: name, Value: v.String(), Reason: "partial value must be between 0 and 100"}
		}
	}
	return nil
}

// earned assumes a validated state. Sub-values are kept in weight×percent
// units and divided once, which keeps whole-number inputs exact.
func (t *template) earned(state models.MilestoneState, category models.StandardCategory) float64 {
	idx := t.byCategory[category]
	if len(idx) == 0 {
		return 0
	}
	var earned, total float64
	for _, i := range idx {
		m := t.Milestones[i]
		total += m.Weight
		v, ok := state[m.Name]
		if !ok {
			continue
		}
		if pct, partial := v.Percent(); partial {
			earned += m.Weight * pct
		} else if done, _ := v.Bool(); done {
			earned += m.Weight * 100
		}
	}
	if total <= 0 {
		return 0
	}
	return earned / total
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
