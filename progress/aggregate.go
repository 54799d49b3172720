package progress

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pipetrak/models"
)

// UnassignedGroupName labels the synthetic row collecting components with no
// group on the chosen dimension. Its GroupID is empty.
const UnassignedGroupName = "(Unassigned)"

// GrandTotalLabel names the grand-total row.
const GrandTotalLabel = "Grand Total"

// Aggregation is the engine output: one row per group plus a grand total
// computed over the whole filtered universe.
type Aggregation struct {
	Dimension  models.GroupingDimension
	Rows       []models.ReportRow
	GrandTotal models.ReportRow
}

// accumulator keeps unrounded sums; rounding happens once in row().
type accumulator struct {
	id, name string
	count    int64
	sums     [len(models.StandardCategories)]decimal.Decimal
	total    decimal.Decimal
}

func (a *accumulator) add(values CategoryValues, percentComplete float64) {
	a.count++
	for i, v := range values {
		a.sums[i] = a.sums[i].Add(decimal.NewFromFloat(v))
	}
	a.total = a.total.Add(decimal.NewFromFloat(percentComplete))
}

func (a *accumulator) row() models.ReportRow {
	r := models.ReportRow{GroupName: a.name, GroupID: a.id, Budget: int(a.count)}
	if a.count == 0 {
		return r
	}
	n := decimal.NewFromInt(a.count)
	for i, c := range models.StandardCategories {
		r.SetPct(c, roundPct(a.sums[i].Div(n)))
	}
	r.PctTotal = roundPct(a.total.Div(n))
	return r
}

// roundPct rounds half away from zero, which equals half-up for the
// non-negative means produced here.
func roundPct(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

// Aggregate groups the non-retired components by dimension and averages
// their earned values per category. known lists the groups that must get a
// row even when no active component is assigned to them; components whose
// group is missing from known still get a row of their own.
//
// Rows are ordered by group name (case-insensitive), then id, with the
// unassigned row last, so equal inputs give identical output. The first
// mapper error aborts the aggregation and is returned annotated with the
// component id.
func Aggregate(catalog *WeightCatalog, components []models.ComponentProgressRecord, dimension models.GroupingDimension, known []models.Group) (Aggregation, error) {
	if !dimension.Valid() {
		return Aggregation{}, &ValidationError{Value: string(dimension), Reason: "unknown grouping dimension"}
	}

	groups := make(map[string]*accumulator, len(known)+1)
	for _, g := range known {
		if g.ID == "" {
			continue
		}
		if _, ok := groups[g.ID]; !ok {
			groups[g.ID] = &accumulator{id: g.ID, name: g.Name}
		}
	}

	grand := &accumulator{name: GrandTotalLabel}
	for _, rec := range components {
		if rec.IsRetired {
			continue
		}
		values, err := componentValues(catalog, rec)
		if err != nil {
			return Aggregation{}, err
		}

		key, name := "", UnassignedGroupName
		if ref := rec.GroupKeys.For(dimension); ref != nil {
			key, name = ref.ID, ref.Name
		}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{id: key, name: name}
			groups[key] = acc
		}
		acc.add(values, rec.PercentComplete)
		grand.add(values, rec.PercentComplete)
	}

	rows := make([]models.ReportRow, 0, len(groups))
	for _, acc := range groups {
		rows = append(rows, acc.row())
	}
	sortRows(rows)

	return Aggregation{Dimension: dimension, Rows: rows, GrandTotal: grand.row()}, nil
}

// CheckComponent reports the error Aggregate would raise for rec, or nil.
// Retired components are never checked.
func CheckComponent(catalog *WeightCatalog, rec models.ComponentProgressRecord) error {
	if rec.IsRetired {
		return nil
	}
	_, err := componentValues(catalog, rec)
	return err
}

func componentValues(catalog *WeightCatalog, rec models.ComponentProgressRecord) (CategoryValues, error) {
	if rec.UnreadableMilestones != "" {
		return CategoryValues{}, &ValidationError{
			ComponentID:   rec.ID,
			ComponentType: rec.ComponentType,
			Value:         truncate(rec.UnreadableMilestones, 64),
			Reason:        "milestone state is not a JSON object",
		}
	}
	values, err := EarnedValues(catalog, rec.ComponentType, rec.CurrentMilestones)
	if err != nil {
		return values, withComponent(err, rec.ID)
	}
	if pc := rec.PercentComplete; math.IsNaN(pc) || pc < 0 || pc > 100 {
		return values, &ValidationError{
			ComponentID:   rec.ID,
			ComponentType: rec.ComponentType,
			Value:         formatFloat(pc),
			Reason:        "percent complete must be between 0 and 100",
		}
	}
	return values, nil
}

func sortRows(rows []models.ReportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.GroupID == "") != (b.GroupID == "") {
			return b.GroupID == ""
		}
		if la, lb := strings.ToLower(a.GroupName), strings.ToLower(b.GroupName); la != lb {
			return la < lb
		}
		if a.GroupName != b.GroupName {
			return a.GroupName < b.GroupName
		}
		return a.GroupID < b.GroupID
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
