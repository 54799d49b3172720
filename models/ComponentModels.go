package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComponentType selects the milestone set and weights applied to a component.
type ComponentType string

const (
	ComponentSpool        ComponentType = "spool"
	ComponentFieldWeld    ComponentType = "field_weld"
	ComponentSupport      ComponentType = "support"
	ComponentValve        ComponentType = "valve"
	ComponentFitting      ComponentType = "fitting"
	ComponentFlange       ComponentType = "flange"
	ComponentInstrument   ComponentType = "instrument"
	ComponentTubing       ComponentType = "tubing"
	ComponentHose         ComponentType = "hose"
	ComponentThreadedPipe ComponentType = "threaded_pipe"
	ComponentMisc         ComponentType = "misc"
)

// GroupingDimension is the metadata axis used to partition components into
// report rows.
type GroupingDimension string

const (
	DimensionArea        GroupingDimension = "area"
	DimensionSystem      GroupingDimension = "system"
	DimensionTestPackage GroupingDimension = "test_package"
)

var GroupingDimensions = []GroupingDimension{DimensionArea, DimensionSystem, DimensionTestPackage}

// ParseGroupingDimension accepts the wire value, case-insensitively.
func ParseGroupingDimension(s string) (GroupingDimension, error) {
	d := GroupingDimension(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("invalid grouping dimension %q (want area, system or test_package)", s)
}

func (d GroupingDimension) Valid() bool {
	switch d {
	case DimensionArea, DimensionSystem, DimensionTestPackage:
		return true
	}
	return false
}

// Label is the human heading of the dimension, e.g. "Test Package".
func (d GroupingDimension) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(d), "_", " "))
}

// GroupRef is a resolved foreign key: the group's id plus its display name.
type GroupRef struct {
	ID   string `json:"id" example:"5b0e6f0c-8a55-4a44-9c70-1f0f3d0f7a11"`
	Name string `json:"name" example:"B-64"`
}

// GroupKeys holds the group memberships of a component. A nil entry means
// the component is not assigned on that dimension.
type GroupKeys struct {
	Area        *GroupRef `json:"area,omitempty"`
	System      *GroupRef `json:"system,omitempty"`
	TestPackage *GroupRef `json:"test_package,omitempty"`
}

// For returns the membership on the given dimension, or nil.
func (k GroupKeys) For(d GroupingDimension) *GroupRef {
	var ref *GroupRef
	switch d {
	case DimensionArea:
		ref = k.Area
	case DimensionSystem:
		ref = k.System
	case DimensionTestPackage:
		ref = k.TestPackage
	}
	if ref == nil || ref.ID == "" {
		return nil
	}
	return ref
}

// ComponentProgressRecord is one trackable item with its current milestone
// state. PercentComplete is the separately maintained overall progress.
// UnreadableMilestones holds the stored milestone document when it could not
// be decoded at all; such a record fails validation.
type ComponentProgressRecord struct {
	ID                   string         `json:"id"`
	ComponentType        ComponentType  `json:"component_type"`
	GroupKeys            GroupKeys      `json:"group_keys"`
	CurrentMilestones    MilestoneState `json:"current_milestones"`
	PercentComplete      float64        `json:"percent_complete"`
	IsRetired            bool           `json:"is_retired"`
	UnreadableMilestones string         `json:"-"`
}

// UnmarshalJSON keeps a record whose current_milestones is not an object;
// the raw text lands in UnreadableMilestones.
func (r *ComponentProgressRecord) UnmarshalJSON(data []byte) error {
	type plain ComponentProgressRecord
	var aux struct {
		plain
		CurrentMilestones json.RawMessage `json:"current_milestones"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = ComponentProgressRecord(aux.plain)
	raw := bytes.TrimSpace(aux.CurrentMilestones)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, &r.CurrentMilestones); err != nil {
		r.CurrentMilestones = MilestoneState{}
		r.UnreadableMilestones = string(raw)
	}
	return nil
}

// Group is a known group on a dimension; known groups are reported even when
// no active component is assigned to them.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
