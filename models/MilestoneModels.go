package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StandardCategory is one of the five fixed report columns every component
// type's native milestones are mapped into.
type StandardCategory string

const (
	CategoryReceived  StandardCategory = "received"
	CategoryInstalled StandardCategory = "installed"
	CategoryPunch     StandardCategory = "punch"
	CategoryTested    StandardCategory = "tested"
	CategoryRestored  StandardCategory = "restored"
)

// StandardCategories lists the categories in report column order.
var StandardCategories = [...]StandardCategory{
	CategoryReceived,
	CategoryInstalled,
	CategoryPunch,
	CategoryTested,
	CategoryRestored,
}

// Label returns the column heading used by reports and exports.
func (c StandardCategory) Label() string {
	switch c {
	case CategoryReceived:
		return "Received"
	case CategoryInstalled:
		return "Installed"
	case CategoryPunch:
		return "Punch"
	case CategoryTested:
		return "Tested"
	case CategoryRestored:
		return "Restored"
	}
	return string(c)
}

func (c StandardCategory) Valid() bool {
	for _, s := range StandardCategories {
		if s == c {
			return true
		}
	}
	return false
}

// MilestoneDefinition is one entry of a component type's milestone set.
// Category is empty when the milestone feeds none of the standard columns.
type MilestoneDefinition struct {
	Name      string           `json:"name" yaml:"name" example:"Erect"`
	Weight    float64          `json:"weight" yaml:"weight" example:"40"`
	IsPartial bool             `json:"is_partial" yaml:"partial" example:"false"`
	Category  StandardCategory `json:"category,omitempty" yaml:"category" example:"installed"`
}

type milestoneKind uint8

const (
	kindComplete milestoneKind = iota
	kindPartial
	kindUnreadable
)

// MilestoneValue is the recorded state of a single milestone: either a
// discrete Complete(true|false) or a Partial percentage. The zero value is
// Complete(false). A stored value that is neither decodes as Unreadable and
// is rejected when the engine validates the state.
type MilestoneValue struct {
	kind     milestoneKind
	complete bool
	percent  float64
	raw      string
}

func Complete(done bool) MilestoneValue {
	return MilestoneValue{kind: kindComplete, complete: done}
}

func Partial(percent float64) MilestoneValue {
	return MilestoneValue{kind: kindPartial, percent: percent}
}

// Unreadable wraps a stored value that is neither a boolean nor a number.
func Unreadable(raw string) MilestoneValue {
	return MilestoneValue{kind: kindUnreadable, raw: raw}
}

func (v MilestoneValue) IsPartial() bool { return v.kind == kindPartial }

func (v MilestoneValue) IsUnreadable() bool { return v.kind == kindUnreadable }

// Bool reports the discrete state. ok is false for partial values.
func (v MilestoneValue) Bool() (done bool, ok bool) {
	if v.kind != kindComplete {
		return false, false
	}
	return v.complete, true
}

// Percent reports the partial percentage. ok is false for discrete values.
func (v MilestoneValue) Percent() (pct float64, ok bool) {
	if v.kind != kindPartial {
		return 0, false
	}
	return v.percent, true
}

func (v MilestoneValue) String() string {
	switch v.kind {
	case kindPartial:
		return strconv.FormatFloat(v.percent, 'f', -1, 64)
	case kindUnreadable:
		return v.raw
	}
	return strconv.FormatBool(v.complete)
}

func (v MilestoneValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindPartial:
		return json.Marshal(v.percent)
	case kindUnreadable:
		if json.Valid([]byte(v.raw)) {
			return []byte(v.raw), nil
		}
		return json.Marshal(v.raw)
	}
	return json.Marshal(v.complete)
}

func (v *MilestoneValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*v = Complete(true)
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*v = Complete(false)
	default:
		var pct float64
		if err := json.Unmarshal(data, &pct); err != nil {
			*v = Unreadable(string(data))
			return nil
		}
		*v = Partial(pct)
	}
	return nil
}

// MilestoneState maps milestone name to its recorded value. Milestones that
// are absent have not been started.
type MilestoneState map[string]MilestoneValue
