package progress

import (
	"errors"
	"fmt"
	"strings"

	"pipetrak/models"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")
)

// ConfigurationError signals drift between component data and the weight
// catalog: an unknown component type, or a milestone the type does not define.
type ConfigurationError struct {
	ComponentID   string
	ComponentType models.ComponentType
	Milestone     string
	Reason        string
}

func (e *ConfigurationError) Error() string {
	return describe("configuration error", e.ComponentID, e.ComponentType, e.Milestone, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ValidationError signals a malformed value: a partial value outside
// [0,100], or a numeric value on a discrete milestone.
type ValidationError struct {
	ComponentID   string
	ComponentType models.ComponentType
	Milestone     string
	Value         string
	Reason        string
}

func (e *ValidationError) Error() string {
	msg := describe("validation error", e.ComponentID, e.ComponentType, e.Milestone, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got %s)", e.Value)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func describe(kind, componentID string, ct models.ComponentType, milestone, reason string) string {
	var b strings.Builder
	b.WriteString(kind)
	if componentID != "" {
		fmt.Fprintf(&b, ": component %s", componentID)
	}
	if ct != "" {
		fmt.Fprintf(&b, ": type %q", string(ct))
	}
	if milestone != "" {
		fmt.Fprintf(&b, ": milestone %q", milestone)
	}
	if reason != "" {
		b.WriteString(": ")
		b.WriteString(reason)
	}
	return b.String()
}

// withComponent stamps the offending component id onto a core error.
func withComponent(err error, componentID string) error {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		cp := *ce
		cp.ComponentID = componentID
		return &cp
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		cp := *ve
		cp.ComponentID = componentID
		return &cp
	}
	return fmt.Errorf("component %s: %w", componentID, err)
}
