package progress

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"pipetrak/models"
)

//go:embed catalog/default_catalog.yaml
var defaultCatalogYAML []byte

// weightTolerance absorbs float noise when checking that weights total 100.
const weightTolerance = 1e-6

// ComponentTemplate is the ordered milestone set of one component type.
type ComponentTemplate struct {
	Type       models.ComponentType         `json:"component_type" yaml:"type"`
	Milestones []models.MilestoneDefinition `json:"milestones" yaml:"milestones"`
}

// TotalWeight sums the weights of every milestone in the template.
func (t ComponentTemplate) TotalWeight() float64 {
	var total float64
	for _, m := range t.Milestones {
		total += m.Weight
	}
	return total
}

type catalogFile struct {
	Types []ComponentTemplate `yaml:"types"`
}

type template struct {
	ComponentTemplate
	byName     map[string]int
	byCategory map[models.StandardCategory][]int
}

// WeightCatalog maps component types to their milestone sets. It is
// immutable once built and safe for concurrent use; overrides produce a new
// catalog.
type WeightCatalog struct {
	order     []models.ComponentType
	templates map[models.ComponentType]*template
}

// NewWeightCatalog builds a catalog from templates. Structural problems
// (duplicate types or milestones, negative weights, unknown categories) are
// reported as ConfigurationError. Totals other than 100 are accepted here;
// ValidateWeights enforces them on the save path.
func NewWeightCatalog(templates []ComponentTemplate) (*WeightCatalog, error) {
	c := &WeightCatalog{templates: make(map[models.ComponentType]*template, len(templates))}
	for _, in := range templates {
		if in.Type == "" {
			return nil, &ConfigurationError{Reason: "component type without a name"}
		}
		if _, dup := c.templates[in.Type]; dup {
			return nil, &ConfigurationError{ComponentType: in.Type, Reason: "component type defined twice"}
		}
		t, err := compileTemplate(in)
		if err != nil {
			return nil, err
		}
		c.templates[in.Type] = t
		c.order = append(c.order, in.Type)
	}
	return c, nil
}

func compileTemplate(in ComponentTemplate) (*template, error) {
	t := &template{
		ComponentTemplate: ComponentTemplate{
			Type:       in.Type,
			Milestones: append([]models.MilestoneDefinition(nil), in.Milestones...),
		},
		byName:     make(map[string]int, len(in.Milestones)),
		byCategory: make(map[models.StandardCategory][]int),
	}
	for i, m := range t.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			return nil, &ConfigurationError{ComponentType: in.Type, Reason: "milestone without a name"}
		}
		if _, dup := t.byName[m.Name]; dup {
			return nil, &ConfigurationError{ComponentType: in.Type, Milestone: m.Name, Reason: "milestone defined twice"}
		}
		if m.Weight < 0 || math.IsNaN(m.Weight) || math.IsInf(m.Weight, 0) {
			return nil, &ConfigurationError{ComponentType: in.Type, Milestone: m.Name, Reason: "weight must be a non-negative number"}
		}
		if m.Category != "" && !m.Category.Valid() {
			return nil, &ConfigurationError{ComponentType: in.Type, Milestone: m.Name, Reason: fmt.Sprintf("unknown category %q", string(m.Category))}
		}
		t.byName[m.Name] = i
		if m.Category != "" {
			t.byCategory[m.Category] = append(t.byCategory[m.Category], i)
		}
	}
	return t, nil
}

// LoadCatalog parses a YAML catalog document.
func LoadCatalog(r io.Reader) (*WeightCatalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse weight catalog: %w", err)
	}
	if len(f.Types) == 0 {
		return nil, &ConfigurationError{Reason: "weight catalog defines no component types"}
	}
	return NewWeightCatalog(f.Types)
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*WeightCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weight catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *WeightCatalog
)

// DefaultCatalog returns the built-in catalog. The embedded document is part
// of the binary, so a parse failure is a programming error.
func DefaultCatalog() *WeightCatalog {
	defaultOnce.Do(func() {
		c, err := LoadCatalog(bytes.NewReader(defaultCatalogYAML))
		if err != nil {
			panic(fmt.Sprintf("embedded weight catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Types lists the catalog's component types in definition order.
func (c *WeightCatalog) Types() []models.ComponentType {
	return append([]models.ComponentType(nil), c.order...)
}

// Template returns a copy of the milestone set for a component type.
func (c *WeightCatalog) Template(ct models.ComponentType) (ComponentTemplate, bool) {
	t, ok := c.templates[ct]
	if !ok {
		return ComponentTemplate{}, false
	}
	return ComponentTemplate{
		Type:       t.Type,
		Milestones: append([]models.MilestoneDefinition(nil), t.Milestones...),
	}, true
}

// Templates returns copies of every template in definition order.
func (c *WeightCatalog) Templates() []ComponentTemplate {
	out := make([]ComponentTemplate, 0, len(c.order))
	for _, ct := range c.order {
		t, _ := c.Template(ct)
		out = append(out, t)
	}
	return out
}

func (c *WeightCatalog) lookup(ct models.ComponentType) (*template, error) {
	if c == nil {
		return nil, &ConfigurationError{ComponentType: ct, Reason: "no weight catalog supplied"}
	}
	t, ok := c.templates[ct]
	if !ok {
		return nil, &ConfigurationError{ComponentType: ct, Reason: "unknown component type"}
	}
	return t, nil
}

// WithWeights returns a new catalog in which the given milestone weights of
// one component type are replaced. Milestones not named keep their weight.
// The receiver is left untouched.
func (c *WeightCatalog) WithWeights(ct models.ComponentType, weights map[string]float64) (*WeightCatalog, error) {
	base, err := c.lookup(ct)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := base.byName[name]; !ok {
			return nil, &ConfigurationError{ComponentType: ct, Milestone: name, Reason: "milestone is not defined for component type"}
		}
	}

	next := ComponentTemplate{Type: ct, Milestones: append([]models.MilestoneDefinition(nil), base.Milestones...)}
	for i := range next.Milestones {
		if w, ok := weights[next.Milestones[i].Name]; ok {
			next.Milestones[i].Weight = w
		}
	}
	compiled, err := compileTemplate(next)
	if err != nil {
		return nil, err
	}

	out := &WeightCatalog{
		order:     c.order,
		templates: make(map[models.ComponentType]*template, len(c.templates)),
	}
	for k, v := range c.templates {
		out.templates[k] = v
	}
	out.templates[ct] = compiled
	return out, nil
}

// ValidateWeights is the save-path check for a weight edit: every milestone
// of the type must be given exactly once, each weight must lie in [0,100]
// and the weights must total 100. The mapper itself tolerates any totals.
func (c *WeightCatalog) ValidateWeights(ct models.ComponentType, weights map[string]float64) error {
	t, err := c.lookup(ct)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	for _, name := range names {
		if _, ok := t.byName[name]; !ok {
			return &ConfigurationError{ComponentType: ct, Milestone: name, Reason: "milestone is not defined for component type"}
		}
		w := weights[name]
		if math.IsNaN(w) || w < 0 || w > 100 {
			return &ValidationError{ComponentType: ct, Milestone: name, Value: formatFloat(w), Reason: "weight must be between 0 and 100"}
		}
		total += w
	}
	for _, m := range t.Milestones {
		if _, ok := weights[m.Name]; !ok {
			return &ValidationError{ComponentType: ct, Milestone: m.Name, Reason: "weight missing"}
		}
	}
	if math.Abs(total-100) > weightTolerance {
		return &ValidationError{ComponentType: ct, Value: formatFloat(total), Reason: "weights must total 100%"}
	}
	return nil
}
