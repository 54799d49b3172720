package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"pipetrak/models"
	"pipetrak/progress"
)

// ComponentSource supplies a project's components and groups.
type ComponentSource interface {
	ListComponents(ctx context.Context, projectID string, filter models.ComponentFilter) ([]models.ComponentProgressRecord, error)
	ListGroups(ctx context.Context, projectID string, dimension models.GroupingDimension, ids []string) ([]models.Group, error)
	ProjectName(ctx context.Context, projectID string) (string, error)
}

// WeightOverrideSource supplies per-project milestone weight edits.
type WeightOverrideSource interface {
	ListByProject(ctx context.Context, projectID string) (map[models.ComponentType]map[string]float64, error)
}

// InvalidPolicy decides what happens to a component whose data the engine
// rejects.
type InvalidPolicy string

const (
	// PolicyAbort fails the whole report on the first invalid component.
	PolicyAbort InvalidPolicy = "abort"
	// PolicySkip leaves invalid components out and records a warning.
	PolicySkip InvalidPolicy = "skip"
)

func ParseInvalidPolicy(s string) (InvalidPolicy, error) {
	switch InvalidPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("invalid on_invalid value %q (want abort or skip)", s)
}

// ReportRequest selects what to report on.
type ReportRequest struct {
	ProjectID string
	Dimension models.GroupingDimension
	Filter    models.ComponentFilter
	OnInvalid InvalidPolicy
}

// ReportService fetches a project's components and runs them through the
// aggregation engine.
type ReportService struct {
	components ComponentSource
	overrides  WeightOverrideSource
	catalog    *progress.WeightCatalog
	now        func() time.Time
}

// NewReportService wires the service. overrides may be nil when weight
// overrides are not persisted.
func NewReportService(components ComponentSource, overrides WeightOverrideSource, catalog *progress.WeightCatalog) *ReportService {
	return &ReportService{
		components: components,
		overrides:  overrides,
		catalog:    catalog,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Catalog returns the base weight catalog without project overrides.
func (s *ReportService) Catalog() *progress.WeightCatalog { return s.catalog }

// CatalogFor returns the base catalog with the project's overrides applied.
func (s *ReportService) CatalogFor(ctx context.Context, projectID string) (*progress.WeightCatalog, error) {
	if s.overrides == nil {
		return s.catalog, nil
	}
	overrides, err := s.overrides.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load weight overrides: %w", err)
	}
	types := make([]string, 0, len(overrides))
	for ct := range overrides {
		types = append(types, string(ct))
	}
	sort.Strings(types)

	cat := s.catalog
	for _, ct := range types {
		next, err := cat.WithWeights(models.ComponentType(ct), overrides[models.ComponentType(ct)])
		if err != nil {
			// stale override, e.g. a milestone removed from the catalog
			log.Printf("[report] project %s: ignoring weight override for %s: %v", projectID, ct, err)
			continue
		}
		cat = next
	}
	return cat, nil
}

// Generate builds the report for a request. With PolicySkip, components the
// engine rejects are dropped, counted and listed as warnings; with
// PolicyAbort the first such error is returned.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (models.ProgressReport, error) {
	if !req.Dimension.Valid() {
		return models.ProgressReport{}, &progress.ValidationError{Value: string(req.Dimension), Reason: "unknown grouping dimension"}
	}

	projectName, err := s.components.ProjectName(ctx, req.ProjectID)
	if err != nil {
		return models.ProgressReport{}, err
	}
	catalog, err := s.CatalogFor(ctx, req.ProjectID)
	if err != nil {
		return models.ProgressReport{}, err
	}
	components, err := s.components.ListComponents(ctx, req.ProjectID, req.Filter)
	if err != nil {
		return models.ProgressReport{}, fmt.Errorf("load components: %w", err)
	}
	groups, err := s.components.ListGroups(ctx, req.ProjectID, req.Dimension, groupFilter(req.Filter, req.Dimension))
	if err != nil {
		return models.ProgressReport{}, fmt.Errorf("load groups: %w", err)
	}

	var warnings []string
	if req.OnInvalid == PolicySkip {
		kept := components[:0:0]
		for _, rec := range components {
			if err := progress.CheckComponent(catalog, rec); err != nil {
				warnings = append(warnings, err.Error())
				continue
			}
			kept = append(kept, rec)
		}
		if len(warnings) > 0 {
			log.Printf("[report] project %s: skipped %d invalid component(s)", req.ProjectID, len(warnings))
		}
		components = kept
	}

	agg, err := progress.Aggregate(catalog, components, req.Dimension, groups)
	if err != nil {
		return models.ProgressReport{}, err
	}
	report := progress.Assemble(agg, req.Dimension, projectName, s.now())
	report.SkippedComponents = len(warnings)
	report.Warnings = warnings
	return report, nil
}

// groupFilter returns the id restriction that applies to the grouping
// dimension itself, so only selected groups are listed as known rows.
func groupFilter(f models.ComponentFilter, d models.GroupingDimension) []string {
	switch d {
	case models.DimensionArea:
		return f.AreaIDs
	case models.DimensionSystem:
		return f.SystemIDs
	case models.DimensionTestPackage:
		return f.TestPackageIDs
	}
	return nil
}

// IsDataError reports whether err came from the engine rejecting component
// data or catalog configuration, as opposed to an I/O failure.
func IsDataError(err error) bool {
	return errors.Is(err, progress.ErrConfiguration) || errors.Is(err, progress.ErrValidation)
}
