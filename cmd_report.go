package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"pipetrak/handlers"
	"pipetrak/models"
	"pipetrak/services"
)

// componentFile is the input of the report command: an optional project
// name and group list plus the component records.
type componentFile struct {
	ProjectName string                           `json:"project_name"`
	Groups      map[string][]models.Group        `json:"groups"`
	Components  []models.ComponentProgressRecord `json:"components"`
}

// fileComponents serves a componentFile to the report service.
type fileComponents struct {
	data componentFile
}

func (f fileComponents) ListComponents(_ context.Context, _ string, filter models.ComponentFilter) ([]models.ComponentProgressRecord, error) {
	if filter.IsZero() {
		return f.data.Components, nil
	}
	var out []models.ComponentProgressRecord
	for _, c := range f.data.Components {
		if matchesFilter(c, filter) {
			out = append(out, c)
		}
	}
	return out, nil
}

func matchesFilter(c models.ComponentProgressRecord, f models.ComponentFilter) bool {
	if len(f.ComponentTypes) > 0 && !slices.Contains(f.ComponentTypes, c.ComponentType) {
		return false
	}
	for d, ids := range map[models.GroupingDimension][]string{
		models.DimensionArea:        f.AreaIDs,
		models.DimensionSystem:      f.SystemIDs,
		models.DimensionTestPackage: f.TestPackageIDs,
	} {
		if len(ids) == 0 {
			continue
		}
		ref := c.GroupKeys.For(d)
		if ref == nil || !slices.Contains(ids, ref.ID) {
			return false
		}
	}
	return true
}

func (f fileComponents) ListGroups(_ context.Context, _ string, d models.GroupingDimension, ids []string) ([]models.Group, error) {
	groups := f.data.Groups[string(d)]
	if len(ids) == 0 {
		return groups, nil
	}
	var out []models.Group
	for _, g := range groups {
		if slices.Contains(ids, g.ID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f fileComponents) ProjectName(context.Context, string) (string, error) {
	return f.data.ProjectName, nil
}

// readComponentFile accepts either a componentFile object or a bare array of
// component records.
func readComponentFile(path string) (componentFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return componentFile{}, err
	}
	var data componentFile
	if err := json.Unmarshal(raw, &data.Components); err == nil {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return componentFile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}

func reportCmd() *cobra.Command {
	var (
		input, dimension, format, project string
		outDir, catalogPath, onInvalid    string
		prefix                            string
		componentTypes, areaIDs           []string
		systemIDs, testPackageIDs         []string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a progress report from a JSON component file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readComponentFile(input)
			if err != nil {
				return err
			}
			if project != "" {
				data.ProjectName = project
			}
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			dim, err := models.ParseGroupingDimension(dimension)
			if err != nil {
				return err
			}
			policy, err := services.ParseInvalidPolicy(onInvalid)
			if err != nil {
				return err
			}
			filter := models.ComponentFilter{AreaIDs: areaIDs, SystemIDs: systemIDs, TestPackageIDs: testPackageIDs}
			for _, ct := range componentTypes {
				filter.ComponentTypes = append(filter.ComponentTypes, models.ComponentType(ct))
			}

			svc := services.NewReportService(fileComponents{data: data}, nil, catalog)
			report, err := svc.Generate(cmd.Context(), services.ReportRequest{
				Dimension: dim,
				Filter:    filter,
				OnInvalid: policy,
			})
			if err != nil {
				if policy == services.PolicyAbort && services.IsDataError(err) {
					return fmt.Errorf("%w (rerun with --on-invalid skip to leave invalid components out)", err)
				}
				return err
			}
			for _, w := range report.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			f, err := services.ParseExportFormat(format)
			if err != nil {
				return err
			}
			out, filename, err := handlers.RenderExport(report, f, prefix)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, filename)
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON file with component records")
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "area", "area | system | test_package")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv | xlsx | pdf | json")
	cmd.Flags().StringVar(&project, "project", "", "project name used in the title and file name")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "milestone catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&onInvalid, "on-invalid", "abort", "abort | skip")
	cmd.Flags().StringVar(&prefix, "prefix", "PipeTrak", "product prefix of the file name")
	cmd.Flags().StringSliceVar(&componentTypes, "component-type", nil, "only include these component types")
	cmd.Flags().StringSliceVar(&areaIDs, "area", nil, "only include these area ids")
	cmd.Flags().StringSliceVar(&systemIDs, "system", nil, "only include these system ids")
	cmd.Flags().StringSliceVar(&testPackageIDs, "test-package", nil, "only include these test package ids")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
