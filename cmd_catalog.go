package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pipetrak/progress"
)

func catalogCmd() *cobra.Command {
	var (
		file   string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and print the milestone weight catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}
			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(map[string]any{"types": catalog.Templates()})
			}
			return printCatalog(cmd.OutOrStdout(), catalog)
		},
	}

	cmd.Flags().StringVar(&file, "file", os.Getenv("CATALOG_PATH"), "catalog YAML file (default: built-in)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML")
	return cmd
}

// printCatalog writes one block per component type and flags totals that
// would be rejected on save.
func printCatalog(w io.Writer, catalog *progress.WeightCatalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range catalog.Templates() {
		fmt.Fprintf(tw, "%s\n", t.Type)
		for _, m := range t.Milestones {
			kind := "discrete"
			if m.IsPartial {
				kind = "partial"
			}
			fmt.Fprintf(tw, "  %s\t%g\t%s\t%s\n", m.Name, m.Weight, kind, m.Category)
		}
		note := ""
		if err := catalog.ValidateWeights(t.Type, weightsOf(t)); err != nil {
			note = "  (" + err.Error() + ")"
		}
		fmt.Fprintf(tw, "  total\t%g\t\t%s\n", t.TotalWeight(), note)
	}
	return tw.Flush()
}

func weightsOf(t progress.ComponentTemplate) map[string]float64 {
	out := make(map[string]float64, len(t.Milestones))
	for _, m := range t.Milestones {
		out[m.Name] = m.Weight
	}
	return out
}
