package progress

import (
	"strings"
	"time"

	"pipetrak/models"
)

// Title builds the report heading, e.g. "Plant 7 Progress by Test Package".
func Title(projectName string, dimension models.GroupingDimension) string {
	title := "Progress by " + dimension.Label()
	if p := strings.TrimSpace(projectName); p != "" {
		title = p + " " + title
	}
	return title
}

// Assemble wraps aggregation output into the report every exporter
// consumes. generatedAt is supplied by the caller; nothing else here depends
// on the clock. Rows are copied so the report does not alias agg.
func Assemble(agg Aggregation, dimension models.GroupingDimension, projectName string, generatedAt time.Time) models.ProgressReport {
	rows := make([]models.ReportRow, len(agg.Rows))
	copy(rows, agg.Rows)

	grand := agg.GrandTotal
	grand.GroupName = GrandTotalLabel
	grand.GroupID = ""

	return models.ProgressReport{
		Title:             Title(projectName, dimension),
		ProjectName:       strings.TrimSpace(projectName),
		GeneratedAt:       generatedAt,
		GroupingDimension: dimension,
		Rows:              rows,
		GrandTotal:        grand,
	}
}
