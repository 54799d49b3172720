package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"pipetrak/models"
	"pipetrak/utils"
)

// ComponentRepository reads the component universe of a project. The
// components table and its group tables are owned by the tracking
// application; this reader never writes to them.
type ComponentRepository struct {
	db *sql.DB
}

func NewComponentRepository(db *sql.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

const componentsQuery = `
	SELECT c.id::text, c.component_type,
	       a.id::text, a.name,
	       s.id::text, s.name,
	       tp.id::text, tp.name,
	       c.current_milestones, c.percent_complete, c.is_retired
	FROM components c
	LEFT JOIN areas a ON a.id = c.area_id
	LEFT JOIN systems s ON s.id = c.system_id
	LEFT JOIN test_packages tp ON tp.id = c.test_package_id
	WHERE c.project_id = $1
	  AND ($2::text[] IS NULL OR c.component_type = ANY($2))
	  AND ($3::text[] IS NULL OR c.area_id::text = ANY($3))
	  AND ($4::text[] IS NULL OR c.system_id::text = ANY($4))
	  AND ($5::text[] IS NULL OR c.test_package_id::text = ANY($5))
	ORDER BY c.id`

// ListComponents returns every component of the project that passes the
// filter, retired ones included; excluding them is the aggregator's job.
func (r *ComponentRepository) ListComponents(ctx context.Context, projectID string, filter models.ComponentFilter) ([]models.ComponentProgressRecord, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.ComponentFetchTimeout)
	defer cancel()

	types := make([]string, 0, len(filter.ComponentTypes))
	for _, t := range filter.ComponentTypes {
		types = append(types, string(t))
	}

	rows, err := r.db.QueryContext(ctx, componentsQuery, projectID,
		nullableArray(types), nullableArray(filter.AreaIDs),
		nullableArray(filter.SystemIDs), nullableArray(filter.TestPackageIDs))
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	var out []models.ComponentProgressRecord
	for rows.Next() {
		var (
			rec                    models.ComponentProgressRecord
			componentType          string
			areaID, areaName       sql.NullString
			systemID, systemName   sql.NullString
			packageID, packageName sql.NullString
			milestones             []byte
			percent                sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &componentType,
			&areaID, &areaName, &systemID, &systemName, &packageID, &packageName,
			&milestones, &percent, &rec.IsRetired); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		rec.ComponentType = models.ComponentType(componentType)
		rec.GroupKeys = models.GroupKeys{
			Area:        groupRef(areaID, areaName),
			System:      groupRef(systemID, systemName),
			TestPackage: groupRef(packageID, packageName),
		}
		rec.PercentComplete = percent.Float64
		state, err := DecodeMilestones(milestones)
		if err != nil {
			// kept so the report's invalid-data policy decides what happens
			log.Printf("[report] component %s: %v", rec.ID, err)
			rec.UnreadableMilestones = string(milestones)
			state = models.MilestoneState{}
		}
		rec.CurrentMilestones = state
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate components: %w", err)
	}
	return out, nil
}

var groupTables = map[models.GroupingDimension]string{
	models.DimensionArea:        "areas",
	models.DimensionSystem:      "systems",
	models.DimensionTestPackage: "test_packages",
}

// ListGroups returns the project's known groups on a dimension, optionally
// narrowed to ids. These rows appear in a report even when empty.
func (r *ComponentRepository) ListGroups(ctx context.Context, projectID string, dimension models.GroupingDimension, ids []string) ([]models.Group, error) {
	table, ok := groupTables[dimension]
	if !ok {
		return nil, fmt.Errorf("unknown grouping dimension %q", dimension)
	}
	ctx, cancel := utils.QueryContext(ctx, utils.DefaultQueryTimeout)
	defer cancel()

	query := `SELECT id::text, name FROM ` + table + `
		WHERE project_id = $1 AND ($2::text[] IS NULL OR id::text = ANY($2))
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID, nullableArray(ids))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// ProjectName looks up the display name of a project.
func (r *ComponentRepository) ProjectName(ctx context.Context, projectID string) (string, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = $1`, projectID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query project: %w", err)
	}
	return name, nil
}

// DecodeMilestones parses the JSONB milestone column. NULL and empty
// documents mean no milestone has been recorded. Values that are neither a
// boolean nor a number decode as models.Unreadable; only a document that is
// not a JSON object is an error.
func DecodeMilestones(raw []byte) (models.MilestoneState, error) {
	state := models.MilestoneState{}
	if len(raw) == 0 || string(raw) == "null" {
		return state, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode milestones: %w", err)
	}
	return state, nil
}

func groupRef(id, name sql.NullString) *models.GroupRef {
	if !id.Valid || id.String == "" {
		return nil
	}
	return &models.GroupRef{ID: id.String, Name: name.String}
}

// nullableArray binds an empty filter as SQL NULL, which the queries read as
// "no restriction".
func nullableArray(values []string) interface{} {
	if len(values) == 0 {
		return nil
	}
	return pq.Array(values)
}
