package tablestore

import (
	"strings"
	"testing"
)

func fullSchema() map[string]TableSchema {
	out := make(map[string]TableSchema, len(RequiredColumns))
	for name, columns := range RequiredColumns {
		present := make(map[string]bool, len(columns))
		for _, column := range columns {
			present[column] = true
		}
		out[name] = TableSchema{Present: true, Columns: present, Rows: 1}
	}
	return out
}

func TestValidateCleanStore(t *testing.T) {
	t.Parallel()

	store := &Store{Schema: fullSchema()}
	report := store.Validate()
	if !report.Valid || len(report.Problems) != 0 {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestValidateMissingTable(t *testing.T) {
	t.Parallel()

	schema := fullSchema()
	delete(schema, TableStandings)
	report := (&Store{Schema: schema}).Validate()

	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if len(report.Problems) != 1 || !strings.Contains(report.Problems[0], `"Standings"`) {
		t.Fatalf("problems=%v", report.Problems)
	}
}

func TestValidateMissingColumn(t *testing.T) {
	t.Parallel()

	schema := fullSchema()
	matches := schema[TableMatches]
	delete(matches.Columns, "home_goals")
	delete(matches.Columns, "away_goals")
	schema[TableMatches] = matches

	report := (&Store{Schema: schema}).Validate()
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if len(report.Problems) != 1 {
		t.Fatalf("problems=%v", report.Problems)
	}
	if !strings.Contains(report.Problems[0], "home_goals, away_goals") {
		t.Fatalf("problem should list columns in declared order: %q", report.Problems[0])
	}
}

func TestValidateEmptyTableSkipsColumnCheck(t *testing.T) {
	t.Parallel()

	schema := fullSchema()
	schema[TableRosters] = TableSchema{Present: true, Rows: 0}

	report := (&Store{Schema: schema}).Validate()
	if !report.Valid {
		t.Fatalf("empty table must pass the column check, got %+v", report)
	}
}

func TestHasColumn(t *testing.T) {
	t.Parallel()

	store := &Store{Schema: fullSchema()}
	if !store.HasColumn(TablePlayerSeasonStats, "goals") {
		t.Fatal("expected goals column")
	}
	if store.HasColumn(TablePlayerSeasonStats, "points") {
		t.Fatal("points not loaded")
	}
	if (&Store{}).HasColumn(TableTeams, "team_id") {
		t.Fatal("nil schema must report false")
	}
}
