package usecase

import (
	"context"
	"strings"
	"testing"
)

func TestWriteMatchesCSV(t *testing.T) {
	t.Parallel()

	service := NewMatchService(fixtureProvider(t), "Mailajoket")
	rows, err := service.List(context.Background(), Criteria{SeasonIDs: []int64{1}})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	var raw strings.Builder
	if err := WriteMatchesCSV(&raw, rows, false); err != nil {
		t.Fatalf("WriteMatchesCSV error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(raw.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d lines", len(lines))
	}
	if lines[0] != "match_id,date,home_team,away_team,home_goals,away_goals,stage,season_id" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,2014-10-04,Mailajoket,Kiekkokarhut,5,3,Runkosarja,1" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}

	var perspective strings.Builder
	if err := WriteMatchesCSV(&perspective, rows, true); err != nil {
		t.Fatalf("WriteMatchesCSV error: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(perspective.String()), "\n")
	if !strings.HasSuffix(lines[0], ",outcome,goals_for,goals_against,goal_diff,points") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",W,5,3,2,2") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	// The undated match lacks a date but keeps its perspective columns.
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "4,,") || !strings.HasSuffix(last, ",W,1,0,1,2") {
		t.Fatalf("unexpected undated row: %q", last)
	}
}
