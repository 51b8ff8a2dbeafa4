package usecase

import (
	"context"
	"testing"

	"github.com/mailajoket/stats-api/internal/domain/roster"
)

func TestRosterService_View(t *testing.T) {
	t.Parallel()

	service := NewRosterService(fixtureProvider(t), "Mailajoket")

	got, err := service.View(context.Background(), nil)
	if err != nil {
		t.Fatalf("View error: %v", err)
	}

	// Player 100 appears in both seasons but counts once.
	if got.TotalPlayers != 2 {
		t.Fatalf("expected 2 distinct players, got %d", got.TotalPlayers)
	}
	if got.Goalkeepers != 1 || got.FieldPlayers != 1 || got.Staff != 2 {
		t.Fatalf("unexpected category counts: %+v", got)
	}

	field := got.Members[roster.CategoryField]
	if len(field) != 2 || field[0].SeasonID != 1 || field[1].SeasonID != 2 {
		t.Fatalf("unexpected field members: %+v", field)
	}
	if field[0].Name != "Aki Mailanen" {
		t.Fatalf("unexpected member name: %+v", field[0])
	}

	staff := got.Members[roster.CategoryStaff]
	for _, member := range staff {
		if member.PlayerID == 103 && member.Name != "Unknown" {
			t.Fatalf("unknown player must resolve to Unknown, got %q", member.Name)
		}
	}

	// The other team's entry stays out entirely.
	for _, members := range got.Members {
		for _, member := range members {
			if member.PlayerID == 200 {
				t.Fatalf("foreign roster entry leaked: %+v", member)
			}
		}
	}
}

func TestRosterService_View_SeasonFilter(t *testing.T) {
	t.Parallel()

	service := NewRosterService(fixtureProvider(t), "Mailajoket")

	got, err := service.View(context.Background(), []int64{2})
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if got.TotalPlayers != 1 || got.Goalkeepers != 0 || got.Staff != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}

func TestRosterService_SizeTrend_IgnoresFilters(t *testing.T) {
	t.Parallel()

	service := NewRosterService(fixtureProvider(t), "Mailajoket")

	got, err := service.SizeTrend(context.Background())
	if err != nil {
		t.Fatalf("SizeTrend error: %v", err)
	}

	// Every roster row counts, the other team's included.
	if len(got.Seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %+v", got.Seasons)
	}
	if got.Seasons[0].SeasonID != 1 || got.Seasons[0].Players != 4 {
		t.Fatalf("unexpected first season: %+v", got.Seasons[0])
	}
	if got.Seasons[0].SeasonLabel != "2014-2015" {
		t.Fatalf("unexpected label: %q", got.Seasons[0].SeasonLabel)
	}
	if got.Seasons[1].Players != 2 {
		t.Fatalf("unexpected second season: %+v", got.Seasons[1])
	}
	if got.Average != 3.0 || got.Max != 4 {
		t.Fatalf("unexpected aggregates: %+v", got)
	}
}
