package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/mailajoket/stats-api/internal/domain/competition"
	"github.com/mailajoket/stats-api/internal/domain/match"
	"github.com/mailajoket/stats-api/internal/domain/player"
	"github.com/mailajoket/stats-api/internal/domain/playerstats"
	"github.com/mailajoket/stats-api/internal/domain/roster"
	"github.com/mailajoket/stats-api/internal/domain/season"
	"github.com/mailajoket/stats-api/internal/domain/standing"
	"github.com/mailajoket/stats-api/internal/domain/team"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

type stubProvider struct {
	store *tablestore.Store
	err   error
}

func (p *stubProvider) Store(ctx context.Context) (*tablestore.Store, error) {
	return p.store, p.err
}

func yearPtr(v int) *int     { return &v }
func teamPtr(v int64) *int64 { return &v }
func intPtr2(v int) *int     { return &v }

func day(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return &parsed
}

// fixtureStore is the shared scenario: Mailajoket (team 1) across two
// seasons against Kiekkokarhut (2) and Sudet (3), with one undated match,
// one match missing its away side and one match not involving the team.
func fixtureStore(t *testing.T) *tablestore.Store {
	t.Helper()

	return &tablestore.Store{
		Seasons: []season.Season{
			{ID: 1, StartYear: yearPtr(2014), EndYear: yearPtr(2015)},
			{ID: 2, StartYear: yearPtr(2015), EndYear: yearPtr(2016)},
		},
		Teams: []team.Team{
			{ID: 1, Name: "Mailajoket"},
			{ID: 2, Name: "Kiekkokarhut"},
			{ID: 3, Name: "Sudet"},
		},
		TeamAliases: []team.Alias{
			{Name: "MJ", TeamID: 1},
		},
		Competitions: []competition.Competition{
			{ID: 10, Name: "Harrastesarja", SeasonID: 1, Stage: "Runkosarja"},
			{ID: 11, Name: "Harrastesarja", SeasonID: 1, Stage: "Playoffs"},
			{ID: 20, Name: "Harrastesarja", SeasonID: 2, Stage: "Runkosarja"},
		},
		Matches: []match.Match{
			{ID: 1, SeasonID: 1, Date: day(t, "2014-10-04"), HomeTeamID: teamPtr(1), AwayTeamID: teamPtr(2), HomeGoals: 5, AwayGoals: 3, CompetitionID: teamPtr(10)},
			{ID: 2, SeasonID: 1, Date: day(t, "2014-10-11"), HomeTeamID: teamPtr(2), AwayTeamID: teamPtr(1), HomeGoals: 4, AwayGoals: 1, CompetitionID: teamPtr(10)},
			{ID: 3, SeasonID: 1, Date: day(t, "2014-10-18"), HomeTeamID: teamPtr(1), AwayTeamID: teamPtr(3), HomeGoals: 2, AwayGoals: 2, CompetitionID: teamPtr(11)},
			{ID: 4, SeasonID: 1, HomeTeamID: teamPtr(1), AwayTeamID: teamPtr(2), HomeGoals: 1, AwayGoals: 0},
			{ID: 5, SeasonID: 2, Date: day(t, "2015-10-02"), HomeTeamID: teamPtr(3), AwayTeamID: teamPtr(1), HomeGoals: 0, AwayGoals: 4, CompetitionID: teamPtr(20)},
			{ID: 6, SeasonID: 2, Date: day(t, "2015-10-09"), HomeTeamID: teamPtr(2), AwayTeamID: teamPtr(3), HomeGoals: 3, AwayGoals: 1, CompetitionID: teamPtr(20)},
			{ID: 7, SeasonID: 2, Date: day(t, "2015-10-16"), HomeTeamID: teamPtr(1), HomeGoals: 2, AwayGoals: 2, CompetitionID: teamPtr(20)},
		},
		Standings: []standing.Standing{
			{ID: 1, SeasonID: 1, CompetitionID: 10, TeamID: 2, Rank: 1},
			{ID: 2, SeasonID: 1, CompetitionID: 10, TeamID: 1, Rank: 2},
			{ID: 3, SeasonID: 2, CompetitionID: 20, TeamID: 1, Rank: 1},
		},
		Players: []player.Player{
			{ID: 100, FullName: "Aki Mailanen"},
			{ID: 101, FullName: "Pekka Kiekko"},
			{ID: 102, FullName: "Ville Vahti"},
		},
		Rosters: []roster.Entry{
			{ID: 1, SeasonID: 1, TeamID: 1, PlayerID: 100, Role: "Hyökkääjä"},
			{ID: 2, SeasonID: 1, TeamID: 1, PlayerID: 101, Role: "Maalivahti"},
			{ID: 3, SeasonID: 1, TeamID: 1, PlayerID: 102, Role: "Huoltaja"},
			{ID: 4, SeasonID: 1, TeamID: 2, PlayerID: 200, Role: "Hyökkääjä"},
			{ID: 5, SeasonID: 2, TeamID: 1, PlayerID: 100, Role: "Puolustaja"},
			{ID: 6, SeasonID: 2, TeamID: 1, PlayerID: 103, Role: "Valmentaja"},
		},
		PlayerSeasonStats: []playerstats.StatLine{
			{ID: 1, SeasonID: 1, TeamID: 1, PlayerID: 100, Goals: 10, Assists: 5},
			{ID: 2, SeasonID: 2, TeamID: 1, PlayerID: 100, Goals: 8, Assists: 2, Points: intPtr2(12)},
			{ID: 3, SeasonID: 1, TeamID: 1, PlayerID: 101, Goals: 0, Assists: 1},
		},
	}
}

func fixtureProvider(t *testing.T) *stubProvider {
	t.Helper()
	return &stubProvider{store: fixtureStore(t)}
}
