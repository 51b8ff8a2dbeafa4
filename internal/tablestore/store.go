package tablestore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mailajoket/stats-api/internal/domain/competition"
	"github.com/mailajoket/stats-api/internal/domain/match"
	"github.com/mailajoket/stats-api/internal/domain/player"
	"github.com/mailajoket/stats-api/internal/domain/playerstats"
	"github.com/mailajoket/stats-api/internal/domain/roster"
	"github.com/mailajoket/stats-api/internal/domain/season"
	"github.com/mailajoket/stats-api/internal/domain/standing"
	"github.com/mailajoket/stats-api/internal/domain/team"
)

// Workbook sheet names, which double as table names everywhere else.
const (
	TableSeasons           = "Seasons"
	TableTeams             = "Teams"
	TableTeamAliases       = "TeamAliases"
	TableCompetitions      = "Competitions"
	TableMatches           = "Matches"
	TableStandings         = "Standings"
	TablePlayers           = "Players"
	TableRosters           = "Rosters"
	TablePlayerSeasonStats = "PlayerSeasonStats"
)

// RequiredColumns is the minimum schema per table. Extra columns are
// allowed and ignored; a missing column degrades to "no data for this
// dimension" instead of failing the load.
var RequiredColumns = map[string][]string{
	TableSeasons:           {"season_id", "start_year", "end_year"},
	TableTeams:             {"team_id", "team_name"},
	TableTeamAliases:       {"alias_name", "team_id"},
	TableCompetitions:      {"competition_id", "competition_name", "season_id", "stage"},
	TableMatches:           {"match_id", "season_id", "date", "home_team_id", "away_team_id", "home_goals", "away_goals"},
	TableStandings:         {"standing_id", "season_id", "competition_id", "team_id", "rank"},
	TablePlayers:           {"player_id", "full_name"},
	TableRosters:           {"roster_id", "season_id", "team_id", "player_id", "role"},
	TablePlayerSeasonStats: {"stat_id", "season_id", "team_id", "player_id", "goals", "assists"},
}

// TableSchema records what the loader actually found for one sheet, so the
// validation contract can report absent tables and columns even though the
// rows themselves are typed.
type TableSchema struct {
	Present bool
	Columns map[string]bool
	Rows    int
}

// Store is the immutable collection of named tables loaded from the
// workbook. It is populated once by the loader and only read afterwards;
// every derivation copies rather than mutates.
type Store struct {
	Seasons           []season.Season
	Teams             []team.Team
	TeamAliases       []team.Alias
	Competitions      []competition.Competition
	Matches           []match.Match
	Standings         []standing.Standing
	Players           []player.Player
	Rosters           []roster.Entry
	PlayerSeasonStats []playerstats.StatLine

	Schema map[string]TableSchema
}

// HasColumn reports whether the loaded sheet carried the named column.
func (s *Store) HasColumn(table, column string) bool {
	if s == nil || s.Schema == nil {
		return false
	}
	return s.Schema[table].Columns[column]
}

// ValidationReport lists every schema problem found, not just the first.
type ValidationReport struct {
	Valid    bool
	Problems []string
}

// Validate checks that every required table is present with its required
// columns. Empty tables are exempt from the column check: an empty sheet is
// a legitimate placeholder.
func (s *Store) Validate() ValidationReport {
	names := make([]string, 0, len(RequiredColumns))
	for name := range RequiredColumns {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		schema := s.Schema[name]
		if !schema.Present {
			problems = append(problems, fmt.Sprintf("table %q is missing", name))
			continue
		}
		if schema.Rows == 0 {
			continue
		}

		var missing []string
		for _, column := range RequiredColumns[name] {
			if !schema.Columns[column] {
				missing = append(missing, column)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("table %q: missing columns %s", name, strings.Join(missing, ", ")))
		}
	}

	return ValidationReport{Valid: len(problems) == 0, Problems: problems}
}
