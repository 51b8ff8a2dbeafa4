package workbook

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

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

// dateLayouts are tried in order when parsing match dates. excelize
// returns formatted cell text, so both ISO and the common Finnish
// dotted format show up in practice.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"1/2/06 15:04",
	"01-02-06",
}

// Load reads the workbook at path into a typed store. A missing sheet or
// a missing column is recorded in the store's schema, never an error:
// only an unreadable file fails the load.
func Load(path string) (*tablestore.Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %q", path)
	}
	defer f.Close()

	store := &tablestore.Store{Schema: make(map[string]tablestore.TableSchema)}

	sheets := map[string]func(*tablestore.Store, sheet){
		tablestore.TableSeasons:           decodeSeasons,
		tablestore.TableTeams:             decodeTeams,
		tablestore.TableTeamAliases:       decodeTeamAliases,
		tablestore.TableCompetitions:      decodeCompetitions,
		tablestore.TableMatches:           decodeMatches,
		tablestore.TableStandings:         decodeStandings,
		tablestore.TablePlayers:           decodePlayers,
		tablestore.TableRosters:           decodeRosters,
		tablestore.TablePlayerSeasonStats: decodePlayerSeasonStats,
	}

	for name, decode := range sheets {
		sh, ok, err := readSheet(f, name)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %q", name)
		}
		store.Schema[name] = sh.schema(ok)
		if ok {
			decode(store, sh)
		}
	}

	return store, nil
}

// sheet is one worksheet after header mapping: column name (lowered,
// trimmed) to index, plus the non-blank data rows.
type sheet struct {
	columns map[string]int
	rows    [][]string
}

func readSheet(f *excelize.File, name string) (sheet, bool, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return sheet{}, false, err
	}
	if idx < 0 {
		return sheet{}, false, nil
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return sheet{}, false, err
	}
	if len(rows) == 0 {
		return sheet{columns: map[string]int{}}, true, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if key == "" {
			continue
		}
		columns[key] = i
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		data = append(data, row)
	}

	return sheet{columns: columns, rows: data}, true, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (s sheet) schema(present bool) tablestore.TableSchema {
	if !present {
		return tablestore.TableSchema{}
	}
	columns := make(map[string]bool, len(s.columns))
	for name := range s.columns {
		columns[name] = true
	}
	return tablestore.TableSchema{Present: true, Columns: columns, Rows: len(s.rows)}
}

func (s sheet) cell(row []string, column string) string {
	idx, ok := s.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseInt tolerates the float rendering spreadsheets give whole
// numbers, so "3.0" decodes as 3.
func parseInt(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(text); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func parseID(text string) (int64, bool) {
	v, ok := parseInt(text)
	return int64(v), ok
}

func (s sheet) intCell(row []string, column string) int {
	v, _ := parseInt(s.cell(row, column))
	return v
}

func (s sheet) idCell(row []string, column string) int64 {
	v, _ := parseID(s.cell(row, column))
	return v
}

func (s sheet) idPtrCell(row []string, column string) *int64 {
	if v, ok := parseID(s.cell(row, column)); ok {
		return &v
	}
	return nil
}

func (s sheet) intPtrCell(row []string, column string) *int {
	if v, ok := parseInt(s.cell(row, column)); ok {
		return &v
	}
	return nil
}

func (s sheet) boolPtrCell(row []string, column string) *bool {
	text := strings.ToLower(s.cell(row, column))
	if text == "" {
		return nil
	}
	v := text == "true" || text == "1" || text == "yes" || text == "kyllä" || text == "x"
	return &v
}

func (s sheet) dateCell(row []string, column string) *time.Time {
	text := s.cell(row, column)
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

func decodeSeasons(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "season_id"))
		if !ok {
			continue
		}
		store.Seasons = append(store.Seasons, season.Season{
			ID:        id,
			StartYear: s.intPtrCell(row, "start_year"),
			EndYear:   s.intPtrCell(row, "end_year"),
		})
	}
}

func decodeTeams(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "team_id"))
		if !ok {
			continue
		}
		store.Teams = append(store.Teams, team.Team{
			ID:   id,
			Name: s.cell(row, "team_name"),
		})
	}
}

func decodeTeamAliases(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "team_id"))
		if !ok {
			continue
		}
		name := s.cell(row, "alias_name")
		if name == "" {
			continue
		}
		store.TeamAliases = append(store.TeamAliases, team.Alias{Name: name, TeamID: id})
	}
}

func decodeCompetitions(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "competition_id"))
		if !ok {
			continue
		}
		store.Competitions = append(store.Competitions, competition.Competition{
			ID:       id,
			Name:     s.cell(row, "competition_name"),
			SeasonID: s.idCell(row, "season_id"),
			Stage:    s.cell(row, "stage"),
		})
	}
}

func decodeMatches(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "match_id"))
		if !ok {
			continue
		}
		store.Matches = append(store.Matches, match.Match{
			ID:            id,
			SeasonID:      s.idCell(row, "season_id"),
			Date:          s.dateCell(row, "date"),
			HomeTeamID:    s.idPtrCell(row, "home_team_id"),
			AwayTeamID:    s.idPtrCell(row, "away_team_id"),
			HomeGoals:     s.intCell(row, "home_goals"),
			AwayGoals:     s.intCell(row, "away_goals"),
			CompetitionID: s.idPtrCell(row, "competition_id"),
		})
	}
}

func decodeStandings(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "standing_id"))
		if !ok {
			continue
		}
		store.Standings = append(store.Standings, standing.Standing{
			ID:            id,
			SeasonID:      s.idCell(row, "season_id"),
			CompetitionID: s.idCell(row, "competition_id"),
			TeamID:        s.idCell(row, "team_id"),
			Rank:          s.intCell(row, "rank"),
		})
	}
}

func decodePlayers(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "player_id"))
		if !ok {
			continue
		}
		store.Players = append(store.Players, player.Player{
			ID:       id,
			FullName: s.cell(row, "full_name"),
		})
	}
}

func decodeRosters(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "roster_id"))
		if !ok {
			continue
		}
		store.Rosters = append(store.Rosters, roster.Entry{
			ID:       id,
			SeasonID: s.idCell(row, "season_id"),
			TeamID:   s.idCell(row, "team_id"),
			PlayerID: s.idCell(row, "player_id"),
			Role:     s.cell(row, "role"),
			Staff:    s.boolPtrCell(row, "is_staff"),
		})
	}
}

func decodePlayerSeasonStats(store *tablestore.Store, s sheet) {
	for _, row := range s.rows {
		id, ok := parseID(s.cell(row, "stat_id"))
		if !ok {
			continue
		}
		store.PlayerSeasonStats = append(store.PlayerSeasonStats, playerstats.StatLine{
			ID:       id,
			SeasonID: s.idCell(row, "season_id"),
			TeamID:   s.idCell(row, "team_id"),
			PlayerID: s.idCell(row, "player_id"),
			Goals:    s.intCell(row, "goals"),
			Assists:  s.intCell(row, "assists"),
			Points:   s.intPtrCell(row, "points"),
		})
	}
}
