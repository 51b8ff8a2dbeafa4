package usecase

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteMatchesCSV renders the enriched match view as CSV. The
// perspective shape appends the selected team's outcome columns; rows
// without an applicable perspective leave them blank.
func WriteMatchesCSV(w io.Writer, rows []EnrichedMatch, perspective bool) error {
	cw := csv.NewWriter(w)

	header := []string{"match_id", "date", "home_team", "away_team", "home_goals", "away_goals", "stage", "season_id"}
	if perspective {
		header = append(header, "outcome", "goals_for", "goals_against", "goal_diff", "points")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		date := ""
		if row.Date != nil {
			date = row.Date.Format("2006-01-02")
		}
		record := []string{
			strconv.FormatInt(row.ID, 10),
			date,
			row.HomeTeamName,
			row.AwayTeamName,
			strconv.Itoa(row.HomeGoals),
			strconv.Itoa(row.AwayGoals),
			row.Stage,
			strconv.FormatInt(row.SeasonID, 10),
		}
		if perspective {
			if p := row.Perspective; p.Applicable {
				record = append(record,
					string(p.Outcome),
					strconv.Itoa(p.GoalsFor),
					strconv.Itoa(p.GoalsAgainst),
					strconv.Itoa(p.GoalDiff()),
					strconv.Itoa(p.Points()),
				)
			} else {
				record = append(record, "", "", "", "", "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
