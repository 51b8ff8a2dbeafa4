package httpapi

import (
	"github.com/mailajoket/stats-api/internal/domain/team"
	"github.com/mailajoket/stats-api/internal/usecase"
)

type teamDTO struct {
	TeamID int64  `json:"teamId"`
	Name   string `json:"name"`
}

func teamToDTO(row team.Team) teamDTO {
	return teamDTO{TeamID: row.ID, Name: row.Name}
}

type matchPerspectiveDTO struct {
	Outcome      string `json:"outcome"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
}

type matchDTO struct {
	MatchID      int64                `json:"matchId"`
	SeasonID     int64                `json:"seasonId"`
	Date         *string              `json:"date"`
	Stage        string               `json:"stage"`
	HomeTeamID   *int64               `json:"homeTeamId"`
	HomeTeamName string               `json:"homeTeamName"`
	AwayTeamID   *int64               `json:"awayTeamId"`
	AwayTeamName string               `json:"awayTeamName"`
	HomeGoals    int                  `json:"homeGoals"`
	AwayGoals    int                  `json:"awayGoals"`
	Perspective  *matchPerspectiveDTO `json:"perspective,omitempty"`
}

func matchToDTO(row usecase.EnrichedMatch, withPerspective bool) matchDTO {
	dto := matchDTO{
		MatchID:      row.ID,
		SeasonID:     row.SeasonID,
		Stage:        row.Stage,
		HomeTeamID:   row.HomeTeamID,
		HomeTeamName: row.HomeTeamName,
		AwayTeamID:   row.AwayTeamID,
		AwayTeamName: row.AwayTeamName,
		HomeGoals:    row.HomeGoals,
		AwayGoals:    row.AwayGoals,
	}
	if row.Date != nil {
		formatted := row.Date.Format("2006-01-02")
		dto.Date = &formatted
	}
	if withPerspective && row.Perspective.Applicable {
		dto.Perspective = &matchPerspectiveDTO{
			Outcome:      string(row.Perspective.Outcome),
			GoalsFor:     row.Perspective.GoalsFor,
			GoalsAgainst: row.Perspective.GoalsAgainst,
			GoalDiff:     row.Perspective.GoalDiff(),
			Points:       row.Perspective.Points(),
		}
	}
	return dto
}
