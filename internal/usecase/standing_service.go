package usecase

import (
	"context"
	"sort"
)

// StandingRow is one team's placement in a standings table.
type StandingRow struct {
	Rank           int    `json:"rank"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	IsSelectedTeam bool   `json:"isSelectedTeam"`
}

// StandingTable is one competition's final table within a season.
type StandingTable struct {
	SeasonID        int64         `json:"seasonId"`
	SeasonLabel     string        `json:"seasonLabel"`
	CompetitionID   int64         `json:"competitionId"`
	CompetitionName string        `json:"competitionName"`
	Stage           string        `json:"stage"`
	Rows            []StandingRow `json:"rows"`
}

// StandingService joins the Standings table with competition and team
// names, grouped per season and competition.
type StandingService struct {
	provider StoreProvider
	teamName string
}

func NewStandingService(provider StoreProvider, teamName string) *StandingService {
	return &StandingService{provider: provider, teamName: teamName}
}

// Tables returns every standings table, optionally restricted to a
// season set. Tables come newest season first; rows come in rank order.
func (s *StandingService) Tables(ctx context.Context, seasonIDs []int64) ([]StandingTable, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingService.Tables")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	seasons := make(map[int64]struct{}, len(seasonIDs))
	for _, id := range seasonIDs {
		seasons[id] = struct{}{}
	}
	teamID := selectedTeamID(store, s.teamName)

	type key struct{ seasonID, competitionID int64 }
	index := make(map[key]int)
	tables := make([]StandingTable, 0)

	for _, row := range store.Standings {
		if len(seasons) > 0 {
			if _, ok := seasons[row.SeasonID]; !ok {
				continue
			}
		}

		k := key{row.SeasonID, row.CompetitionID}
		i, seen := index[k]
		if !seen {
			i = len(tables)
			index[k] = i
			tables = append(tables, StandingTable{
				SeasonID:        row.SeasonID,
				SeasonLabel:     store.SeasonLabel(row.SeasonID),
				CompetitionID:   row.CompetitionID,
				CompetitionName: store.CompetitionName(row.CompetitionID),
				Stage:           store.CompetitionStage(row.CompetitionID),
			})
		}

		tables[i].Rows = append(tables[i].Rows, StandingRow{
			Rank:           row.Rank,
			TeamID:         row.TeamID,
			TeamName:       store.TeamName(row.TeamID),
			IsSelectedTeam: teamID != nil && row.TeamID == *teamID,
		})
	}

	for i := range tables {
		rows := tables[i].Rows
		sort.SliceStable(rows, func(a, b int) bool { return rows[a].Rank < rows[b].Rank })
	}
	sort.SliceStable(tables, func(a, b int) bool {
		if tables[a].SeasonID != tables[b].SeasonID {
			return tables[a].SeasonID > tables[b].SeasonID
		}
		return tables[a].CompetitionID < tables[b].CompetitionID
	})

	return tables, nil
}
