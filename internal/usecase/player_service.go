package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mailajoket/stats-api/internal/domain/playerstats"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

// PlayerTotals is one player's career line across every stat row.
type PlayerTotals struct {
	PlayerID        int64   `json:"playerId"`
	Name            string  `json:"name"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Points          int     `json:"points"`
	Seasons         int     `json:"seasons"`
	GoalsPerSeason  float64 `json:"goalsPerSeason"`
	PointsPerSeason float64 `json:"pointsPerSeason"`
}

// SeasonLine is one player's output in one season, label resolved.
type SeasonLine struct {
	SeasonID    int64  `json:"seasonId"`
	SeasonLabel string `json:"seasonLabel"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Points      int    `json:"points"`
}

// PlayerHighlights is the detail view for one player: career totals plus
// the strongest and weakest season by points.
type PlayerHighlights struct {
	Totals      PlayerTotals `json:"totals"`
	Seasons     []SeasonLine `json:"seasons"`
	BestSeason  SeasonLine   `json:"bestSeason"`
	WorstSeason SeasonLine   `json:"worstSeason"`
}

// PlayerService aggregates the PlayerSeasonStats table into leaderboards
// and per-player views.
type PlayerService struct {
	provider StoreProvider
}

func NewPlayerService(provider StoreProvider) *PlayerService {
	return &PlayerService{provider: provider}
}

// Leaderboard returns player totals ordered by points descending, goals
// breaking ties. A non-empty query keeps only players whose name matches
// by folded substring or fuzzily. A positive limit caps the result.
func (s *PlayerService) Leaderboard(ctx context.Context, query string, limit int) ([]PlayerTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Leaderboard")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	totals := AggregatePlayers(store)
	if query = strings.TrimSpace(query); query != "" {
		matched := totals[:0]
		for _, row := range totals {
			if matchesPlayerName(query, row.Name) {
				matched = append(matched, row)
			}
		}
		totals = matched
	}

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}

	return totals, nil
}

// Highlights returns the per-season breakdown for one player. A player
// with no stat rows is not found.
func (s *PlayerService) Highlights(ctx context.Context, playerID int64) (PlayerHighlights, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Highlights")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return PlayerHighlights{}, err
	}

	var lines []playerstats.StatLine
	for _, row := range store.PlayerSeasonStats {
		if row.PlayerID == playerID {
			lines = append(lines, row)
		}
	}
	if len(lines) == 0 {
		return PlayerHighlights{}, fmt.Errorf("%w: player=%d has no stat rows", ErrNotFound, playerID)
	}

	seasons := make([]SeasonLine, 0, len(lines))
	for _, line := range lines {
		seasons = append(seasons, SeasonLine{
			SeasonID:    line.SeasonID,
			SeasonLabel: store.SeasonLabel(line.SeasonID),
			Goals:       line.Goals,
			Assists:     line.Assists,
			Points:      line.TotalPoints(),
		})
	}
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].SeasonID < seasons[j].SeasonID })

	best, worst := seasons[0], seasons[0]
	for _, line := range seasons[1:] {
		if line.Points > best.Points {
			best = line
		}
		if line.Points < worst.Points {
			worst = line
		}
	}

	return PlayerHighlights{
		Totals:      playerTotals(store, playerID, lines),
		Seasons:     seasons,
		BestSeason:  best,
		WorstSeason: worst,
	}, nil
}

// AggregatePlayers folds every stat row into per-player totals, ordered
// by points descending then goals descending.
func AggregatePlayers(store *tablestore.Store) []PlayerTotals {
	index := make(map[int64][]playerstats.StatLine)
	order := make([]int64, 0)
	for _, row := range store.PlayerSeasonStats {
		if _, seen := index[row.PlayerID]; !seen {
			order = append(order, row.PlayerID)
		}
		index[row.PlayerID] = append(index[row.PlayerID], row)
	}

	out := make([]PlayerTotals, 0, len(order))
	for _, id := range order {
		out = append(out, playerTotals(store, id, index[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Goals > out[j].Goals
	})

	return out
}

func playerTotals(store *tablestore.Store, playerID int64, lines []playerstats.StatLine) PlayerTotals {
	totals := PlayerTotals{PlayerID: playerID, Name: store.PlayerName(playerID)}

	seasons := make(map[int64]struct{})
	for _, line := range lines {
		totals.Goals += line.Goals
		totals.Assists += line.Assists
		totals.Points += line.TotalPoints()
		seasons[line.SeasonID] = struct{}{}
	}
	totals.Seasons = len(seasons)
	if totals.Seasons > 0 {
		totals.GoalsPerSeason = round2(float64(totals.Goals) / float64(totals.Seasons))
		totals.PointsPerSeason = round2(float64(totals.Points) / float64(totals.Seasons))
	}

	return totals
}

func matchesPlayerName(query, name string) bool {
	if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
		return true
	}
	return fuzzy.MatchNormalizedFold(query, name)
}
