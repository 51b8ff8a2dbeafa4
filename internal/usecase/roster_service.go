package usecase

import (
	"context"
	"sort"

	"github.com/mailajoket/stats-api/internal/domain/roster"
)

// RosterMember is one roster row joined with the player's name.
type RosterMember struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SeasonID int64  `json:"seasonId"`
}

// RosterView is the categorized roster of the selected team. Counts are
// distinct players per category; the same player in several seasons
// counts once.
type RosterView struct {
	TotalPlayers int `json:"totalPlayers"`
	Goalkeepers  int `json:"goalkeepers"`
	FieldPlayers int `json:"fieldPlayers"`
	Staff        int `json:"staff"`

	Members map[roster.Category][]RosterMember `json:"members"`
}

// SquadSizePoint is one season's roster row count.
type SquadSizePoint struct {
	SeasonID    int64  `json:"seasonId"`
	SeasonLabel string `json:"seasonLabel"`
	Players     int    `json:"players"`
}

// SquadSizeTrend is the per-season roster size series with its mean and
// max. It is always computed over the unfiltered rosters.
type SquadSizeTrend struct {
	Seasons []SquadSizePoint `json:"seasons"`
	Average float64          `json:"average"`
	Max     int              `json:"max"`
}

// RosterService builds roster views for the selected team.
type RosterService struct {
	provider StoreProvider
	teamName string
}

func NewRosterService(provider StoreProvider, teamName string) *RosterService {
	return &RosterService{provider: provider, teamName: teamName}
}

// View returns the categorized roster, optionally restricted to a season
// set. Staff never count toward the player totals.
func (s *RosterService) View(ctx context.Context, seasonIDs []int64) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.View")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return RosterView{}, err
	}

	seasons := make(map[int64]struct{}, len(seasonIDs))
	for _, id := range seasonIDs {
		seasons[id] = struct{}{}
	}
	teamID := selectedTeamID(store, s.teamName)

	view := RosterView{Members: make(map[roster.Category][]RosterMember)}
	seen := make(map[roster.Category]map[int64]struct{})
	for _, category := range []roster.Category{roster.CategoryGoalkeeper, roster.CategoryField, roster.CategoryStaff} {
		seen[category] = make(map[int64]struct{})
	}
	distinct := make(map[int64]struct{})

	for _, entry := range store.Rosters {
		if teamID != nil && entry.TeamID != *teamID {
			continue
		}
		if len(seasons) > 0 {
			if _, ok := seasons[entry.SeasonID]; !ok {
				continue
			}
		}

		category := entry.Category()
		view.Members[category] = append(view.Members[category], RosterMember{
			PlayerID: entry.PlayerID,
			Name:     store.PlayerName(entry.PlayerID),
			Role:     entry.Role,
			SeasonID: entry.SeasonID,
		})
		seen[category][entry.PlayerID] = struct{}{}
		if category != roster.CategoryStaff {
			distinct[entry.PlayerID] = struct{}{}
		}
	}

	view.TotalPlayers = len(distinct)
	view.Goalkeepers = len(seen[roster.CategoryGoalkeeper])
	view.FieldPlayers = len(seen[roster.CategoryField])
	view.Staff = len(seen[roster.CategoryStaff])

	for category := range view.Members {
		members := view.Members[category]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].SeasonID != members[j].SeasonID {
				return members[i].SeasonID < members[j].SeasonID
			}
			return members[i].Name < members[j].Name
		})
	}

	return view, nil
}

// SizeTrend returns the roster size per season over the whole Rosters
// table, ignoring every filter. The mean is rounded to one decimal.
func (s *RosterService) SizeTrend(ctx context.Context) (SquadSizeTrend, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.SizeTrend")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return SquadSizeTrend{}, err
	}

	counts := make(map[int64]int)
	for _, entry := range store.Rosters {
		counts[entry.SeasonID]++
	}
	if len(counts) == 0 {
		return SquadSizeTrend{}, nil
	}

	trend := SquadSizeTrend{Seasons: make([]SquadSizePoint, 0, len(counts))}
	total := 0
	for seasonID, players := range counts {
		trend.Seasons = append(trend.Seasons, SquadSizePoint{
			SeasonID:    seasonID,
			SeasonLabel: store.SeasonLabel(seasonID),
			Players:     players,
		})
		total += players
		if players > trend.Max {
			trend.Max = players
		}
	}
	sort.Slice(trend.Seasons, func(i, j int) bool { return trend.Seasons[i].SeasonID < trend.Seasons[j].SeasonID })
	trend.Average = round1(float64(total) / float64(len(trend.Seasons)))

	return trend, nil
}
