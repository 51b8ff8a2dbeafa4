package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/mailajoket/stats-api/internal/domain/match"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

// Criteria is the shared match filter. Fields combine conjunctively; a
// zero field means no restriction on that dimension.
type Criteria struct {
	SeasonIDs  []int64
	Stage      string
	OpponentID *int64
	HomeAway   string
}

// EnrichedMatch is a match row joined with its display names, stage and
// the selected team's perspective.
type EnrichedMatch struct {
	match.Match

	HomeTeamName string
	AwayTeamName string
	Stage        string
	Perspective  match.Perspective
}

// MatchService produces the filtered, enriched, date-ordered match view.
type MatchService struct {
	provider StoreProvider
	teamName string
}

func NewMatchService(provider StoreProvider, teamName string) *MatchService {
	return &MatchService{provider: provider, teamName: teamName}
}

// List applies the criteria against the selected team and returns enriched
// rows sorted by date. An empty result is a valid result.
func (s *MatchService) List(ctx context.Context, criteria Criteria) ([]EnrichedMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.List")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	teamID := selectedTeamID(store, s.teamName)
	rows := FilterMatches(store, teamID, criteria)
	enriched := EnrichMatches(store, teamID, rows)
	SortMatchesByDate(enriched)

	return enriched, nil
}

// FilterMatches applies every criteria dimension independently. The
// opponent and side dimensions need the team id to pair against; with a
// nil team they match no rows.
func FilterMatches(store *tablestore.Store, teamID *int64, criteria Criteria) []match.Match {
	seasons := make(map[int64]struct{}, len(criteria.SeasonIDs))
	for _, id := range criteria.SeasonIDs {
		seasons[id] = struct{}{}
	}
	stage := normalizeStage(criteria.Stage)
	side := match.NormalizeSide(criteria.HomeAway)

	out := make([]match.Match, 0, len(store.Matches))
	for _, m := range store.Matches {
		if len(seasons) > 0 {
			if _, ok := seasons[m.SeasonID]; !ok {
				continue
			}
		}
		if teamID != nil && !m.Involves(*teamID) {
			continue
		}
		if stage != "" && store.MatchStage(m) != stage {
			continue
		}
		if criteria.OpponentID != nil {
			if teamID == nil {
				continue
			}
			opponent, ok := m.OpponentID(*teamID)
			if !ok || opponent != *criteria.OpponentID {
				continue
			}
		}
		if side != "" {
			if teamID == nil || !m.PlayedAtSide(*teamID, side) {
				continue
			}
		}
		out = append(out, m)
	}

	return out
}

// normalizeStage maps the "all" sentinel to no restriction, the way
// match.NormalizeSide treats it for sides.
func normalizeStage(value string) string {
	stage := strings.TrimSpace(value)
	if strings.EqualFold(stage, "all") {
		return ""
	}
	return stage
}

// EnrichMatches joins each row with team names, stage and the selected
// team's perspective. A nil team id leaves every perspective
// not applicable.
func EnrichMatches(store *tablestore.Store, teamID *int64, rows []match.Match) []EnrichedMatch {
	out := make([]EnrichedMatch, 0, len(rows))
	for _, m := range rows {
		enriched := EnrichedMatch{
			Match:        m,
			HomeTeamName: store.TeamNameRef(m.HomeTeamID),
			AwayTeamName: store.TeamNameRef(m.AwayTeamID),
			Stage:        store.MatchStage(m),
		}
		if teamID != nil {
			enriched.Perspective = match.PerspectiveFor(m, *teamID)
		}
		out = append(out, enriched)
	}
	return out
}

// SortMatchesByDate orders rows date ascending in place. Rows without a
// date sort last; ties keep their incoming order.
func SortMatchesByDate(rows []EnrichedMatch) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Date, rows[j].Date
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}
