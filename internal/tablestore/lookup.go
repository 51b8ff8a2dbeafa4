package tablestore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mailajoket/stats-api/internal/domain/competition"
	"github.com/mailajoket/stats-api/internal/domain/match"
	"github.com/mailajoket/stats-api/internal/domain/season"
)

// Unknown is the sentinel returned by every resolver that cannot find its
// id. Resolvers never fail: a referential miss is data, not an error.
const Unknown = "Unknown"

// TeamName resolves a team id to its display name, or "Unknown (<id>)"
// when the id is not in the Teams table.
func (s *Store) TeamName(id int64) string {
	for _, t := range s.Teams {
		if t.ID == id {
			return t.Name
		}
	}
	return fmt.Sprintf("%s (%d)", Unknown, id)
}

// TeamNameRef resolves an optional team id; a nil id is plain "Unknown".
func (s *Store) TeamNameRef(id *int64) string {
	if id == nil {
		return Unknown
	}
	return s.TeamName(*id)
}

// CompetitionName resolves a competition id. The -1 sentinel used for
// missing linkage resolves to "Unknown" without a table scan.
func (s *Store) CompetitionName(id int64) string {
	if id == competition.UnknownID {
		return Unknown
	}
	for _, c := range s.Competitions {
		if c.ID == id {
			return c.Name
		}
	}
	return Unknown
}

// CompetitionStage resolves a competition id to its stage label.
func (s *Store) CompetitionStage(id int64) string {
	if id == competition.UnknownID {
		return Unknown
	}
	for _, c := range s.Competitions {
		if c.ID == id {
			if strings.TrimSpace(c.Stage) == "" {
				return Unknown
			}
			return c.Stage
		}
	}
	return Unknown
}

// MatchStage resolves the stage of a match, normalizing a missing
// competition id to the -1 sentinel first.
func (s *Store) MatchStage(m match.Match) string {
	id := competition.UnknownID
	if m.CompetitionID != nil {
		id = *m.CompetitionID
	}
	return s.CompetitionStage(id)
}

// SeasonLabel resolves a season id to its display label, falling back to
// "Kausi <id>" when the row is absent or lacks its years.
func (s *Store) SeasonLabel(id int64) string {
	for _, row := range s.Seasons {
		if row.ID == id {
			return row.Label()
		}
	}
	return season.FallbackLabel(id)
}

// SeasonByID returns the season row when present.
func (s *Store) SeasonByID(id int64) (season.Season, bool) {
	for _, row := range s.Seasons {
		if row.ID == id {
			return row, true
		}
	}
	return season.Season{}, false
}

// PlayerName resolves a player id to the full name, or "Unknown".
func (s *Store) PlayerName(id int64) string {
	for _, p := range s.Players {
		if p.ID == id {
			return p.FullName
		}
	}
	return Unknown
}

// AliasMap builds the case-folded alias -> canonical team id mapping.
// Blank aliases are skipped.
func (s *Store) AliasMap() map[string]int64 {
	out := make(map[string]int64, len(s.TeamAliases))
	for _, alias := range s.TeamAliases {
		name := strings.ToLower(strings.TrimSpace(alias.Name))
		if name == "" {
			continue
		}
		out[name] = alias.TeamID
	}
	return out
}

// TeamIDByName resolves a team name to its id, trying an exact match on
// the Teams table first and the alias map second (case-folded).
func (s *Store) TeamIDByName(name string) (int64, bool) {
	trimmed := strings.TrimSpace(name)
	for _, t := range s.Teams {
		if t.Name == trimmed {
			return t.ID, true
		}
	}
	if id, ok := s.AliasMap()[strings.ToLower(trimmed)]; ok {
		return id, true
	}
	return 0, false
}

// Opponents lists the distinct ids a team has faced, ascending. Matches
// with a missing side are skipped.
func (s *Store) Opponents(teamID int64) []int64 {
	seen := make(map[int64]struct{})
	for _, m := range s.Matches {
		if opponent, ok := m.OpponentID(teamID); ok {
			seen[opponent] = struct{}{}
		}
	}

	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
