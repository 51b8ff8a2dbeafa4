package match

import (
	"strings"
	"time"
)

const (
	SideHome = "home"
	SideAway = "away"
)

// Match is one row of the Matches table. Team ids are pointers because a
// row with either id missing cannot carry a computed outcome; goals default
// to zero when the cell is empty.
type Match struct {
	ID            int64
	SeasonID      int64
	Date          *time.Time
	HomeTeamID    *int64
	AwayTeamID    *int64
	HomeGoals     int
	AwayGoals     int
	CompetitionID *int64
}

// Involves reports whether the team played on either side.
func (m Match) Involves(teamID int64) bool {
	return m.playedAt(teamID, SideHome) || m.playedAt(teamID, SideAway)
}

// PlayedAtSide reports whether the team was on the given side. An
// unrecognized side never matches.
func (m Match) PlayedAtSide(teamID int64, side string) bool {
	return m.playedAt(teamID, NormalizeSide(side))
}

func (m Match) playedAt(teamID int64, side string) bool {
	switch side {
	case SideHome:
		return m.HomeTeamID != nil && *m.HomeTeamID == teamID
	case SideAway:
		return m.AwayTeamID != nil && *m.AwayTeamID == teamID
	default:
		return false
	}
}

// OpponentID returns the id on the other side of the match, if the team
// appears on exactly one side and both sides are known.
func (m Match) OpponentID(teamID int64) (int64, bool) {
	if m.HomeTeamID == nil || m.AwayTeamID == nil {
		return 0, false
	}
	switch teamID {
	case *m.HomeTeamID:
		return *m.AwayTeamID, true
	case *m.AwayTeamID:
		return *m.HomeTeamID, true
	default:
		return 0, false
	}
}

// NormalizeSide maps user input to a side constant; anything else,
// including "all", means no side restriction and comes back empty.
func NormalizeSide(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case SideHome:
		return SideHome
	case SideAway:
		return SideAway
	default:
		return ""
	}
}
