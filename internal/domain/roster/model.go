package roster

import "strings"

// Entry is one row of the Rosters table: one player's membership in one
// team for one season. Staff carries the optional explicit staff flag
// column when the workbook has it.
type Entry struct {
	ID       int64
	SeasonID int64
	TeamID   int64
	PlayerID int64
	Role     string
	Staff    *bool
}

// Category groups roster roles for display and distinct-player counts.
type Category string

const (
	CategoryGoalkeeper Category = "goalkeeper"
	CategoryField      Category = "field"
	CategoryStaff      Category = "staff"
)

var goalkeeperKeywords = []string{"maalivahti", "mv", "goalie", "goalkeeper"}

var staffKeywords = []string{"toimihenkilö", "staff", "huoltaja", "valmentaja", "coach"}

// Categorize classifies a role text. An explicit staff flag overrides the
// text; otherwise goalkeeper keywords take precedence over staff keywords
// and everything else is a field player. Matching is case-insensitive
// substring matching.
func Categorize(role string, staff *bool) Category {
	if staff != nil && *staff {
		return CategoryStaff
	}

	text := strings.ToLower(strings.TrimSpace(role))
	for _, keyword := range goalkeeperKeywords {
		if strings.Contains(text, keyword) {
			return CategoryGoalkeeper
		}
	}
	for _, keyword := range staffKeywords {
		if strings.Contains(text, keyword) {
			return CategoryStaff
		}
	}

	return CategoryField
}

// Category classifies the entry itself.
func (e Entry) Category() Category {
	return Categorize(e.Role, e.Staff)
}
