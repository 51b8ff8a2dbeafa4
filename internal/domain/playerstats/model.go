package playerstats

// StatLine is one row of the PlayerSeasonStats table: one player's output
// for one season. Points is the workbook's own points column when present;
// TotalPoints derives it from goals and assists otherwise.
type StatLine struct {
	ID       int64
	SeasonID int64
	TeamID   int64
	PlayerID int64
	Goals    int
	Assists  int
	Points   *int
}

func (s StatLine) TotalPoints() int {
	if s.Points != nil {
		return *s.Points
	}
	return s.Goals + s.Assists
}
