package competition

// UnknownID marks a match without competition linkage. Missing competition
// ids are normalized to this sentinel before stage resolution.
const UnknownID int64 = -1

// Competition is one row of the Competitions table. Stage is a free-text
// phase label (regular season, playoff round, ...).
type Competition struct {
	ID       int64
	Name     string
	SeasonID int64
	Stage    string
}
