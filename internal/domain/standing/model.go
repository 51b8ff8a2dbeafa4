package standing

// Standing is one row of the Standings table. Rank is ordinal; lower is
// better.
type Standing struct {
	ID            int64
	SeasonID      int64
	CompetitionID int64
	TeamID        int64
	Rank          int
}
