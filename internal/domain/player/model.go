package player

// Player is one row of the Players table.
type Player struct {
	ID       int64
	FullName string
}
