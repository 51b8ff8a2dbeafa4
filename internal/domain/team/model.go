package team

// Team is one row of the Teams table.
type Team struct {
	ID   int64
	Name string
}

// Alias maps an alternative spelling to a canonical team id. Aliases are
// matched case-folded; they exist for name normalization and for resolving
// the selected team when the workbook spells it differently.
type Alias struct {
	Name   string
	TeamID int64
}
