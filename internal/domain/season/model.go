package season

import "fmt"

// Season is one row of the Seasons table. Start and end years may be
// absent in the workbook, in which case the label falls back to the id.
type Season struct {
	ID        int64
	StartYear *int
	EndYear   *int
}

// Label renders the display name, e.g. "2014-2015".
func (s Season) Label() string {
	if s.StartYear != nil && s.EndYear != nil {
		return fmt.Sprintf("%d-%d", *s.StartYear, *s.EndYear)
	}
	return FallbackLabel(s.ID)
}

// FallbackLabel is used whenever a season row cannot be resolved.
func FallbackLabel(id int64) string {
	return fmt.Sprintf("Kausi %d", id)
}
