package driver

import "strings"

// Driver is one roster entry. TeamID is nil for drivers currently without a
// seat; result entries snapshot the team at ingest time, so a later transfer
// never rewrites history.
type Driver struct {
	ID         string
	FirstName  string
	LastName   string
	RaceNumber int
	TeamID     *string
	Slug       string
	SortOrder  int
}

func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
