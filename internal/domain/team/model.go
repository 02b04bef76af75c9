package team

// Team is one constructor entry. Read-only here.
type Team struct {
	ID        string
	Name      string
	Slug      string
	SortOrder int
}
