package memory

import (
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/identity"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/team"
)

const (
	TeamIDMcLaren     = "mclaren"
	TeamIDFerrari     = "ferrari"
	TeamIDRedBull     = "red-bull"
	TeamIDMercedes    = "mercedes"
	TeamIDAstonMartin = "aston-martin"
	TeamIDWilliams    = "williams"

	RaceIDMelbourne = "melbourne-2026"
	RaceIDShanghai  = "shanghai-2026"
	RaceIDSuzuka    = "suzuka-2026"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDMcLaren, Name: "McLaren", Slug: "mclaren", SortOrder: 1},
		{ID: TeamIDFerrari, Name: "Ferrari", Slug: "ferrari", SortOrder: 2},
		{ID: TeamIDRedBull, Name: "Red Bull Racing", Slug: "red-bull-racing", SortOrder: 3},
		{ID: TeamIDMercedes, Name: "Mercedes", Slug: "mercedes", SortOrder: 4},
		{ID: TeamIDAstonMartin, Name: "Aston Martin", Slug: "aston-martin", SortOrder: 5},
		{ID: TeamIDWilliams, Name: "Williams", Slug: "williams", SortOrder: 6},
	}
}

func SeedDrivers() []driver.Driver {
	teamID := func(id string) *string { return &id }

	return []driver.Driver{
		{ID: "lando-norris", FirstName: "Lando", LastName: "Norris", RaceNumber: 4, TeamID: teamID(TeamIDMcLaren), Slug: "lando-norris", SortOrder: 1},
		{ID: "oscar-piastri", FirstName: "Oscar", LastName: "Piastri", RaceNumber: 81, TeamID: teamID(TeamIDMcLaren), Slug: "oscar-piastri", SortOrder: 2},
		{ID: "charles-leclerc", FirstName: "Charles", LastName: "Leclerc", RaceNumber: 16, TeamID: teamID(TeamIDFerrari), Slug: "charles-leclerc", SortOrder: 3},
		{ID: "lewis-hamilton", FirstName: "Lewis", LastName: "Hamilton", RaceNumber: 44, TeamID: teamID(TeamIDFerrari), Slug: "lewis-hamilton", SortOrder: 4},
		{ID: "max-verstappen", FirstName: "Max", LastName: "Verstappen", RaceNumber: 1, TeamID: teamID(TeamIDRedBull), Slug: "max-verstappen", SortOrder: 5},
		{ID: "yuki-tsunoda", FirstName: "Yuki", LastName: "Tsunoda", RaceNumber: 22, TeamID: teamID(TeamIDRedBull), Slug: "yuki-tsunoda", SortOrder: 6},
		{ID: "george-russell", FirstName: "George", LastName: "Russell", RaceNumber: 63, TeamID: teamID(TeamIDMercedes), Slug: "george-russell", SortOrder: 7},
		{ID: "kimi-antonelli", FirstName: "Kimi", LastName: "Antonelli", RaceNumber: 12, TeamID: teamID(TeamIDMercedes), Slug: "kimi-antonelli", SortOrder: 8},
		{ID: "fernando-alonso", FirstName: "Fernando", LastName: "Alonso", RaceNumber: 14, TeamID: teamID(TeamIDAstonMartin), Slug: "fernando-alonso", SortOrder: 9},
		{ID: "lance-stroll", FirstName: "Lance", LastName: "Stroll", RaceNumber: 18, TeamID: teamID(TeamIDAstonMartin), Slug: "lance-stroll", SortOrder: 10},
		{ID: "alex-albon", FirstName: "Alex", LastName: "Albon", RaceNumber: 23, TeamID: teamID(TeamIDWilliams), Slug: "alex-albon", SortOrder: 11},
		{ID: "carlos-sainz", FirstName: "Carlos", LastName: "Sainz", RaceNumber: 55, TeamID: teamID(TeamIDWilliams), Slug: "carlos-sainz", SortOrder: 12},
	}
}

func SeedRaces() []race.Race {
	return []race.Race{
		{
			ID:          RaceIDMelbourne,
			Round:       1,
			Country:     "Australia",
			City:        "Melbourne",
			CircuitName: "Albert Park Circuit",
			Format:      race.FormatStandard,
			Sessions: map[race.SessionKind]time.Time{
				race.SessionFP1:        time.Date(2026, time.March, 6, 1, 30, 0, 0, time.UTC),
				race.SessionFP2:        time.Date(2026, time.March, 6, 5, 0, 0, 0, time.UTC),
				race.SessionFP3:        time.Date(2026, time.March, 7, 1, 30, 0, 0, time.UTC),
				race.SessionQualifying: time.Date(2026, time.March, 7, 5, 0, 0, 0, time.UTC),
				race.SessionRace:       time.Date(2026, time.March, 8, 4, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:          RaceIDShanghai,
			Round:       2,
			Country:     "China",
			City:        "Shanghai",
			CircuitName: "Shanghai International Circuit",
			Format:      race.FormatSprint,
			Sessions: map[race.SessionKind]time.Time{
				race.SessionFP1:         time.Date(2026, time.March, 13, 3, 30, 0, 0, time.UTC),
				race.SessionSprintQuali: time.Date(2026, time.March, 13, 7, 30, 0, 0, time.UTC),
				race.SessionSprint:      time.Date(2026, time.March, 14, 3, 0, 0, 0, time.UTC),
				race.SessionQualifying:  time.Date(2026, time.March, 14, 7, 0, 0, 0, time.UTC),
				race.SessionRace:        time.Date(2026, time.March, 15, 7, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:          RaceIDSuzuka,
			Round:       3,
			Country:     "Japan",
			City:        "Suzuka",
			CircuitName: "Suzuka International Racing Course",
			Format:      race.FormatStandard,
			Sessions: map[race.SessionKind]time.Time{
				race.SessionFP1:        time.Date(2026, time.March, 27, 2, 30, 0, 0, time.UTC),
				race.SessionFP2:        time.Date(2026, time.March, 27, 6, 0, 0, 0, time.UTC),
				race.SessionFP3:        time.Date(2026, time.March, 28, 2, 30, 0, 0, time.UTC),
				race.SessionQualifying: time.Date(2026, time.March, 28, 6, 0, 0, 0, time.UTC),
				race.SessionRace:       time.Date(2026, time.March, 29, 5, 0, 0, 0, time.UTC),
			},
		},
	}
}

func SeedUsers() []identity.User {
	return []identity.User{
		{ID: "user-admin", Username: "pitboss", Role: identity.RoleAdmin},
		{ID: "user-1", Username: "apexhunter", Role: identity.RoleUser},
		{ID: "user-2", Username: "dirtyair", Role: identity.RoleUser},
		{ID: "user-3", Username: "lateapex", Role: identity.RoleVIP},
	}
}
