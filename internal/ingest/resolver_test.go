package ingest

import (
	"testing"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
)

func testRoster() []driver.Driver {
	return []driver.Driver{
		{ID: "d-norris", FirstName: "Lando", LastName: "Norris", Slug: "lando-norris"},
		{ID: "d-verstappen", FirstName: "Max", LastName: "Verstappen", Slug: "max-verstappen"},
		{ID: "d-hamilton", FirstName: "Lewis", LastName: "Hamilton", Slug: "lewis-hamilton"},
		{ID: "d-perez", FirstName: "Sergio", LastName: "Pérez", Slug: "sergio-perez"},
	}
}

func TestResolveDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantID  string
		wantHit bool
	}{
		{"last name substring", "L. Norris", "d-norris", true},
		{"full name exact", "Max Verstappen", "d-verstappen", true},
		{"raw contained in full name", "Lewis", "d-hamilton", true},
		{"case and whitespace insensitive", "  lando   NORRIS ", "d-norris", true},
		{"slug fallback when accents defeat name match", "Sergio Perez", "d-perez", true},
		{"unknown driver", "Kimi Raikkonen", "", false},
		{"empty input", "   ", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gotID, hit := ResolveDriver(tc.raw, testRoster())
			if hit != tc.wantHit || gotID != tc.wantID {
				t.Fatalf("ResolveDriver(%q): got (%q,%t) want (%q,%t)", tc.raw, gotID, hit, tc.wantID, tc.wantHit)
			}
		})
	}
}

func TestResolveDriver_FirstRosterMatchWins(t *testing.T) {
	t.Parallel()

	roster := []driver.Driver{
		{ID: "d-schumacher-m", FirstName: "Mick", LastName: "Schumacher", Slug: "mick-schumacher"},
		{ID: "d-schumacher-r", FirstName: "Ralf", LastName: "Schumacher", Slug: "ralf-schumacher"},
	}

	gotID, hit := ResolveDriver("Schumacher", roster)
	if !hit || gotID != "d-schumacher-m" {
		t.Fatalf("expected first roster entry to win, got (%q,%t)", gotID, hit)
	}
}
