package race

import (
	"strings"
	"time"
)

// SessionKind identifies one timed segment of a race weekend.
type SessionKind string

const (
	SessionFP1         SessionKind = "fp1"
	SessionFP2         SessionKind = "fp2"
	SessionFP3         SessionKind = "fp3"
	SessionQualifying  SessionKind = "qualifying"
	SessionSprintQuali SessionKind = "sprintQuali"
	SessionSprint      SessionKind = "sprint"
	SessionRace        SessionKind = "race"
)

// Format distinguishes a standard weekend from a sprint weekend, which
// determines the set of sessions a race carries.
type Format string

const (
	FormatStandard Format = "standard"
	FormatSprint   Format = "sprint"
)

var allKinds = map[SessionKind]struct{}{
	SessionFP1:         {},
	SessionFP2:         {},
	SessionFP3:         {},
	SessionQualifying:  {},
	SessionSprintQuali: {},
	SessionSprint:      {},
	SessionRace:        {},
}

// ParseSessionKind normalizes a raw session-kind value.
func ParseSessionKind(value string) (SessionKind, bool) {
	kind := SessionKind(strings.TrimSpace(value))
	_, ok := allKinds[kind]
	return kind, ok
}

// AwardsChampionshipPoints reports whether results of this session kind feed
// the championship standings.
func (k SessionKind) AwardsChampionshipPoints() bool {
	return k == SessionRace || k == SessionSprint
}

// IsBettable reports whether the prediction game opens a round for this kind.
func (k SessionKind) IsBettable() bool {
	switch k {
	case SessionQualifying, SessionSprintQuali, SessionSprint, SessionRace:
		return true
	default:
		return false
	}
}

// Race is one calendar event. Session start times double as the default
// betting deadlines.
type Race struct {
	ID          string
	Round       int
	Country     string
	City        string
	CircuitName string
	Format      Format
	Sessions    map[SessionKind]time.Time
}

// SessionKinds lists the kinds this race carries, in weekend order.
func (r Race) SessionKinds() []SessionKind {
	if r.Format == FormatSprint {
		return []SessionKind{SessionFP1, SessionSprintQuali, SessionSprint, SessionQualifying, SessionRace}
	}
	return []SessionKind{SessionFP1, SessionFP2, SessionFP3, SessionQualifying, SessionRace}
}

// SessionStart returns the scheduled start of one session, if the race
// carries that session.
func (r Race) SessionStart(kind SessionKind) (time.Time, bool) {
	start, ok := r.Sessions[kind]
	if !ok || start.IsZero() {
		return time.Time{}, false
	}
	return start, true
}
