package match

import (
	"errors"
	"fmt"
)

// Status tracks whether a match still sits on the calendar or has been played.
// The upcoming -> played transition is one-way.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusPlayed   Status = "played"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming: {},
	StatusPlayed:   {},
}

// Team identifies one of the three match-day rosters.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
	TeamC Team = "C"
)

var AllTeams = map[Team]struct{}{
	TeamA: {},
	TeamB: {},
	TeamC: {},
}

// Award identifies a multi-select per-match award set.
type Award string

const (
	AwardMOTM     Award = "motm"
	AwardHattrick Award = "hattricks"
)

var AllAwards = map[Award]struct{}{
	AwardMOTM:     {},
	AwardHattrick: {},
}

var (
	ErrUnknownTeam   = errors.New("unknown team")
	ErrUnknownAward  = errors.New("unknown award")
	ErrAlreadyPlayed = errors.New("match already played")
)

// StatLine holds one player's editable numbers for a single match.
type StatLine struct {
	Goals   int
	Assists int
}

// AppliedStat is the last stat line committed into a player's career totals,
// plus whether the match itself was counted. It is the diff baseline for the
// next reconciliation and is written only by Reconcile.
type AppliedStat struct {
	Goals   int
	Assists int
	Counted bool
}

// Match is a single fixture with its team rosters, editable stat ledger,
// award selections and the committed reconciliation snapshot. Rosters and
// the ledger hold player IDs only; deleted players leave dangling references
// that readers filter out.
type Match struct {
	ID       string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM, optional
	Location string
	Rivalry  string
	Notes    string
	Status   Status

	TeamA []string
	TeamB []string
	TeamC []string

	Stats            map[string]StatLine
	MOTM             []string
	Hattricks        []string
	CleanSheetPlayer string

	Applied map[string]AppliedStat
}

// New returns an empty match shell with initialized maps.
func New(id, date string, status Status) Match {
	return Match{
		ID:      id,
		Date:    date,
		Status:  status,
		Stats:   make(map[string]StatLine),
		Applied: make(map[string]AppliedStat),
	}
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Date == "" {
		return fmt.Errorf("match date is required")
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}

// MarkPlayed converts an upcoming match to played. The transition is
// irreversible; marking an already played match is rejected.
func (m *Match) MarkPlayed() error {
	if m.Status == StatusPlayed {
		return ErrAlreadyPlayed
	}
	m.Status = StatusPlayed
	if m.Applied == nil {
		m.Applied = make(map[string]AppliedStat)
	}

	return nil
}

// Roster returns the ordered player IDs of one team.
func (m Match) Roster(team Team) []string {
	switch team {
	case TeamA:
		return m.TeamA
	case TeamB:
		return m.TeamB
	case TeamC:
		return m.TeamC
	default:
		return nil
	}
}

// TeamSet returns the union of all three rosters as a membership set.
func (m Match) TeamSet() map[string]struct{} {
	set := make(map[string]struct{}, len(m.TeamA)+len(m.TeamB)+len(m.TeamC))
	for _, roster := range [][]string{m.TeamA, m.TeamB, m.TeamC} {
		for _, id := range roster {
			set[id] = struct{}{}
		}
	}

	return set
}

// Clone returns a deep copy so repository reads never alias live state.
func (m Match) Clone() Match {
	out := m
	out.TeamA = append([]string(nil), m.TeamA...)
	out.TeamB = append([]string(nil), m.TeamB...)
	out.TeamC = append([]string(nil), m.TeamC...)
	out.MOTM = append([]string(nil), m.MOTM...)
	out.Hattricks = append([]string(nil), m.Hattricks...)

	out.Stats = make(map[string]StatLine, len(m.Stats))
	for id, line := range m.Stats {
		out.Stats[id] = line
	}
	out.Applied = make(map[string]AppliedStat, len(m.Applied))
	for id, applied := range m.Applied {
		out.Applied[id] = applied
	}

	return out
}
