package match

import "sort"

// PlayerDelta is the change a reconciliation run contributes to one player's
// career counters. Deltas can be negative, e.g. when a player is unassigned
// after an earlier apply.
type PlayerDelta struct {
	PlayerID string
	Goals    int
	Assists  int
	Matches  int
}

// Reconcile diffs the match's live ledger against its committed snapshot and
// returns the per-player career deltas plus the snapshot an apply should
// persist as the next diff baseline. The match itself is not modified.
//
// Running Reconcile twice without a ledger edit in between yields all-zero
// deltas on the second run, because the first run's snapshot equals the
// current ledger.
//
// The diff scope is the union of current team membership, live stat lines and
// committed snapshot keys. The last part matters: a player unassigned after an
// earlier apply has neither a roster entry nor a stat line left, and only the
// snapshot keeps them in scope so their counted match can be taken back.
func Reconcile(m Match) ([]PlayerDelta, map[string]AppliedStat) {
	teamSet := m.TeamSet()

	allIDs := make(map[string]struct{}, len(teamSet)+len(m.Stats)+len(m.Applied))
	for id := range teamSet {
		allIDs[id] = struct{}{}
	}
	for id := range m.Stats {
		allIDs[id] = struct{}{}
	}
	for id := range m.Applied {
		allIDs[id] = struct{}{}
	}

	ordered := make([]string, 0, len(allIDs))
	for id := range allIDs {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	deltas := make([]PlayerDelta, 0, len(ordered))
	next := make(map[string]AppliedStat, len(ordered))

	for _, id := range ordered {
		old := m.Applied[id] // zero value covers never-applied players
		curr := m.Stats[id]  // zero value covers fully unassigned players
		_, isInTeam := teamSet[id]

		delta := PlayerDelta{
			PlayerID: id,
			Goals:    curr.Goals - old.Goals,
			Assists:  curr.Assists - old.Assists,
			Matches:  boolToInt(isInTeam) - boolToInt(old.Counted),
		}
		if delta.Goals != 0 || delta.Assists != 0 || delta.Matches != 0 {
			deltas = append(deltas, delta)
		}

		next[id] = AppliedStat{
			Goals:   curr.Goals,
			Assists: curr.Assists,
			Counted: isInTeam,
		}
	}

	return deltas, next
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
