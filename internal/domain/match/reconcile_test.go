package match

import "testing"

func findDelta(t *testing.T, deltas []PlayerDelta, playerID string) PlayerDelta {
	t.Helper()
	for _, d := range deltas {
		if d.PlayerID == playerID {
			return d
		}
	}
	t.Fatalf("no delta for %s in %+v", playerID, deltas)
	return PlayerDelta{}
}

func TestReconcileFirstApply(t *testing.T) {
	m := New("m1", "2026-03-01", StatusPlayed)
	if err := m.AssignToTeam("p1", TeamA); err != nil {
		t.Fatalf("assign: %v", err)
	}
	m.SetGoals("p1", 2)
	m.SetAssists("p1", 1)

	deltas, next := Reconcile(m)

	d := findDelta(t, deltas, "p1")
	if d.Goals != 2 || d.Assists != 1 || d.Matches != 1 {
		t.Fatalf("delta = %+v, want {2 1 1}", d)
	}
	if got := next["p1"]; got != (AppliedStat{Goals: 2, Assists: 1, Counted: true}) {
		t.Fatalf("next snapshot = %+v", got)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	m := New("m1", "2026-03-01", StatusPlayed)
	_ = m.AssignToTeam("p1", TeamA)
	_ = m.AssignToTeam("p2", TeamB)
	m.SetGoals("p1", 2)
	m.SetAssists("p2", 3)

	_, next := Reconcile(m)
	m.Applied = next

	deltas, again := Reconcile(m)
	if len(deltas) != 0 {
		t.Fatalf("second run produced deltas: %+v", deltas)
	}
	for id, want := range next {
		if again[id] != want {
			t.Fatalf("snapshot for %s changed on idempotent run: %+v vs %+v", id, again[id], want)
		}
	}
}

func TestReconcileReEditProducesDeltaOnly(t *testing.T) {
	m := New("m1", "2026-03-01", StatusPlayed)
	_ = m.AssignToTeam("p1", TeamA)
	m.SetGoals("p1", 2)
	m.SetAssists("p1", 1)

	_, next := Reconcile(m)
	m.Applied = next

	// Admin corrects the sheet: 3 goals instead of 2.
	m.SetGoals("p1", 3)

	deltas, next := Reconcile(m)
	d := findDelta(t, deltas, "p1")
	if d.Goals != 1 || d.Assists != 0 || d.Matches != 0 {
		t.Fatalf("delta = %+v, want {+1 0 0}", d)
	}
	if got := next["p1"]; got != (AppliedStat{Goals: 3, Assists: 1, Counted: true}) {
		t.Fatalf("next snapshot = %+v", got)
	}
}

func TestReconcileUncountsUnassignedPlayer(t *testing.T) {
	m := New("m1", "2026-03-01", StatusPlayed)
	_ = m.AssignToTeam("p1", TeamA)
	m.SetGoals("p1", 3)
	m.SetAssists("p1", 1)

	_, next := Reconcile(m)
	m.Applied = next

	// Unassign drops the roster entry and the live stat line; the applied
	// snapshot alone keeps the player in scope for the diff.
	m.Unassign("p1")

	deltas, next := Reconcile(m)
	d := findDelta(t, deltas, "p1")
	if d.Goals != -3 || d.Assists != -1 || d.Matches != -1 {
		t.Fatalf("delta = %+v, want {-3 -1 -1}", d)
	}
	if got := next["p1"]; got != (AppliedStat{}) {
		t.Fatalf("next snapshot = %+v, want zero/uncounted", got)
	}
}

func TestReconcileCoversLingeringStatsOffRoster(t *testing.T) {
	// A stat line can outlive roster membership when the roster was edited
	// directly; the union over stats keys must still pick it up.
	m := New("m1", "2026-03-01", StatusPlayed)
	m.Stats["p9"] = StatLine{Goals: 1}

	deltas, next := Reconcile(m)
	d := findDelta(t, deltas, "p9")
	if d.Goals != 1 || d.Matches != 0 {
		t.Fatalf("delta = %+v, want {+1 0 0}", d)
	}
	if got := next["p9"]; got != (AppliedStat{Goals: 1, Counted: false}) {
		t.Fatalf("next snapshot = %+v", got)
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	m := New("m1", "2026-03-01", StatusPlayed)
	_ = m.AssignToTeam("p1", TeamA)
	m.SetGoals("p1", 2)

	_, _ = Reconcile(m)

	if len(m.Applied) != 0 {
		t.Fatalf("input applied snapshot mutated: %+v", m.Applied)
	}
}

func TestReconcileDiffsSnapshotOnlyPlayers(t *testing.T) {
	// A snapshot entry with no roster or stats presence still enters the diff,
	// so previously committed numbers are taken back rather than leaking.
	m := New("m1", "2026-03-01", StatusPlayed)
	m.Applied["p7"] = AppliedStat{Goals: 2, Counted: true}

	deltas, next := Reconcile(m)

	d := findDelta(t, deltas, "p7")
	if d.Goals != -2 || d.Assists != 0 || d.Matches != -1 {
		t.Fatalf("delta = %+v, want {-2 0 -1}", d)
	}
	if got := next["p7"]; got != (AppliedStat{}) {
		t.Fatalf("snapshot = %+v, want zero/uncounted", got)
	}
}
