package match

// Ledger mutators. All of them are state transitions on a single match and
// never touch player records; authorization is enforced at the API boundary.

// AssignToTeam moves a player onto the given team, removing any previous
// assignment first so a player sits on at most one roster. A zero stat line
// is created if the player has none yet.
func (m *Match) AssignToTeam(playerID string, team Team) error {
	if _, ok := AllTeams[team]; !ok {
		return ErrUnknownTeam
	}

	m.TeamA = removeID(m.TeamA, playerID)
	m.TeamB = removeID(m.TeamB, playerID)
	m.TeamC = removeID(m.TeamC, playerID)

	switch team {
	case TeamA:
		m.TeamA = append(m.TeamA, playerID)
	case TeamB:
		m.TeamB = append(m.TeamB, playerID)
	case TeamC:
		m.TeamC = append(m.TeamC, playerID)
	}

	if m.Stats == nil {
		m.Stats = make(map[string]StatLine)
	}
	if _, ok := m.Stats[playerID]; !ok {
		m.Stats[playerID] = StatLine{}
	}

	return nil
}

// Unassign removes the player from every roster and drops their live stat
// line. The applied snapshot is deliberately left alone: committed history
// is only rewritten by reconciliation.
func (m *Match) Unassign(playerID string) {
	m.TeamA = removeID(m.TeamA, playerID)
	m.TeamB = removeID(m.TeamB, playerID)
	m.TeamC = removeID(m.TeamC, playerID)
	delete(m.Stats, playerID)
}

// SetGoals overwrites the player's goal count for this match, clamped to >= 0.
// The assist half of the line is preserved.
func (m *Match) SetGoals(playerID string, value int) {
	line := m.statLine(playerID)
	line.Goals = clampNonNegative(value)
	m.Stats[playerID] = line
}

// SetAssists overwrites the player's assist count for this match, clamped to >= 0.
func (m *Match) SetAssists(playerID string, value int) {
	line := m.statLine(playerID)
	line.Assists = clampNonNegative(value)
	m.Stats[playerID] = line
}

// ToggleAward flips the player's membership in the given award set.
func (m *Match) ToggleAward(award Award, playerID string) error {
	switch award {
	case AwardMOTM:
		m.MOTM = toggleID(m.MOTM, playerID)
	case AwardHattrick:
		m.Hattricks = toggleID(m.Hattricks, playerID)
	default:
		return ErrUnknownAward
	}

	return nil
}

// ClearAward empties the given award set.
func (m *Match) ClearAward(award Award) error {
	switch award {
	case AwardMOTM:
		m.MOTM = nil
	case AwardHattrick:
		m.Hattricks = nil
	default:
		return ErrUnknownAward
	}

	return nil
}

// SetCleanSheet records the single clean-sheet player; empty clears it.
func (m *Match) SetCleanSheet(playerID string) {
	m.CleanSheetPlayer = playerID
}

func (m *Match) ClearCleanSheet() {
	m.CleanSheetPlayer = ""
}

func (m *Match) statLine(playerID string) StatLine {
	if m.Stats == nil {
		m.Stats = make(map[string]StatLine)
	}

	return m.Stats[playerID]
}

func removeID(ids []string, playerID string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != playerID {
			out = append(out, id)
		}
	}

	return out
}

func toggleID(ids []string, playerID string) []string {
	for i, id := range ids {
		if id == playerID {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return append(ids, playerID)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}

	return v
}
