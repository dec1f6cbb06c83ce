package player

import "fmt"

// Role represents the position a club member usually plays.
type Role string

const (
	RoleGoalkeeper Role = "GK"
	RoleDefender   Role = "DEF"
	RoleMidfielder Role = "MID"
	RoleForward    Role = "FWD"
)

var AllRoles = map[Role]struct{}{
	RoleGoalkeeper: {},
	RoleDefender:   {},
	RoleMidfielder: {},
	RoleForward:    {},
}

// Player is a club member with cumulative career counters. Counters are
// mutated either directly by an admin edit or through match reconciliation.
type Player struct {
	ID    string
	Name  string
	Photo string
	Role  Role

	Goals           int
	Assists         int
	Matches         int
	MOTMCount       int
	HattrickCount   int
	CleanSheetCount int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	for _, counter := range []struct {
		name  string
		value int
	}{
		{"goals", p.Goals},
		{"assists", p.Assists},
		{"matches", p.Matches},
		{"motm count", p.MOTMCount},
		{"hattrick count", p.HattrickCount},
		{"clean sheet count", p.CleanSheetCount},
	} {
		if counter.value < 0 {
			return fmt.Errorf("player %s cannot be negative: %d", counter.name, counter.value)
		}
	}

	return nil
}
