package memory

import "github.com/riskibarqy/club-tracker/internal/domain/player"

// SeedPlayers returns the fallback roster used when no snapshot exists yet.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID:      "p-hassan-hojeij",
			Name:    "Hassan Hojeij",
			Photo:   "/players/hassan.jpg",
			Role:    player.RoleForward,
			Goals:   2,
			Assists: 1,
			Matches: 2,
		},
		{
			ID:      "p-mhmd-badran",
			Name:    "Mhmd Badran",
			Photo:   "/players/badran.jpg",
			Role:    player.RoleMidfielder,
			Goals:   1,
			Assists: 1,
			Matches: 1,
		},
		{
			ID:              "p-ali-awada",
			Name:            "Ali Awada",
			Photo:           "/players/ali.jpg",
			Role:            player.RoleDefender,
			Matches:         2,
			CleanSheetCount: 1,
		},
	}
}
