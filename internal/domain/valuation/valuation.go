package valuation

import "math"

// Counters are the cumulative career numbers a valuation derives from.
type Counters struct {
	Goals           int
	Assists         int
	Matches         int
	MOTMCount       int
	HattrickCount   int
	CleanSheetCount int
}

// Valuation is the derived view of a player's counters. Score is rounded to
// 2 decimals and Bonus/Total to 1 decimal for display; ladder lookup and the
// total are computed from the unrounded values.
type Valuation struct {
	Score         float64
	PricePerMatch float64
	Tier          string
	Bonus         float64
	Total         float64
}

const assistWeight = 0.7

// Compute derives score, tier, bonus and total value from career counters.
// It is deterministic and total: zero matches yields a zero score.
func Compute(c Counters, ladder Ladder) Valuation {
	var score float64
	if c.Matches > 0 {
		score = (float64(c.Goals) + float64(c.Assists)*assistWeight) / float64(c.Matches)
	}

	row := ladder.Lookup(score)
	bonus := float64(c.MOTMCount)*0.5 + float64(c.HattrickCount)*0.3 + float64(c.CleanSheetCount)*0.3
	total := row.PricePerMatch*(float64(c.Matches)/2) + bonus

	return Valuation{
		Score:         round(score, 2),
		PricePerMatch: row.PricePerMatch,
		Tier:          row.Tier,
		Bonus:         round(bonus, 1),
		Total:         round(total, 1),
	}
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
