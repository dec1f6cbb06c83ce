package valuation

// LadderRow maps a per-match score threshold to a price and a tier label.
type LadderRow struct {
	Threshold     float64
	PricePerMatch float64
	Tier          string
}

// Ladder is a breakpoint table sorted ascending by threshold. The default
// table starts at threshold 0, so a lookup always resolves to a row.
type Ladder []LadderRow

// DefaultLadder returns the club's pricing table.
func DefaultLadder() Ladder {
	return Ladder{
		{Threshold: 0.0, PricePerMatch: 0.3, Tier: "TA3BENNN"},
		{Threshold: 0.2, PricePerMatch: 0.5, Tier: "Koussa"},
		{Threshold: 0.4, PricePerMatch: 1.0, Tier: "Fesh amal"},
		{Threshold: 0.6, PricePerMatch: 1.5, Tier: "Lache le foot"},
		{Threshold: 0.8, PricePerMatch: 2.0, Tier: "Bencher"},
		{Threshold: 1.0, PricePerMatch: 2.5, Tier: "Imohem lniye"},
		{Threshold: 1.2, PricePerMatch: 3.0, Tier: "3ade"},
		{Threshold: 1.4, PricePerMatch: 3.5, Tier: "Ma2boul"},
		{Threshold: 1.6, PricePerMatch: 4.0, Tier: "Fi ta2adom"},
		{Threshold: 1.8, PricePerMatch: 5.0, Tier: "Mesh 3ali"},
		{Threshold: 2.0, PricePerMatch: 6.0, Tier: "Starter"},
		{Threshold: 2.2, PricePerMatch: 7.0, Tier: "Fi mahara"},
		{Threshold: 2.4, PricePerMatch: 8.0, Tier: "Superstar"},
		{Threshold: 2.6, PricePerMatch: 9.0, Tier: "7ellooo"},
		{Threshold: 2.8, PricePerMatch: 10.0, Tier: "wooow"},
		{Threshold: 3.0, PricePerMatch: 11.0, Tier: "Machinee"},
		{Threshold: 3.2, PricePerMatch: 12.0, Tier: "Crazyyy"},
		{Threshold: 3.4, PricePerMatch: 13.0, Tier: "Sobhanallah"},
		{Threshold: 3.6, PricePerMatch: 14.0, Tier: "De2o 3al khashab"},
		{Threshold: 3.8, PricePerMatch: 15.0, Tier: "La3ibbb"},
		{Threshold: 4.0, PricePerMatch: 16.0, Tier: "btestehel duaa men Rayan"},
		{Threshold: 4.2, PricePerMatch: 17.0, Tier: "3ndo fans"},
		{Threshold: 4.4, PricePerMatch: 18.0, Tier: "Ossa kbir eee"},
		{Threshold: 4.6, PricePerMatch: 19.0, Tier: "Wa7echhh"},
		{Threshold: 4.8, PricePerMatch: 20.0, Tier: "Messi"},
		{Threshold: 5.0, PricePerMatch: 25.0, Tier: "GOAT (adam level)"},
	}
}

// Lookup returns the row with the greatest threshold not exceeding score.
// Scores below every threshold fall back to the first row.
func (l Ladder) Lookup(score float64) LadderRow {
	row := l[0]
	for _, r := range l {
		if score >= r.Threshold {
			row = r
			continue
		}
		break
	}

	return row
}
