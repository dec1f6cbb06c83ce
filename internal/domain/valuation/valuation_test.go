package valuation

import "testing"

func TestComputeZeroMatchesGuardsDivision(t *testing.T) {
	ladder := DefaultLadder()

	v := Compute(Counters{Goals: 10, Assists: 5, Matches: 0}, ladder)
	if v.Score != 0 {
		t.Fatalf("score = %v, want 0 when no matches played", v.Score)
	}
	if v.Tier != "TA3BENNN" {
		t.Fatalf("tier = %q, want first tier", v.Tier)
	}
	if v.Total != 0 {
		t.Fatalf("total = %v, want 0", v.Total)
	}
}

func TestComputeFormulas(t *testing.T) {
	ladder := DefaultLadder()

	tests := []struct {
		name string
		in   Counters
		want Valuation
	}{
		{
			// score = (2 + 0.7) / 2 = 1.35 -> tier "3ade" price 3.0
			// total = 3.0 * (2/2) + 0 = 3.0
			name: "forward two matches",
			in:   Counters{Goals: 2, Assists: 1, Matches: 2},
			want: Valuation{Score: 1.35, PricePerMatch: 3.0, Tier: "3ade", Bonus: 0, Total: 3.0},
		},
		{
			// score = (1 + 0.7) / 1 = 1.7 -> "Fi ta2adom" price 4.0
			// total = 4.0 * 0.5 = 2.0
			name: "midfielder one match",
			in:   Counters{Goals: 1, Assists: 1, Matches: 1},
			want: Valuation{Score: 1.7, PricePerMatch: 4.0, Tier: "Fi ta2adom", Bonus: 0, Total: 2.0},
		},
		{
			// score = 0 -> first tier, bonus = 0.3, total = 0.3 * 1 + 0.3 = 0.6
			name: "defender with clean sheet bonus",
			in:   Counters{Matches: 2, CleanSheetCount: 1},
			want: Valuation{Score: 0, PricePerMatch: 0.3, Tier: "TA3BENNN", Bonus: 0.3, Total: 0.6},
		},
		{
			// bonus = 2*0.5 + 1*0.3 + 1*0.3 = 1.6
			name: "award bonuses stack",
			in:   Counters{Matches: 4, Goals: 4, MOTMCount: 2, HattrickCount: 1, CleanSheetCount: 1},
			want: Valuation{Score: 1, PricePerMatch: 2.5, Tier: "Imohem lniye", Bonus: 1.6, Total: 6.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in, ladder)
			if got != tt.want {
				t.Fatalf("Compute(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	ladder := DefaultLadder()
	in := Counters{Goals: 7, Assists: 3, Matches: 5, MOTMCount: 1}

	first := Compute(in, ladder)
	second := Compute(in, ladder)
	if first != second {
		t.Fatalf("repeated compute diverged: %+v vs %+v", first, second)
	}
}
