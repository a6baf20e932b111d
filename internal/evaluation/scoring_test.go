package evaluation

import "testing"

func TestTotalScore(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   int
	}{
		{
			name:   "all maximum",
			scores: Scores{SalesSkill: 5, Communication: 5, Teamwork: 5, Leadership: 5, CustomerService: 5},
			want:   100,
		},
		{
			name:   "all minimum",
			scores: Scores{SalesSkill: 1, Communication: 1, Teamwork: 1, Leadership: 1, CustomerService: 1},
			want:   20,
		},
		{
			name:   "all threes",
			scores: Scores{SalesSkill: 3, Communication: 3, Teamwork: 3, Leadership: 3, CustomerService: 3},
			want:   60,
		},
		{
			name:   "mixed high",
			scores: Scores{SalesSkill: 4, Communication: 4, Teamwork: 4, Leadership: 5, CustomerService: 5},
			want:   88,
		},
		{
			name:   "raw sum 17",
			scores: Scores{SalesSkill: 4, Communication: 4, Teamwork: 3, Leadership: 3, CustomerService: 3},
			want:   68,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalScore(tc.scores); got != tc.want {
				t.Fatalf("expected total score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTotalScoreStaysInBand(t *testing.T) {
	for sum := 5; sum <= 25; sum++ {
		scores := Scores{SalesSkill: 1, Communication: 1, Teamwork: 1, Leadership: 1, CustomerService: sum - 4}
		got := TotalScore(scores)
		if got < 20 || got > 100 {
			t.Fatalf("sum %d: expected score within [20,100], got %d", sum, got)
		}
	}
}

func TestPointsForScoreBoundaries(t *testing.T) {
	tests := []struct {
		totalScore int
		want       int
	}{
		{100, 20},
		{90, 20},
		{89, 15},
		{80, 15},
		{79, 10},
		{70, 10},
		{69, 5},
		{60, 5},
		{59, 1},
		{20, 1},
		{0, 1},
	}

	for _, tc := range tests {
		if got := PointsForScore(tc.totalScore); got != tc.want {
			t.Fatalf("score %d: expected %d points, got %d", tc.totalScore, tc.want, got)
		}
	}
}
