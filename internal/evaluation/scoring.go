package evaluation

import "math"

// TotalScore rescales the 5-25 raw sum of sub-scores onto a 0-100 band,
// rounded to the nearest integer.
func TotalScore(s Scores) int {
	sum := s.SalesSkill + s.Communication + s.Teamwork + s.Leadership + s.CustomerService
	return int(math.Round(float64(sum) / 25.0 * 100))
}

// PointsForScore maps a total score onto the discrete point award tiers.
func PointsForScore(totalScore int) int {
	switch {
	case totalScore >= 90:
		return 20
	case totalScore >= 80:
		return 15
	case totalScore >= 70:
		return 10
	case totalScore >= 60:
		return 5
	default:
		return 1
	}
}
