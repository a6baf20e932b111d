package employees

import "salesperf/internal/evaluation"

type detailResponse struct {
	Employee evaluation.Employee `json:"employee"`
	Stats    employeeStats       `json:"stats"`
}

type employeeStats struct {
	TotalEvaluations int                    `json:"totalEvaluations"`
	AverageScore     float64                `json:"averageScore"`
	AverageScores    criterionAverages      `json:"averageScores"`
	LatestEvaluation *evaluation.Evaluation `json:"latestEvaluation,omitempty"`
}

type criterionAverages struct {
	SalesSkill      float64 `json:"salesSkill"`
	Communication   float64 `json:"communication"`
	Teamwork        float64 `json:"teamwork"`
	Leadership      float64 `json:"leadership"`
	CustomerService float64 `json:"customerService"`
}

// computeStats derives the detail-view aggregates: evaluation count,
// average total score, per-criterion averages, and the most recent
// evaluation.
func computeStats(emp evaluation.Employee) employeeStats {
	stats := employeeStats{TotalEvaluations: len(emp.Evaluations)}
	if stats.TotalEvaluations == 0 {
		return stats
	}

	var totalSum int
	var sums criterionAverages
	for _, eval := range emp.Evaluations {
		totalSum += eval.TotalScore
		sums.SalesSkill += float64(eval.Scores.SalesSkill)
		sums.Communication += float64(eval.Scores.Communication)
		sums.Teamwork += float64(eval.Scores.Teamwork)
		sums.Leadership += float64(eval.Scores.Leadership)
		sums.CustomerService += float64(eval.Scores.CustomerService)
	}

	count := float64(stats.TotalEvaluations)
	stats.AverageScore = float64(totalSum) / count
	stats.AverageScores = criterionAverages{
		SalesSkill:      sums.SalesSkill / count,
		Communication:   sums.Communication / count,
		Teamwork:        sums.Teamwork / count,
		Leadership:      sums.Leadership / count,
		CustomerService: sums.CustomerService / count,
	}

	latest := emp.Evaluations[len(emp.Evaluations)-1]
	stats.LatestEvaluation = &latest
	return stats
}
