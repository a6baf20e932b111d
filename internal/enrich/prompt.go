package enrich

import (
	"fmt"
	"strings"
)

func buildPrompt(req Request) string {
	comments := strings.TrimSpace(req.Comments)
	if comments == "" {
		comments = "(none)"
	}

	var b strings.Builder
	b.WriteString("You are an expert in sales performance evaluation. Analyze the following evaluation of a sales employee rigorously and constructively.\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", req.EmployeeName)
	fmt.Fprintf(&b, "Evaluator: %s\n\n", req.EvaluatorName)
	b.WriteString("Ratings (1-5 each):\n")
	fmt.Fprintf(&b, "Sales skill: %d\n", req.Scores.SalesSkill)
	fmt.Fprintf(&b, "Communication: %d\n", req.Scores.Communication)
	fmt.Fprintf(&b, "Teamwork: %d\n", req.Scores.Teamwork)
	fmt.Fprintf(&b, "Leadership: %d\n", req.Scores.Leadership)
	fmt.Fprintf(&b, "Customer service: %d\n\n", req.Scores.CustomerService)
	fmt.Fprintf(&b, "Comments:\n%s\n\n", comments)
	b.WriteString(`Guidelines:
1. Check whether the ratings are plausible (detect unrealistically high or low scoring).
2. Check that the comments are consistent with the numeric ratings.
3. Give specific, constructive feedback.
4. Offer practical suggestions for improving sales skills.

Scoring scale (out of 100):
- 90 or above: outstanding results (20 points)
- 80-89: excellent results (15 points)
- 70-79: good results (10 points)
- 60-69: standard results (5 points)
- below 60: needs improvement (1 point)

Validity rules:
- Clearly inappropriate ratings (for example straight maximum scores with no supporting comment) are invalid.
- Question the validity when the comments do not justify the ratings.
- Non-constructive input (abuse, defamation) is invalid.

Answer with a single JSON object in exactly this form:
{
  "totalScore": total score out of 100,
  "points": awarded points,
  "aiAnalysis": "short analysis (about 200 characters)",
  "detailedFeedback": "detailed feedback (about 300 characters)",
  "isValid": true or false,
  "recommendations": ["suggestion 1", "suggestion 2", "suggestion 3"]
}
`)
	return b.String()
}
