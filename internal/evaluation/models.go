package evaluation

import "time"

// Scores holds the five 1-5 ratings an evaluator submits.
type Scores struct {
	SalesSkill      int `json:"salesSkill"`
	Communication   int `json:"communication"`
	Teamwork        int `json:"teamwork"`
	Leadership      int `json:"leadership"`
	CustomerService int `json:"customerService"`
}

// Evaluation is one scored review of an employee. TotalScore and Points
// are always derived from Scores locally; the optional narrative fields
// come from the enrichment client (or its fallback).
type Evaluation struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employeeId"`
	EvaluatorName    string    `json:"evaluatorName"`
	Date             time.Time `json:"date"`
	Scores           Scores    `json:"scores"`
	TotalScore       int       `json:"totalScore"`
	Points           int       `json:"points"`
	Comments         string    `json:"comments"`
	AIAnalysis       string    `json:"aiAnalysis,omitempty"`
	DetailedFeedback string    `json:"detailedFeedback,omitempty"`
	IsValid          bool      `json:"isValid"`
	Recommendations  []string  `json:"recommendations,omitempty"`
	AISource         string    `json:"aiSource,omitempty"`
}

type Employee struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Department  string       `json:"department"`
	Position    string       `json:"position"`
	Points      int          `json:"points"`
	Evaluations []Evaluation `json:"evaluations"`
}

// HistoryEntry is the flattened projection of an evaluation kept in the
// global newest-first feed, carrying the employee name as it was at
// submission time.
type HistoryEntry struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	EvaluatorName string    `json:"evaluatorName"`
	Date          time.Time `json:"date"`
	TotalScore    int       `json:"totalScore"`
	Points        int       `json:"points"`
	Comments      string    `json:"comments"`
}
