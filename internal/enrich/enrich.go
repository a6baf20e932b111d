// Package enrich produces the best-effort narrative analysis attached to
// an evaluation. Numeric fields are always authoritative-local: whatever
// the model returns for totalScore/points is discarded and recomputed
// from the sub-scores. Narrative fields are best-effort-remote with fixed
// fallbacks.
package enrich

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"salesperf/internal/evaluation"
)

const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

// Fixed texts used when the model call fails outright.
const (
	FallbackAnalysis = "AI analysis was unavailable; the score was computed from the submitted ratings."
	FallbackFeedback = "Review the balance across the rating categories and keep improving steadily. A concrete action plan will help turn the ratings into better results."
)

// Fixed texts used when the model answered but left a field empty.
const (
	MissingAnalysis = "AI analysis could not be generated."
	MissingFeedback = "Detailed feedback could not be generated."
)

func FallbackRecommendations() []string {
	return []string{
		"Identify concrete improvement points for each rating category",
		"Attend regular skills training",
		"Actively seek feedback from peers and managers",
	}
}

func missingRecommendations() []string {
	return []string{
		"Keep learning and improving",
		"Review progress regularly",
		"Set clear goals",
	}
}

type Request struct {
	EmployeeName  string
	EvaluatorName string
	Scores        evaluation.Scores
	Comments      string
}

type Response struct {
	TotalScore       int      `json:"totalScore"`
	Points           int      `json:"points"`
	AIAnalysis       string   `json:"aiAnalysis"`
	DetailedFeedback string   `json:"detailedFeedback"`
	IsValid          bool     `json:"isValid"`
	Recommendations  []string `json:"recommendations"`
	Source           string   `json:"source"`
}

// Generator is the single-call text-generation transport behind the
// client. Implementations make exactly one attempt; retries are the
// caller's business and this system does none.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	generator Generator
}

// NewClient wraps a generator. A nil generator yields a client that
// always answers with the local fallback, which is how the service runs
// when AI is disabled or unconfigured.
func NewClient(generator Generator) *Client {
	return &Client{generator: generator}
}

// Evaluate asks the model for a narrative judgment of the submitted
// ratings. It cannot fail: any transport, decode, or parse problem
// degrades to the locally computed fallback response.
func (c *Client) Evaluate(ctx context.Context, req Request) Response {
	totalScore := evaluation.TotalScore(req.Scores)
	points := evaluation.PointsForScore(totalScore)

	if c == nil || c.generator == nil {
		return fallbackResponse(totalScore, points)
	}

	text, err := c.generator.Generate(ctx, buildPrompt(req))
	if err != nil {
		slog.Warn("ai evaluation failed, using fallback", "employee", req.EmployeeName, "err", err)
		return fallbackResponse(totalScore, points)
	}

	payload, ok := extractJSON(text)
	if !ok {
		slog.Warn("ai response contained no json, using fallback", "employee", req.EmployeeName)
		return fallbackResponse(totalScore, points)
	}

	var parsed struct {
		TotalScore       json.Number `json:"totalScore"`
		Points           json.Number `json:"points"`
		AIAnalysis       string      `json:"aiAnalysis"`
		DetailedFeedback string      `json:"detailedFeedback"`
		IsValid          *bool       `json:"isValid"`
		Recommendations  []string    `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		slog.Warn("ai response json unparsable, using fallback", "employee", req.EmployeeName, "err", err)
		return fallbackResponse(totalScore, points)
	}

	resp := Response{
		TotalScore:       totalScore,
		Points:           points,
		AIAnalysis:       parsed.AIAnalysis,
		DetailedFeedback: parsed.DetailedFeedback,
		IsValid:          parsed.IsValid == nil || *parsed.IsValid,
		Recommendations:  parsed.Recommendations,
		Source:           SourceGemini,
	}
	if strings.TrimSpace(resp.AIAnalysis) == "" {
		resp.AIAnalysis = MissingAnalysis
	}
	if strings.TrimSpace(resp.DetailedFeedback) == "" {
		resp.DetailedFeedback = MissingFeedback
	}
	if len(resp.Recommendations) == 0 {
		resp.Recommendations = missingRecommendations()
	}
	return resp
}

func fallbackResponse(totalScore, points int) Response {
	return Response{
		TotalScore:       totalScore,
		Points:           points,
		AIAnalysis:       FallbackAnalysis,
		DetailedFeedback: FallbackFeedback,
		IsValid:          true,
		Recommendations:  FallbackRecommendations(),
		Source:           SourceFallback,
	}
}

// extractJSON locates the first top-level {...} span in the model's free
// text, tolerating markdown code fences around it.
func extractJSON(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}
