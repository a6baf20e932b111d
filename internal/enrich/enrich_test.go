package enrich

import (
	"context"
	"errors"
	"testing"

	"salesperf/internal/evaluation"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func testRequest() Request {
	return Request{
		EmployeeName:  "Taro Tanaka",
		EvaluatorName: "Manager A",
		Scores:        evaluation.Scores{SalesSkill: 4, Communication: 4, Teamwork: 4, Leadership: 4, CustomerService: 4},
		Comments:      "closed three major deals this quarter",
	}
}

func TestEvaluateFallbackOnGeneratorError(t *testing.T) {
	client := NewClient(stubGenerator{err: errors.New("network down")})
	resp := client.Evaluate(context.Background(), testRequest())

	if resp.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", resp.Source)
	}
	if !resp.IsValid {
		t.Fatal("expected fallback response to be valid")
	}
	if resp.TotalScore != 80 || resp.Points != 15 {
		t.Fatalf("expected locally computed 80/15, got %d/%d", resp.TotalScore, resp.Points)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("expected 3 fallback recommendations, got %d", len(resp.Recommendations))
	}
	if resp.AIAnalysis != FallbackAnalysis {
		t.Fatalf("expected fallback analysis text, got %q", resp.AIAnalysis)
	}
}

func TestEvaluateFallbackWhenNoJSON(t *testing.T) {
	client := NewClient(stubGenerator{text: "I cannot answer in the requested format."})
	resp := client.Evaluate(context.Background(), testRequest())

	if resp.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", resp.Source)
	}
	if resp.TotalScore != 80 || resp.Points != 15 {
		t.Fatalf("expected locally computed 80/15, got %d/%d", resp.TotalScore, resp.Points)
	}
}

func TestEvaluateFallbackWhenJSONInvalid(t *testing.T) {
	client := NewClient(stubGenerator{text: `{"aiAnalysis": "unterminated`})
	resp := client.Evaluate(context.Background(), testRequest())

	if resp.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", resp.Source)
	}
}

func TestEvaluateDiscardsModelNumericFields(t *testing.T) {
	client := NewClient(stubGenerator{text: `{
		"totalScore": 12,
		"points": 99,
		"aiAnalysis": "balanced performance across categories",
		"detailedFeedback": "keep building on the strong quarter",
		"isValid": true,
		"recommendations": ["a", "b"]
	}`})
	resp := client.Evaluate(context.Background(), testRequest())

	if resp.Source != SourceGemini {
		t.Fatalf("expected gemini source, got %q", resp.Source)
	}
	if resp.TotalScore != 80 || resp.Points != 15 {
		t.Fatalf("expected model numbers to be discarded in favor of 80/15, got %d/%d", resp.TotalScore, resp.Points)
	}
	if resp.AIAnalysis != "balanced performance across categories" {
		t.Fatalf("expected model narrative to be kept, got %q", resp.AIAnalysis)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("expected model recommendations to be kept, got %v", resp.Recommendations)
	}
}

func TestEvaluateRepairsMissingFields(t *testing.T) {
	client := NewClient(stubGenerator{text: `{"isValid": true}`})
	resp := client.Evaluate(context.Background(), testRequest())

	if resp.AIAnalysis != MissingAnalysis {
		t.Fatalf("expected missing-analysis text, got %q", resp.AIAnalysis)
	}
	if resp.DetailedFeedback != MissingFeedback {
		t.Fatalf("expected missing-feedback text, got %q", resp.DetailedFeedback)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("expected non-empty default recommendations")
	}
}

func TestEvaluateValidityDefaultsTrue(t *testing.T) {
	client := NewClient(stubGenerator{text: `{"aiAnalysis": "ok"}`})
	resp := client.Evaluate(context.Background(), testRequest())
	if !resp.IsValid {
		t.Fatal("expected isValid to default to true when the model omits it")
	}

	client = NewClient(stubGenerator{text: `{"isValid": false}`})
	resp = client.Evaluate(context.Background(), testRequest())
	if resp.IsValid {
		t.Fatal("expected explicit false to be preserved")
	}
}

func TestEvaluateWithoutGenerator(t *testing.T) {
	client := NewClient(nil)
	resp := client.Evaluate(context.Background(), testRequest())
	if resp.Source != SourceFallback {
		t.Fatalf("expected fallback source when no generator is configured, got %q", resp.Source)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			text: `{"a":1}`,
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "object inside prose",
			text: "Here is the result:\n{\"a\":1}\nHope that helps.",
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "json code fence",
			text: "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "nested braces span to last close",
			text: `prefix {"a":{"b":2}} suffix`,
			want: `{"a":{"b":2}}`,
			ok:   true,
		},
		{
			name: "no object",
			text: "plain refusal text",
			ok:   false,
		},
		{
			name: "only close brace",
			text: "} nothing opens",
			ok:   false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractJSON(tc.text)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
