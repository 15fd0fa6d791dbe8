package compliance

import (
	"strings"
	"testing"

	"brandguard-hq/brandguard/pkg/evaluation"
)

func mustContent(t *testing.T, text string) *evaluation.Content {
	t.Helper()
	content, err := evaluation.NewContent(text, "", nil)
	if err != nil {
		t.Fatalf("NewContent() error = %v", err)
	}
	return content
}

func analysis(score int, issues ...evaluation.Issue) *evaluation.AnalysisResult {
	return &evaluation.AnalysisResult{Score: score, Issues: issues}
}

func TestAggregateWeightedScore(t *testing.T) {
	tests := []struct {
		name              string
		weights           *Weights
		tone, voice, term int
		wantScore         int
		wantCompliant     bool
	}{
		{
			name: "default weights",
			// 0.35*80 + 0.30*70 + 0.35*92 = 81.2, rounds to 81.
			tone: 80, voice: 70, term: 92,
			wantScore:     81,
			wantCompliant: true,
		},
		{
			name: "all perfect",
			tone: 100, voice: 100, term: 100,
			wantScore:     100,
			wantCompliant: true,
		},
		{
			name: "just below threshold",
			tone: 79, voice: 79, term: 79,
			wantScore:     79,
			wantCompliant: false,
		},
		{
			name:    "custom weights renormalized",
			weights: &Weights{Tone: 2, Voice: 1, Terminology: 1},
			// (2*100 + 1*60 + 1*60) / 4 = 80.
			tone: 100, voice: 60, term: 60,
			wantScore:     80,
			wantCompliant: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator(tt.weights)
			result, err := a.Aggregate(mustContent(t, "sample copy"), "acme",
				analysis(tt.tone), analysis(tt.voice), analysis(tt.term))
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.IsCompliant() != tt.wantCompliant {
				t.Errorf("IsCompliant() = %t, want %t", result.IsCompliant(), tt.wantCompliant)
			}
		})
	}
}

func TestAggregateRequiresAllResults(t *testing.T) {
	a := NewAggregator(nil)
	if _, err := a.Aggregate(mustContent(t, "text"), "acme", analysis(100), nil, analysis(100)); err == nil {
		t.Error("Aggregate() succeeded with a nil analyzer result")
	}
	if _, err := a.Aggregate(nil, "acme", analysis(100), analysis(100), analysis(100)); err == nil {
		t.Error("Aggregate() succeeded with nil content")
	}
}

func TestSetWeights(t *testing.T) {
	a := NewAggregator(nil)

	if err := a.SetWeights(Weights{Tone: 1, Voice: 1, Terminology: 2}); err != nil {
		t.Fatalf("SetWeights() error = %v", err)
	}
	w := a.Weights()
	if w.Tone != 0.25 || w.Voice != 0.25 || w.Terminology != 0.5 {
		t.Errorf("Weights() = %+v, want normalized 0.25/0.25/0.5", w)
	}

	if err := a.SetWeights(Weights{Tone: 0, Voice: 1, Terminology: 1}); err == nil {
		t.Fatal("SetWeights() accepted a zero weight")
	}
	if got := a.Weights(); got != w {
		t.Errorf("rejected update changed weights to %+v", got)
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		description string
		want        evaluation.Severity
	}{
		{`avoided term "cheap" appears 2 time(s)`, evaluation.SeverityHigh},
		{"this must never appear in copy", evaluation.SeverityHigh},
		{"no contractions found; the brand voice should use contractions for an approachable feel", evaluation.SeverityMedium},
		{`term "employee" used where "team member" is preferred`, evaluation.SeverityMedium},
		{`proper noun "AcmeCloud" appears with nonstandard formatting`, evaluation.SeverityLow},
	}

	for _, tt := range tests {
		if got := classifySeverity(tt.description); got != tt.want {
			t.Errorf("classifySeverity(%q) = %s, want %s", tt.description, got, tt.want)
		}
	}
}

func TestAggregateSortsIssuesBySeverity(t *testing.T) {
	a := NewAggregator(nil)

	toneIssue := evaluation.Issue{Type: evaluation.IssueTone, Description: "tone should be stronger"}
	voiceIssue := evaluation.Issue{Type: evaluation.IssueVoice, Description: "minor phrasing nit"}
	termIssue := evaluation.Issue{Type: evaluation.IssueTerminology, Description: `avoided term "cheap" appears 1 time(s)`}

	result, err := a.Aggregate(mustContent(t, "text"), "acme",
		analysis(80, toneIssue), analysis(85, voiceIssue), analysis(85, termIssue))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(result.Issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(result.Issues))
	}
	if result.Issues[0].Severity != evaluation.SeverityHigh {
		t.Errorf("first issue severity = %s, want high", result.Issues[0].Severity)
	}
	if result.Issues[1].Severity != evaluation.SeverityMedium {
		t.Errorf("second issue severity = %s, want medium", result.Issues[1].Severity)
	}
	if result.Issues[2].Severity != evaluation.SeverityLow {
		t.Errorf("third issue severity = %s, want low", result.Issues[2].Severity)
	}
}

func TestAggregatePresetSeverityKept(t *testing.T) {
	a := NewAggregator(nil)
	preset := evaluation.Issue{
		Type:        evaluation.IssueTone,
		Description: "tone should be stronger",
		Severity:    evaluation.SeverityCritical,
	}

	result, err := a.Aggregate(mustContent(t, "text"), "acme",
		analysis(90, preset), analysis(100), analysis(100))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if result.Issues[0].Severity != evaluation.SeverityCritical {
		t.Errorf("severity = %s, want preset critical kept", result.Issues[0].Severity)
	}
}

func TestSummaryBands(t *testing.T) {
	a := NewAggregator(nil)

	tests := []struct {
		score int
		want  string
	}{
		{95, "excellent brand compliance"},
		{85, "good brand compliance"},
		{75, "fair brand compliance"},
		{65, "poor brand compliance"},
		{40, "very poor brand compliance"},
	}

	for _, tt := range tests {
		result, err := a.Aggregate(mustContent(t, "text"), "acme",
			analysis(tt.score), analysis(tt.score), analysis(tt.score))
		if err != nil {
			t.Fatalf("Aggregate() error = %v", err)
		}
		if !strings.HasPrefix(result.Summary, tt.want) {
			t.Errorf("score %d: Summary = %q, want prefix %q", tt.score, result.Summary, tt.want)
		}
		if !strings.Contains(result.Summary, "no issues found") {
			t.Errorf("score %d: Summary = %q, want issue-free suffix", tt.score, result.Summary)
		}
	}
}
