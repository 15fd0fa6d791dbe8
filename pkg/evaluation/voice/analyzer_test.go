package voice

import (
	"testing"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/evaluation"
)

func mustContent(t *testing.T, text, context string) *evaluation.Content {
	t.Helper()
	content, err := evaluation.NewContent(text, context, nil)
	if err != nil {
		t.Fatalf("NewContent() error = %v", err)
	}
	return content
}

func boolPtr(v bool) *bool { return &v }

func TestAnalyzerCompliantVoice(t *testing.T) {
	b := &brand.Brand{Name: "acme", Voice: brand.VoiceGuidelines{
		UseContractions:   true,
		PersonalPronouns:  true,
		SentenceStructure: "concise",
	}}
	a := NewAnalyzer(b)

	text := "We're glad you're here. You'll love what we've built. It's fast and simple. We can't wait to show you."
	result, err := a.Analyze(mustContent(t, text, ""))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100; issues: %v", result.Score, result.Issues)
	}
}

func TestAnalyzerContractionGate(t *testing.T) {
	b := &brand.Brand{Name: "acme", Voice: brand.VoiceGuidelines{UseContractions: true, PersonalPronouns: true}}
	a := NewAnalyzer(b)

	// Three sentences, no contractions: below the gate, never flagged.
	short := "We welcome you. You will like it. We built it for you."
	result, err := a.Analyze(mustContent(t, short, ""))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Score != 100 {
		t.Errorf("short content: Score = %d, want 100", result.Score)
	}

	// Four sentences trip the gate.
	long := "We welcome you to the platform. You will find the tools simple. We built them for you. Your team will enjoy them."
	result, err = a.Analyze(mustContent(t, long, ""))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Score != 85 {
		t.Errorf("long content: Score = %d, want 85", result.Score)
	}
	if len(result.Issues) != 1 || result.Issues[0].Type != evaluation.IssueVoice {
		t.Fatalf("got issues %v, want one voice issue", result.Issues)
	}
}

func TestAnalyzerContractionsForbidden(t *testing.T) {
	b := &brand.Brand{Name: "acme", Voice: brand.VoiceGuidelines{UseContractions: false, PersonalPronouns: true}}
	text := "We're delighted to announce the launch. It's been a long road. Our team can't wait. You'll see the results soon."

	a := NewAnalyzer(b)
	result, err := a.Analyze(mustContent(t, text, ""))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(result.Issues))
	}
}

func TestAnalyzerContextualContractionOverride(t *testing.T) {
	b := &brand.Brand{
		Name:  "acme",
		Voice: brand.VoiceGuidelines{UseContractions: false, PersonalPronouns: true},
		ContextualAdjustments: map[string]brand.ContextualAdjustment{
			"social": {UseContractions: boolPtr(true)},
		},
	}
	text := "We're delighted to announce the launch. It's been a long road. Our team can't wait. You'll see the results soon."

	a := NewAnalyzer(b)
	result, err := a.Analyze(mustContent(t, text, "social"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 after contextual override", result.Score)
	}
	if len(result.Issues) != 0 {
		t.Errorf("got %d issues, want 0 after contextual override", len(result.Issues))
	}
}

func TestAnalyzerPronouns(t *testing.T) {
	tests := []struct {
		name      string
		want      bool
		text      string
		wantScore int
	}{
		{
			name:      "wanted but absent",
			want:      true,
			text:      "The platform ships today. The tools are simple. The rollout starts Monday.",
			wantScore: 85,
		},
		{
			name:      "forbidden but present",
			want:      false,
			text:      "We ship the platform today. You get the tools now. Our rollout starts Monday.",
			wantScore: 85,
		},
		{
			name:      "two sentences never flagged",
			want:      true,
			text:      "The platform ships today. The rollout starts Monday.",
			wantScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &brand.Brand{Name: "acme", Voice: brand.VoiceGuidelines{PersonalPronouns: tt.want}}
			result, err := NewAnalyzer(b).Analyze(mustContent(t, tt.text, ""))
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
		})
	}
}

func TestAnalyzerStructure(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		text      string
		wantScore int
	}{
		{
			name:      "concise violated by a long sentence",
			structure: "concise",
			text: "The comprehensive enterprise platform delivers an extensive collection of advanced analytics dashboards " +
				"alongside configurable reporting pipelines that aggregate telemetry from every connected deployment environment worldwide.",
			wantScore: 80,
		},
		{
			name:      "varied violated by uniform sentences",
			structure: "varied",
			text:      "The team ships code daily. The build runs green always. The support desk answers quickly. The product grows better steadily.",
			wantScore: 80,
		},
		{
			name:      "direct violated by passive voice",
			structure: "direct",
			text:      "The report was completed by the team. The results speak clearly.",
			wantScore: 80,
		},
		{
			name:      "direct satisfied by active voice",
			structure: "direct",
			text:      "The team completed the report. The results speak clearly.",
			wantScore: 100,
		},
		{
			name:      "no structure guideline",
			structure: "",
			text:      "The report was completed by the team.",
			wantScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &brand.Brand{Name: "acme", Voice: brand.VoiceGuidelines{SentenceStructure: tt.structure}}
			result, err := NewAnalyzer(b).Analyze(mustContent(t, tt.text, ""))
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d; issues: %v", result.Score, tt.wantScore, result.Issues)
			}
		})
	}
}

func TestAnalyzerNilContent(t *testing.T) {
	a := NewAnalyzer(&brand.Brand{Name: "acme"})
	if _, err := a.Analyze(nil); err == nil {
		t.Error("Analyze(nil) succeeded, want error")
	}
}
