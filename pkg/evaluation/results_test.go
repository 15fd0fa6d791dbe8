package evaluation

import "testing"

func TestNewComplianceEvaluation(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "zero score", score: 0},
		{name: "full score", score: 100},
		{name: "threshold score", score: 80},
		{name: "negative score", score: -1, wantErr: true},
		{name: "score above 100", score: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := NewComplianceEvaluation("text", "", "acme", tt.score, nil, "summary")
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewComplianceEvaluation(score=%d) succeeded, want error", tt.score)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewComplianceEvaluation() error = %v", err)
			}
			if eval.Score != tt.score {
				t.Errorf("Score = %d, want %d", eval.Score, tt.score)
			}
		})
	}
}

func TestComplianceThresholdBoundary(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{79, false},
		{80, true},
		{81, true},
	}

	for _, tt := range tests {
		eval, err := NewComplianceEvaluation("text", "", "acme", tt.score, nil, "")
		if err != nil {
			t.Fatalf("NewComplianceEvaluation(score=%d) error = %v", tt.score, err)
		}
		if got := eval.IsCompliant(); got != tt.want {
			t.Errorf("IsCompliant() with score %d = %t, want %t", tt.score, got, tt.want)
		}
	}
}

func TestSafetyEvaluationIsSafe(t *testing.T) {
	tests := []struct {
		risk RiskLevel
		want bool
	}{
		{RiskNone, true},
		{RiskLow, true},
		{RiskMedium, false},
		{RiskHigh, false},
		{RiskVeryHigh, false},
	}

	for _, tt := range tests {
		t.Run(tt.risk.String(), func(t *testing.T) {
			eval := &SafetyEvaluation{OverallRisk: tt.risk}
			if got := eval.IsSafe(); got != tt.want {
				t.Errorf("IsSafe() with %s = %t, want %t", tt.risk, got, tt.want)
			}
		})
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityMedium.Rank() {
		t.Error("high does not outrank medium")
	}
	if SeverityMedium.Rank() <= SeverityLow.Rank() {
		t.Error("medium does not outrank low")
	}
	if SeverityCritical.Rank() <= SeverityHigh.Rank() {
		t.Error("critical does not outrank high")
	}
	if SeverityError.Rank() != SeverityHigh.Rank() {
		t.Error("error and high should share a rank")
	}
	if SeverityWarning.Rank() != SeverityMedium.Rank() {
		t.Error("warning and medium should share a rank")
	}
}
