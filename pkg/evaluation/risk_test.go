package evaluation

import (
	"encoding/json"
	"testing"
)

func TestRiskLevelOrdering(t *testing.T) {
	ordered := []RiskLevel{RiskNone, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%s is not below %s", ordered[i-1], ordered[i])
		}
	}
}

func TestRiskLevelScore(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  int
	}{
		{RiskNone, 100},
		{RiskLow, 80},
		{RiskMedium, 60},
		{RiskHigh, 30},
		{RiskVeryHigh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    RiskLevel
		wantErr bool
	}{
		{input: "NONE", want: RiskNone},
		{input: "LOW", want: RiskLow},
		{input: "MEDIUM", want: RiskMedium},
		{input: "HIGH", want: RiskHigh},
		{input: "VERY_HIGH", want: RiskVeryHigh},
		{input: "medium", wantErr: true},
		{input: "EXTREME", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRiskLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRiskLevel(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRiskLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRiskLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxRisk(t *testing.T) {
	if got := MaxRisk(RiskLow, RiskHigh); got != RiskHigh {
		t.Errorf("MaxRisk(LOW, HIGH) = %v, want HIGH", got)
	}
	if got := MaxRisk(RiskMedium, RiskNone); got != RiskMedium {
		t.Errorf("MaxRisk(MEDIUM, NONE) = %v, want MEDIUM", got)
	}
	if got := MaxRisk(RiskLow, RiskLow); got != RiskLow {
		t.Errorf("MaxRisk(LOW, LOW) = %v, want LOW", got)
	}
}

func TestRiskLevelJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(RiskMedium)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"MEDIUM"` {
		t.Errorf("Marshal = %s, want %q", data, `"MEDIUM"`)
	}

	var level RiskLevel
	if err := json.Unmarshal(data, &level); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if level != RiskMedium {
		t.Errorf("Unmarshal = %v, want MEDIUM", level)
	}

	if err := json.Unmarshal([]byte(`"BOGUS"`), &level); err == nil {
		t.Error("Unmarshal accepted unknown risk level")
	}
}
