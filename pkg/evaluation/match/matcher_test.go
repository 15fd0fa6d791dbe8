package match

import "testing"

func TestMatcherContains(t *testing.T) {
	m := New()

	tests := []struct {
		name string
		text string
		term string
		want bool
	}{
		{name: "simple hit", text: "the quick brown fox", term: "quick", want: true},
		{name: "case insensitive", text: "The QUICK brown fox", term: "quick", want: true},
		{name: "no hit", text: "the quick brown fox", term: "slow", want: false},
		{name: "word boundary blocks substring", text: "classic assessment", term: "ass", want: false},
		{name: "phrase hit", text: "we believe in quality", term: "we believe", want: true},
		{name: "empty term", text: "anything", term: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Contains(tt.text, tt.term); got != tt.want {
				t.Errorf("Contains(%q, %q) = %t, want %t", tt.text, tt.term, got, tt.want)
			}
		})
	}
}

func TestMatcherCount(t *testing.T) {
	m := New()
	if got := m.Count("damn, this damn thing", "damn"); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := m.Count("nothing here", "damn"); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestMatcherLocate(t *testing.T) {
	m := New()
	locs := m.Locate("cheap and cheap again", "cheap")
	if len(locs) != 2 {
		t.Fatalf("Locate() found %d occurrences, want 2", len(locs))
	}
	if locs[0][0] != 0 || locs[0][1] != 5 {
		t.Errorf("first location = %v, want [0 5]", locs[0])
	}
}

func TestMatcherContainsAny(t *testing.T) {
	m := New()
	term, ok := m.ContainsAny("we hired a new employee", []string{"staff", "employee"})
	if !ok || term != "employee" {
		t.Errorf("ContainsAny() = %q, %t; want %q, true", term, ok, "employee")
	}
	if _, ok := m.ContainsAny("nothing relevant", []string{"staff", "employee"}); ok {
		t.Error("ContainsAny() = true for absent terms")
	}
}

func TestMatcherConfidence(t *testing.T) {
	m := New()
	patterns := []WeightedPattern{
		{Phrase: "we believe", Weight: 0.4},
		{Phrase: "delivers", Weight: 0.3},
		{Phrase: "excellent", Weight: 0.3},
		{Phrase: "results", Weight: 0.2},
	}

	text := "we believe our solution delivers excellent results"
	if got := m.Confidence(text, patterns); got != 1.0 {
		t.Errorf("Confidence() = %v, want 1.0 (capped)", got)
	}

	if got := m.Confidence("delivers", patterns); got != 0.3 {
		t.Errorf("Confidence() = %v, want 0.3", got)
	}

	if got := m.Confidence("unrelated text", patterns); got != 0 {
		t.Errorf("Confidence() = %v, want 0", got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "three sentences", text: "One. Two! Three?", want: 3},
		{name: "no terminal punctuation", text: "just a fragment", want: 1},
		{name: "repeated punctuation", text: "Wait... what?!", want: 2},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountSentences(tt.text); got != tt.want {
				t.Errorf("CountSentences(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountContractions(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"we're glad you're here", 2},
		{"do not use them", 0},
		{"it's fine, don't worry, I'll check", 3},
	}

	for _, tt := range tests {
		if got := CountContractions(tt.text); got != tt.want {
			t.Errorf("CountContractions(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountPersonalPronouns(t *testing.T) {
	if got := CountPersonalPronouns("We built this for you and your team"); got != 3 {
		t.Errorf("CountPersonalPronouns() = %d, want 3", got)
	}
	if got := CountPersonalPronouns("The system processes records"); got != 0 {
		t.Errorf("CountPersonalPronouns() = %d, want 0", got)
	}
}

func TestAverageSentenceLength(t *testing.T) {
	if got := AverageSentenceLength("One two three. One two three four five."); got != 4.0 {
		t.Errorf("AverageSentenceLength() = %v, want 4.0", got)
	}
	if got := AverageSentenceLength(""); got != 0 {
		t.Errorf("AverageSentenceLength() = %v, want 0", got)
	}
}

func TestPassiveVoiceRatio(t *testing.T) {
	if got := PassiveVoiceRatio("The report was completed. We shipped it."); got != 0.5 {
		t.Errorf("PassiveVoiceRatio() = %v, want 0.5", got)
	}
	if got := PassiveVoiceRatio("We ship fast. We iterate."); got != 0 {
		t.Errorf("PassiveVoiceRatio() = %v, want 0", got)
	}
}
