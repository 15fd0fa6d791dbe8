// Package match provides the shared keyword and pattern matching
// utilities used by every analyzer in the evaluation engine. Matching is
// purely lexical: case-insensitive, word-boundary aware substring and
// regex scans with no linguistic parsing.
package match

import (
	"regexp"
	"strings"
	"sync"
)

// WeightedPattern is a phrase with a contribution weight, used for
// confidence scoring of tonal signals.
type WeightedPattern struct {
	// Phrase is the keyword or phrase to look for.
	Phrase string

	// Weight is added to the confidence for each hit.
	Weight float64
}

// Matcher performs word-boundary keyword matching with a cache of
// compiled patterns. It is stateless apart from the cache and safe for
// concurrent use.
type Matcher struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

// New creates a Matcher with an empty pattern cache.
func New() *Matcher {
	return &Matcher{
		patterns: make(map[string]*regexp.Regexp),
	}
}

// wordPattern returns the compiled case-insensitive word-boundary
// pattern for a term, compiling and caching it on first use.
func (m *Matcher) wordPattern(term string) *regexp.Regexp {
	m.mu.RLock()
	re, ok := m.patterns[term]
	m.mu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)

	m.mu.Lock()
	m.patterns[term] = re
	m.mu.Unlock()

	return re
}

// Contains reports whether term occurs in text as a whole word or
// phrase, case-insensitively.
func (m *Matcher) Contains(text, term string) bool {
	if term == "" {
		return false
	}
	return m.wordPattern(term).MatchString(text)
}

// Count returns the number of word-boundary occurrences of term in text.
func (m *Matcher) Count(text, term string) int {
	if term == "" {
		return 0
	}
	return len(m.wordPattern(term).FindAllStringIndex(text, -1))
}

// Locate returns the [start, end) character offsets of every
// word-boundary occurrence of term in text.
func (m *Matcher) Locate(text, term string) [][]int {
	if term == "" {
		return nil
	}
	return m.wordPattern(term).FindAllStringIndex(text, -1)
}

// ContainsAny reports whether any of the terms occurs in text, returning
// the first matching term.
func (m *Matcher) ContainsAny(text string, terms []string) (string, bool) {
	for _, term := range terms {
		if m.Contains(text, term) {
			return term, true
		}
	}
	return "", false
}

// Confidence computes a tonal confidence from weighted pattern hits:
// the sum of weight x occurrences over all patterns, capped at 1.0.
func (m *Matcher) Confidence(text string, patterns []WeightedPattern) float64 {
	var total float64
	for _, p := range patterns {
		if hits := m.Count(text, p.Phrase); hits > 0 {
			total += p.Weight * float64(hits)
		}
	}
	if total > 1.0 {
		total = 1.0
	}
	return total
}

var (
	// sentenceSplit splits on sentence-ending punctuation.
	sentenceSplit = regexp.MustCompile(`[.!?]+`)

	// contractionPattern matches common English contractions.
	contractionPattern = regexp.MustCompile(`(?i)\b\w+'(t|s|re|ve|ll|d|m)\b`)

	// personalPronounPattern matches first and second person pronouns.
	personalPronounPattern = regexp.MustCompile(`(?i)\b(i|me|my|mine|we|us|our|ours|you|your|yours)\b`)

	// passivePattern is a rough passive-voice heuristic: a form of "to
	// be" followed by a probable past participle.
	passivePattern = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+(ed|en)\b`)
)

// SplitSentences splits text into sentences on terminal punctuation.
// Text without terminal punctuation counts as a single sentence.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountSentences returns the number of sentences in text.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// AverageSentenceLength returns the mean word count per sentence, or 0
// for empty text.
func AverageSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	total := 0
	for _, s := range sentences {
		total += CountWords(s)
	}
	return float64(total) / float64(len(sentences))
}

// CountContractions returns the number of contractions in text.
func CountContractions(text string) int {
	return len(contractionPattern.FindAllString(text, -1))
}

// CountPersonalPronouns returns the number of first and second person
// pronouns in text.
func CountPersonalPronouns(text string) int {
	return len(personalPronounPattern.FindAllString(text, -1))
}

// PassiveVoiceRatio returns the fraction of sentences that contain a
// passive construction, in [0, 1].
func PassiveVoiceRatio(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	passive := 0
	for _, s := range sentences {
		if passivePattern.MatchString(s) {
			passive++
		}
	}
	return float64(passive) / float64(len(sentences))
}
