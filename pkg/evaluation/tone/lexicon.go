package tone

import "brandguard-hq/brandguard/pkg/evaluation/match"

// toneLexicon maps tone names to their weighted detection patterns.
// Weights reflect how strongly a phrase signals the tone; several
// moderate hits or one strong hit push confidence past the detection
// threshold.
var toneLexicon = map[string][]match.WeightedPattern{
	"confident": {
		{Phrase: "we believe", Weight: 0.4},
		{Phrase: "proven", Weight: 0.4},
		{Phrase: "delivers", Weight: 0.3},
		{Phrase: "excellent", Weight: 0.3},
		{Phrase: "guarantee", Weight: 0.4},
		{Phrase: "leading", Weight: 0.3},
		{Phrase: "results", Weight: 0.2},
	},
	"friendly": {
		{Phrase: "welcome", Weight: 0.4},
		{Phrase: "happy to", Weight: 0.4},
		{Phrase: "thanks", Weight: 0.3},
		{Phrase: "glad", Weight: 0.3},
		{Phrase: "together", Weight: 0.2},
		{Phrase: "enjoy", Weight: 0.3},
	},
	"professional": {
		{Phrase: "expertise", Weight: 0.4},
		{Phrase: "solution", Weight: 0.3},
		{Phrase: "industry", Weight: 0.3},
		{Phrase: "standards", Weight: 0.3},
		{Phrase: "established", Weight: 0.3},
	},
	"casual": {
		{Phrase: "hey", Weight: 0.4},
		{Phrase: "no worries", Weight: 0.4},
		{Phrase: "stuff", Weight: 0.3},
		{Phrase: "awesome", Weight: 0.3},
		{Phrase: "cool", Weight: 0.3},
	},
	"playful": {
		{Phrase: "fun", Weight: 0.4},
		{Phrase: "let's play", Weight: 0.5},
		{Phrase: "woohoo", Weight: 0.5},
		{Phrase: "surprise", Weight: 0.3},
	},
	"authoritative": {
		{Phrase: "must", Weight: 0.3},
		{Phrase: "required", Weight: 0.3},
		{Phrase: "definitive", Weight: 0.4},
		{Phrase: "the standard", Weight: 0.4},
		{Phrase: "proven", Weight: 0.3},
	},
	"empathetic": {
		{Phrase: "we understand", Weight: 0.5},
		{Phrase: "we know how", Weight: 0.4},
		{Phrase: "you're not alone", Weight: 0.5},
		{Phrase: "support you", Weight: 0.4},
	},
	"urgent": {
		{Phrase: "now", Weight: 0.3},
		{Phrase: "immediately", Weight: 0.4},
		{Phrase: "don't wait", Weight: 0.5},
		{Phrase: "last chance", Weight: 0.5},
		{Phrase: "hurry", Weight: 0.5},
	},
	"formal": {
		{Phrase: "pursuant", Weight: 0.5},
		{Phrase: "hereby", Weight: 0.5},
		{Phrase: "furthermore", Weight: 0.4},
		{Phrase: "accordingly", Weight: 0.4},
	},
	"aggressive": {
		{Phrase: "crush", Weight: 0.4},
		{Phrase: "destroy", Weight: 0.4},
		{Phrase: "dominate", Weight: 0.4},
		{Phrase: "beat them", Weight: 0.5},
	},
	"condescending": {
		{Phrase: "obviously", Weight: 0.4},
		{Phrase: "as everyone knows", Weight: 0.5},
		{Phrase: "simply put", Weight: 0.3},
		{Phrase: "even you", Weight: 0.5},
	},
}
