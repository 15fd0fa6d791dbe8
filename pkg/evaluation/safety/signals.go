package safety

import "brandguard-hq/brandguard/pkg/evaluation"

// signalGroup is a set of terms that, when matched, assess a category at
// the given risk level.
type signalGroup struct {
	risk  evaluation.RiskLevel
	terms []string
}

// categorySignals holds the built-in detection lexicon per category.
// Groups are ordered highest risk first; the first group with a match
// determines the base risk. The lexicons are deliberately small,
// rule-based keyword lists, not classifier vocabularies.
var categorySignals = map[string][]signalGroup{
	"sexual_content": {
		{risk: evaluation.RiskHigh, terms: []string{"porn", "explicit sex", "xxx"}},
		{risk: evaluation.RiskMedium, terms: []string{"nude", "erotic", "sexual"}},
		{risk: evaluation.RiskLow, terms: []string{"sexy", "seductive"}},
	},
	"violence": {
		{risk: evaluation.RiskHigh, terms: []string{"murder", "massacre", "slaughter", "shoot them"}},
		{risk: evaluation.RiskMedium, terms: []string{"kill", "attack", "assault", "weapon"}},
		{risk: evaluation.RiskLow, terms: []string{"fight", "punch", "blood"}},
	},
	"hate_speech": {
		{risk: evaluation.RiskVeryHigh, terms: []string{"ethnic cleansing", "racial purity"}},
		{risk: evaluation.RiskHigh, terms: []string{"racist", "white power", "subhuman"}},
		{risk: evaluation.RiskMedium, terms: []string{"go back to your country"}},
	},
	"harassment": {
		{risk: evaluation.RiskHigh, terms: []string{"i will find you", "you will regret", "watch your back"}},
		{risk: evaluation.RiskMedium, terms: []string{"idiot", "idiots", "stupid", "loser", "moron", "pathetic"}},
		{risk: evaluation.RiskLow, terms: []string{"shut up", "nobody cares"}},
	},
	"self_harm": {
		{risk: evaluation.RiskVeryHigh, terms: []string{"kill yourself", "end your life"}},
		{risk: evaluation.RiskHigh, terms: []string{"suicide", "self-harm", "cut yourself"}},
	},
	"illegal_activities": {
		{risk: evaluation.RiskHigh, terms: []string{"how to steal", "launder money", "buy stolen"}},
		{risk: evaluation.RiskMedium, terms: []string{"counterfeit", "hack into", "pirated"}},
	},
	"profanity": {
		{risk: evaluation.RiskMedium, terms: []string{"fuck", "shit", "bitch", "asshole"}},
		{risk: evaluation.RiskLow, terms: []string{"damn", "hell", "crap", "ass"}},
	},
	"controlled_substances": {
		{risk: evaluation.RiskHigh, terms: []string{"buy cocaine", "sell heroin", "meth recipe"}},
		{risk: evaluation.RiskMedium, terms: []string{"cocaine", "heroin", "meth", "opioid"}},
		{risk: evaluation.RiskLow, terms: []string{"marijuana", "cannabis", "vaping"}},
	},
	"political": {
		{risk: evaluation.RiskMedium, terms: []string{"vote for", "election fraud", "far-left", "far-right"}},
		{risk: evaluation.RiskLow, terms: []string{"political", "policy debate", "partisan"}},
	},
	"religious": {
		{risk: evaluation.RiskMedium, terms: []string{"infidel", "heathen", "godless"}},
		{risk: evaluation.RiskLow, terms: []string{"religion", "religious", "worship"}},
	},
}

// negativeSentimentTerms feed the sentiment category's rule-based check.
var negativeSentimentTerms = []string{
	"terrible", "awful", "horrible", "worst", "hate",
	"disgusting", "useless", "garbage", "disaster", "furious",
}

// positiveSentimentTerms offset negative hits in the sentiment score.
var positiveSentimentTerms = []string{
	"good", "great", "excellent", "amazing", "wonderful",
	"love", "best", "delightful", "fantastic", "perfect",
}

// escalationMatchCount is the number of in-category hits at which the
// assessed risk escalates one level.
const escalationMatchCount = 3
