package analysis

import (
	"regexp"
	"strings"

	"github.com/pinereel/pinereel/internal/model"
)

const (
	minSentenceChars = 10
	maxPerBucket     = 5
)

var sentenceSplit = regexp.MustCompile(`[.!?]`)

// IdentifyComponents buckets transcript sentences into the trading-logic
// groups used to seed a script implementation. Matching is plain substring
// containment against the lowercased sentence.
func IdentifyComponents(text string) model.StrategyComponents {
	var components model.StrategyComponents

	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minSentenceChars {
			continue
		}
		lower := strings.ToLower(sentence)

		// Entry and exit sentences only count when qualified by a
		// conditional word, otherwise casual mentions flood the buckets.
		if containsAny(lower, entryKeywords) && containsAny(lower, []string{"when", "if", "once"}) {
			components.EntryConditions = append(components.EntryConditions, sentence)
		}
		if containsAny(lower, exitKeywords) && containsAny(lower, []string{"when", "if", "at"}) {
			components.ExitConditions = append(components.ExitConditions, sentence)
		}
		if containsAny(lower, riskKeywords) {
			components.RiskManagement = append(components.RiskManagement, sentence)
		}
		if containsAny(lower, ruleKeywords) {
			components.KeyRules = append(components.KeyRules, sentence)
		}
	}

	components.EntryConditions = cap5(components.EntryConditions)
	components.ExitConditions = cap5(components.ExitConditions)
	components.RiskManagement = cap5(components.RiskManagement)
	components.KeyRules = cap5(components.KeyRules)
	return components
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func cap5(sentences []string) []string {
	if len(sentences) > maxPerBucket {
		return sentences[:maxPerBucket]
	}
	return sentences
}
