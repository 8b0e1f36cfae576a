package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pinereel/pinereel/internal/model"
)

const (
	topMentionsPerCategory = 10
	maxValuesPerGroup      = 5
)

// valuePattern pairs a pre-compiled extraction regex with the value type it
// reports. Group 1 carries the numeric value.
type valuePattern struct {
	re        *regexp.Regexp
	valueType string
}

var valuePatterns = []valuePattern{
	{regexp.MustCompile(`(\d+)\s*(?:period|length|bar|candle)s?`), "periods"},
	{regexp.MustCompile(`(\d+\.?\d*)\s*(?:%|percent)`), "percentages"},
	{regexp.MustCompile(`(\d+)\s*(?:pip|point|tick)s?`), "pips"},
	{regexp.MustCompile(`(?:level|zone|area|price)\s*(?:of|at|around)?\s*\$?(\d+\.?\d*)`), "levels"},
	{regexp.MustCompile(`(\d+)\s*(?:ema|sma|ma)\b`), "ma_lengths"},
	{regexp.MustCompile(`(?:rsi|stochastic)\s*(?:of|at|above|below)?\s*(\d+)`), "oscillator_levels"},
}

// ExtractConcepts scans the transcript for the fixed keyword categories and
// numeric parameter values. Mentions within a category are ranked by
// occurrence count, deduplicated, and capped at the top ten.
func ExtractConcepts(text string) model.ConceptFindings {
	lower := strings.ToLower(text)

	findings := model.ConceptFindings{
		Indicators: rankMentions(lower, tradingKeywords[CategoryIndicators]),
		Patterns:   rankMentions(lower, tradingKeywords[CategoryPatterns]),
		Strategies: rankMentions(lower, tradingKeywords[CategoryStrategies]),
		Conditions: rankMentions(lower, tradingKeywords[CategoryConditions]),
		Timeframes: rankMentions(lower, tradingKeywords[CategoryTimeframes]),
	}

	for _, vp := range valuePatterns {
		values := uniqueValues(vp.re.FindAllStringSubmatch(lower, -1), maxValuesPerGroup)
		if len(values) > 0 {
			findings.SpecificValues = append(findings.SpecificValues, model.ValueGroup{
				Type:   vp.valueType,
				Values: values,
			})
		}
	}

	return findings
}

// rankMentions counts keyword occurrences and keeps the most frequent terms.
func rankMentions(lower string, keywords []string) []model.Mention {
	var mentions []model.Mention
	seen := make(map[string]bool, len(keywords))

	for _, keyword := range keywords {
		if seen[keyword] {
			continue
		}
		seen[keyword] = true

		count := strings.Count(lower, keyword)
		if count > 0 {
			mentions = append(mentions, model.Mention{Term: keyword, Count: count})
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Count > mentions[j].Count
	})

	if len(mentions) > topMentionsPerCategory {
		mentions = mentions[:topMentionsPerCategory]
	}
	return mentions
}

func uniqueValues(matches [][]string, limit int) []string {
	seen := make(map[string]bool)
	var values []string
	for _, m := range matches {
		if len(m) < 2 || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		values = append(values, m[1])
		if len(values) == limit {
			break
		}
	}
	return values
}

// Terms flattens mentions to their terms, keeping rank order.
func Terms(mentions []model.Mention, limit int) []string {
	if limit > len(mentions) {
		limit = len(mentions)
	}
	terms := make([]string, 0, limit)
	for _, m := range mentions[:limit] {
		terms = append(terms, m.Term)
	}
	return terms
}
