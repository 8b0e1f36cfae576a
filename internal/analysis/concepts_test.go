package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConcepts_CountsOccurrences(t *testing.T) {
	text := "The RSI is key. Watch the rsi closely. RSI above 70 means overbought."

	findings := ExtractConcepts(text)

	var rsiCount, appearances int
	for _, m := range findings.Indicators {
		if m.Term == "rsi" {
			rsiCount = m.Count
			appearances++
		}
	}
	assert.Equal(t, 3, rsiCount)
	assert.Equal(t, 1, appearances, "a term appears at most once in its category")
}

func TestExtractConcepts_RanksByFrequency(t *testing.T) {
	text := strings.Repeat("macd ", 5) + strings.Repeat("vwap ", 2) + "ichimoku"

	findings := ExtractConcepts(text)
	require.NotEmpty(t, findings.Indicators)

	assert.Equal(t, "macd", findings.Indicators[0].Term)
	assert.Equal(t, 5, findings.Indicators[0].Count)
	for i := 1; i < len(findings.Indicators); i++ {
		assert.LessOrEqual(t, findings.Indicators[i].Count, findings.Indicators[i-1].Count)
	}
}

func TestExtractConcepts_TopTenPerCategory(t *testing.T) {
	// Mention more than ten distinct indicators.
	text := "rsi macd ema sma wma bollinger stochastic volume atr adx ichimoku fibonacci vwap momentum cci"

	findings := ExtractConcepts(text)
	assert.Len(t, findings.Indicators, 10)
}

func TestExtractConcepts_CategoryAssignment(t *testing.T) {
	text := "This swing trading strategy uses a breakout entry on the 4 hour chart with a stop loss."

	findings := ExtractConcepts(text)

	assert.Contains(t, Terms(findings.Strategies, 10), "swing trading")
	assert.Contains(t, Terms(findings.Patterns, 10), "breakout")
	assert.Contains(t, Terms(findings.Conditions, 10), "stop loss")
	assert.Contains(t, Terms(findings.Timeframes, 10), "4 hour")
}

func TestExtractConcepts_NumericValues(t *testing.T) {
	text := "Use a 14 period RSI with the 50 ema and 200 sma. Risk 2 percent per trade, target 30 pips at a level of $1950.50."

	findings := ExtractConcepts(text)

	groups := make(map[string][]string)
	for _, g := range findings.SpecificValues {
		groups[g.Type] = g.Values
	}

	assert.Contains(t, groups["periods"], "14")
	assert.Contains(t, groups["percentages"], "2")
	assert.Contains(t, groups["pips"], "30")
	assert.Contains(t, groups["levels"], "1950.50")
	assert.Contains(t, groups["ma_lengths"], "50")
	assert.Contains(t, groups["ma_lengths"], "200")
}

func TestExtractConcepts_ValueGroupsCapped(t *testing.T) {
	text := "10 period 20 period 30 period 40 period 50 period 60 period 70 period"

	findings := ExtractConcepts(text)
	for _, g := range findings.SpecificValues {
		assert.LessOrEqual(t, len(g.Values), 5)
	}
}

func TestExtractConcepts_EmptyText(t *testing.T) {
	findings := ExtractConcepts("")

	assert.Empty(t, findings.Indicators)
	assert.Empty(t, findings.Patterns)
	assert.Empty(t, findings.Strategies)
	assert.Empty(t, findings.Conditions)
	assert.Empty(t, findings.Timeframes)
	assert.Empty(t, findings.SpecificValues)
}

func TestTerms(t *testing.T) {
	findings := ExtractConcepts("rsi macd vwap")

	terms := Terms(findings.Indicators, 2)
	assert.Len(t, terms, 2)

	all := Terms(findings.Indicators, 100)
	assert.Len(t, all, len(findings.Indicators))
}
