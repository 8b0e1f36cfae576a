package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyComponents_EntryConditions(t *testing.T) {
	text := "You enter the trade when the RSI crosses above thirty. This sentence mentions buy but lacks any conditional trigger words."

	components := IdentifyComponents(text)

	assert.Len(t, components.EntryConditions, 1)
	assert.Contains(t, components.EntryConditions[0], "when the RSI crosses")
}

func TestIdentifyComponents_ExitConditions(t *testing.T) {
	text := "Take profit when price reaches the upper band. Exit if momentum fades quickly."

	components := IdentifyComponents(text)
	assert.Len(t, components.ExitConditions, 2)
}

func TestIdentifyComponents_RiskAndRules(t *testing.T) {
	text := "Proper position size keeps your drawdown manageable. You must always respect your stop placement. Never risk more than two percent on one idea."

	components := IdentifyComponents(text)

	assert.NotEmpty(t, components.RiskManagement)
	assert.NotEmpty(t, components.KeyRules)
}

func TestIdentifyComponents_SkipsShortSentences(t *testing.T) {
	text := "Buy now. Go long when the moving averages align perfectly."

	components := IdentifyComponents(text)

	// "Buy now" is under the minimum sentence length.
	assert.Len(t, components.EntryConditions, 1)
}

func TestIdentifyComponents_CapsAtFive(t *testing.T) {
	sentence := "You should enter the position when the indicator gives a clear signal. "
	text := strings.Repeat(sentence, 8)

	components := IdentifyComponents(text)
	assert.Len(t, components.EntryConditions, 5)
}

func TestIdentifyComponents_NoMatches(t *testing.T) {
	text := "This video is about cooking pasta with fresh tomatoes and basil from the garden."

	components := IdentifyComponents(text)

	assert.Empty(t, components.EntryConditions)
	assert.Empty(t, components.ExitConditions)
	assert.Empty(t, components.RiskManagement)
}
