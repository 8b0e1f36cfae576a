package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/pinereel/pinereel/internal/model"
)

const (
	maxComplexity = 10
	maxSuggested  = 5
)

// BuildScriptSpec derives the Pine Script specification from the extracted
// concepts and components.
func BuildScriptSpec(concepts model.ConceptFindings, components model.StrategyComponents, metadata model.VideoMetadata, transcriptSource string) model.ScriptSpec {
	hasEntry := len(components.EntryConditions) > 0
	hasExit := len(components.ExitConditions) > 0

	scriptType := model.ScriptTypeIndicator
	if hasEntry || hasExit {
		scriptType = model.ScriptTypeStrategy
	}

	strategyStyle := "custom"
	if len(concepts.Strategies) > 0 {
		strategyStyle = concepts.Strategies[0].Term
	}

	return model.ScriptSpec{
		VideoInfo: model.VideoInfo{
			Title:            metadata.Title,
			Author:           metadata.Author,
			Duration:         metadata.DurationString,
			URL:              metadata.URL,
			TranscriptSource: transcriptSource,
			AnalyzedAt:       time.Now(),
		},
		ScriptType:      scriptType,
		ComplexityScore: complexityScore(concepts, components),
		MainIndicators:  Terms(concepts.Indicators, 5),
		Patterns:        Terms(concepts.Patterns, 5),
		StrategyStyle:   strategyStyle,
		Timeframes:      Terms(concepts.Timeframes, 3),
		Implementation: model.Implementation{
			EntryLogic: components.EntryConditions,
			ExitLogic:  components.ExitConditions,
			RiskRules:  components.RiskManagement,
			KeyRules:   components.KeyRules,
		},
		Parameters:        concepts.SpecificValues,
		Feasibility:       assessFeasibility(concepts),
		SuggestedFeatures: suggestFeatures(concepts, components, scriptType),
	}
}

// complexityScore grades the detected concepts on a bounded [1,10] scale.
func complexityScore(concepts model.ConceptFindings, components model.StrategyComponents) int {
	score := 1
	score += minInt(len(concepts.Indicators), 3)
	score += minInt(len(concepts.Patterns), 2)
	if len(components.EntryConditions) > 0 {
		score++
	}
	if len(components.ExitConditions) > 0 {
		score++
	}
	if len(components.RiskManagement) > 0 {
		score++
	}
	if len(concepts.Timeframes) > 1 {
		score++
	}
	return minInt(score, maxComplexity)
}

func assessFeasibility(concepts model.ConceptFindings) model.Feasibility {
	var issues []string

	var terms []model.Mention
	terms = append(terms, concepts.Strategies...)
	terms = append(terms, concepts.Indicators...)
	for _, mention := range terms {
		for _, p := range problematicTerms {
			if strings.Contains(strings.ToLower(mention.Term), p) {
				issues = append(issues, fmt.Sprintf("'%s' may require external data or complex implementation", mention.Term))
				break
			}
		}
	}

	if len(concepts.Indicators) > 5 {
		issues = append(issues, "Many indicators - may need to optimize for performance")
	}

	overall := "full"
	if len(issues) > 0 {
		overall = "partial"
	}

	return model.Feasibility{
		Overall:    overall,
		Issues:     issues,
		Compatible: len(issues) == 0,
	}
}

func suggestFeatures(concepts model.ConceptFindings, components model.StrategyComponents, scriptType string) []string {
	var suggestions []string

	if scriptType == model.ScriptTypeStrategy {
		if len(components.RiskManagement) == 0 {
			suggestions = append(suggestions, "Add position sizing and risk management")
		}
		suggestions = append(suggestions,
			"Include backtesting performance table",
			"Add alert conditions for signals")
	} else {
		suggestions = append(suggestions,
			"Add visual signal markers",
			"Include info panel with current values")
	}

	if len(concepts.Timeframes) > 1 {
		suggestions = append(suggestions, "Implement multi-timeframe analysis")
	}

	suggestions = append(suggestions,
		"Add input groups with tooltips",
		"Include debug mode toggle")

	if len(suggestions) > maxSuggested {
		suggestions = suggestions[:maxSuggested]
	}
	return suggestions
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
