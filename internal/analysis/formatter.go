package analysis

import (
	"fmt"
	"strings"

	"github.com/pinereel/pinereel/internal/model"
)

const (
	maxTitleChars     = 60
	maxSentenceChars  = 80
	maxListedEntries  = 3
	maxListedPatterns = 3
)

// CLIFormatter renders analysis reports for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{styles: NewStyles()}
}

// FormatSummary creates the user-facing summary of an analysis report.
func (f *CLIFormatter) FormatSummary(report *model.AnalysisReport) string {
	if report == nil || report.Spec == nil {
		return f.styles.Error.Render("No report available")
	}
	spec := report.Spec

	var sections []string
	sections = append(sections, f.formatHeader(spec))
	sections = append(sections, f.formatResults(spec))
	sections = append(sections, f.formatDetected(spec))
	sections = append(sections, f.formatTradingLogic(spec))

	if len(spec.SuggestedFeatures) > 0 {
		sections = append(sections, f.formatSuggestions(spec.SuggestedFeatures))
	}
	if len(spec.Feasibility.Issues) > 0 {
		sections = append(sections, f.formatIssues(spec.Feasibility.Issues))
	}

	footer := f.styles.Subtle.Render("Ready to implement! Review the saved report for full details.")
	sections = append(sections, footer)

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatHeader(spec *model.ScriptSpec) string {
	title := f.styles.Title.Render("📹 Video Analysis Complete")

	lines := []string{
		title,
		fmt.Sprintf("%s %s", f.styles.Label.Render("Source:"), truncateLine(spec.VideoInfo.Title, maxTitleChars)),
		fmt.Sprintf("%s %s", f.styles.Label.Render("Author:"), spec.VideoInfo.Author),
		fmt.Sprintf("%s %s", f.styles.Label.Render("Duration:"), spec.VideoInfo.Duration),
		fmt.Sprintf("%s %s", f.styles.Label.Render("Transcript:"), spec.VideoInfo.TranscriptSource),
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatResults(spec *model.ScriptSpec) string {
	header := f.styles.Section.Render("Analysis Results")

	feasibility := strings.ToUpper(spec.Feasibility.Overall)
	feasibilityStyled := f.styles.Success.Render(feasibility)
	if !spec.Feasibility.Compatible {
		feasibilityStyled = f.styles.Warning.Render(feasibility)
	}

	lines := []string{
		header,
		fmt.Sprintf("  📊 Script Type:    %s", strings.ToUpper(spec.ScriptType)),
		fmt.Sprintf("  ⚡ Complexity:     %s", f.styles.Score.Render(fmt.Sprintf("%d/10", spec.ComplexityScore))),
		fmt.Sprintf("  🎯 Strategy Style: %s", spec.StrategyStyle),
		fmt.Sprintf("  ✅ Feasibility:    %s", feasibilityStyled),
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatDetected(spec *model.ScriptSpec) string {
	header := f.styles.Section.Render("Detected Components")

	lines := []string{
		header,
		fmt.Sprintf("  📈 Indicators: %s", joinOr(spec.MainIndicators, len(spec.MainIndicators), "None detected")),
		fmt.Sprintf("  📐 Patterns:   %s", joinOr(spec.Patterns, maxListedPatterns, "None detected")),
		fmt.Sprintf("  ⏰ Timeframes: %s", joinOr(spec.Timeframes, len(spec.Timeframes), "Not specified")),
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatTradingLogic(spec *model.ScriptSpec) string {
	header := f.styles.Section.Render("Trading Logic")

	impl := spec.Implementation
	lines := []string{
		header,
		fmt.Sprintf("  🟢 Entry Conditions: %d identified", len(impl.EntryLogic)),
		fmt.Sprintf("  🔴 Exit Conditions:  %d identified", len(impl.ExitLogic)),
		fmt.Sprintf("  🛡️ Risk Rules:       %d identified", len(impl.RiskRules)),
	}

	if len(impl.EntryLogic) > 0 {
		lines = append(lines, "", "  Entry Logic Found:")
		lines = append(lines, numberedSentences(impl.EntryLogic)...)
	}
	if len(impl.ExitLogic) > 0 {
		lines = append(lines, "", "  Exit Logic Found:")
		lines = append(lines, numberedSentences(impl.ExitLogic)...)
	}

	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatSuggestions(features []string) string {
	header := f.styles.Section.Render("Suggested Features")

	lines := []string{header}
	for _, feature := range features {
		lines = append(lines, "  • "+feature)
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatIssues(issues []string) string {
	header := f.styles.Warning.Render("⚠️ Implementation Notes")

	lines := []string{header}
	for _, issue := range issues {
		lines = append(lines, "  • "+issue)
	}
	return strings.Join(lines, "\n")
}

func numberedSentences(sentences []string) []string {
	limit := len(sentences)
	if limit > maxListedEntries {
		limit = maxListedEntries
	}
	lines := make([]string, 0, limit)
	for i, sentence := range sentences[:limit] {
		lines = append(lines, fmt.Sprintf("    %d. %s", i+1, truncateLine(sentence, maxSentenceChars)))
	}
	return lines
}

func joinOr(items []string, limit int, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	if limit > len(items) {
		limit = len(items)
	}
	return strings.Join(items[:limit], ", ")
}

func truncateLine(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
