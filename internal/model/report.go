package model

import "time"

// Mention is a matched keyword and how often it occurred in the transcript.
type Mention struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ValueGroup collects numeric values of one kind extracted from the
// transcript, such as MA lengths or percentage thresholds.
type ValueGroup struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// ConceptFindings maps each keyword category to its ranked mentions plus
// any free-form numeric extractions.
type ConceptFindings struct {
	Indicators     []Mention    `json:"indicators"`
	Patterns       []Mention    `json:"patterns"`
	Strategies     []Mention    `json:"strategies"`
	Conditions     []Mention    `json:"conditions"`
	Timeframes     []Mention    `json:"timeframes"`
	SpecificValues []ValueGroup `json:"specific_values"`
}

// StrategyComponents holds raw transcript sentences bucketed by the kind of
// trading logic they describe.
type StrategyComponents struct {
	EntryConditions []string `json:"entry_conditions"`
	ExitConditions  []string `json:"exit_conditions"`
	RiskManagement  []string `json:"risk_management"`
	KeyRules        []string `json:"key_rules"`
}

// Script types derived from the detected components.
const (
	ScriptTypeIndicator = "indicator"
	ScriptTypeStrategy  = "strategy"
)

// Feasibility flags whether the detected concepts translate cleanly to a
// Pine Script implementation.
type Feasibility struct {
	Overall    string   `json:"overall"`
	Issues     []string `json:"issues"`
	Compatible bool     `json:"pine_script_compatible"`
}

// VideoInfo is the report-facing slice of video metadata.
type VideoInfo struct {
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Duration         string    `json:"duration"`
	URL              string    `json:"url"`
	TranscriptSource string    `json:"transcript_source"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// Implementation groups the sentences that would drive script logic.
type Implementation struct {
	EntryLogic []string `json:"entry_logic"`
	ExitLogic  []string `json:"exit_logic"`
	RiskRules  []string `json:"risk_rules"`
	KeyRules   []string `json:"key_rules"`
}

// ScriptSpec is the derived specification for a Pine Script implementation.
type ScriptSpec struct {
	VideoInfo         VideoInfo      `json:"video_info"`
	ScriptType        string         `json:"script_type"`
	StrategyStyle     string         `json:"strategy_style"`
	MainIndicators    []string       `json:"main_indicators"`
	Patterns          []string       `json:"patterns"`
	Timeframes        []string       `json:"timeframes"`
	Implementation    Implementation `json:"implementation"`
	Parameters        []ValueGroup   `json:"parameters"`
	Feasibility       Feasibility    `json:"feasibility"`
	SuggestedFeatures []string       `json:"suggested_features"`
	ComplexityScore   int            `json:"complexity_score"`
}

// AnalysisReport aggregates everything a single run produced. It is the
// record persisted to disk and (optionally) exported.
type AnalysisReport struct {
	Success           bool               `json:"success"`
	VideoID           string             `json:"video_id,omitempty"`
	Error             string             `json:"error,omitempty"`
	Metadata          *VideoMetadata     `json:"metadata,omitempty"`
	Spec              *ScriptSpec        `json:"spec,omitempty"`
	Concepts          *ConceptFindings   `json:"concepts,omitempty"`
	Components        *StrategyComponents `json:"components,omitempty"`
	TranscriptLength  int                `json:"transcript_length,omitempty"`
	TranscriptPreview string             `json:"transcript_preview,omitempty"`
	SavedTo           string             `json:"saved_to,omitempty"`
}

// FailureReport builds the report emitted when the pipeline cannot finish.
func FailureReport(videoID, message string, metadata *VideoMetadata) AnalysisReport {
	return AnalysisReport{
		Success:  false,
		VideoID:  videoID,
		Error:    message,
		Metadata: metadata,
	}
}

// Run is one row of the persistent analysis history.
type Run struct {
	CreatedAt        time.Time `json:"created_at"`
	ID               string    `json:"id"`
	VideoID          string    `json:"video_id"`
	Title            string    `json:"title"`
	ScriptType       string    `json:"script_type"`
	TranscriptSource string    `json:"transcript_source"`
	ReportPath       string    `json:"report_path"`
	ComplexityScore  int       `json:"complexity_score"`
}
