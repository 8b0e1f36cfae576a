// Package pipeline runs the end-to-end video analysis: resolve, fetch,
// analyze, persist.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pinereel/pinereel/internal/analysis"
	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/service"
	"github.com/pinereel/pinereel/internal/status"
	"github.com/pinereel/pinereel/internal/youtube"
)

const transcriptPreviewChars = 500

// Analyzer orchestrates one analysis run.
type Analyzer struct {
	metadata    service.MetadataProvider
	transcripts service.TranscriptProvider
	history     service.Storage
	reporter    *status.Reporter
	analysisDir string
	now         func() time.Time
}

// NewAnalyzer assembles the pipeline. history may be nil to skip run
// recording (used by tests and by runs with no database configured).
func NewAnalyzer(metadata service.MetadataProvider, transcripts service.TranscriptProvider, history service.Storage, reporter *status.Reporter, analysisDir string) *Analyzer {
	return &Analyzer{
		metadata:    metadata,
		transcripts: transcripts,
		history:     history,
		reporter:    reporter,
		analysisDir: analysisDir,
		now:         time.Now,
	}
}

// Analyze runs the full pipeline for a video URL. A failed run returns a
// failure report along with the error; the report is always usable for
// JSON output.
func (a *Analyzer) Analyze(ctx context.Context, url string) (model.AnalysisReport, error) {
	a.reporter.Set("Starting analysis...")

	videoID := youtube.ExtractVideoID(url)
	if videoID == "" {
		err := fmt.Errorf("could not extract a video id from %q", url)
		return model.FailureReport("", "Invalid YouTube URL", nil), err
	}
	slog.Info("Starting video analysis", "video_id", videoID, "url", url)

	a.reporter.Set("Fetching metadata...")
	metadata, metaErr := a.metadata.Metadata(ctx, url)
	metadata.URL = url
	if metaErr != nil && metadata.Title == "Unknown" {
		msg := fmt.Sprintf("Could not access video: %v", metaErr)
		return model.FailureReport(videoID, msg, &metadata), metaErr
	}
	slog.Info("Fetched metadata", "title", metadata.Title, "author", metadata.Author)

	record, err := a.transcripts.Fetch(ctx, url, videoID)
	if err != nil {
		msg := fmt.Sprintf("Could not get transcript (%v). Try with --whisper.", err)
		return model.FailureReport(videoID, msg, &metadata), err
	}
	slog.Info("Transcript obtained", "chars", len(record.Text), "source", record.Source)

	a.reporter.Set("Analyzing trading concepts...")
	concepts := analysis.ExtractConcepts(record.Text)
	components := analysis.IdentifyComponents(record.Text)
	spec := analysis.BuildScriptSpec(concepts, components, metadata, record.Source)

	report := model.AnalysisReport{
		Success:           true,
		VideoID:           videoID,
		Metadata:          &metadata,
		Spec:              &spec,
		Concepts:          &concepts,
		Components:        &components,
		TranscriptLength:  len(record.Text),
		TranscriptPreview: preview(record.Text),
	}

	savedTo, err := a.saveReport(&report, videoID)
	if err != nil {
		return model.FailureReport(videoID, fmt.Sprintf("Could not save report: %v", err), &metadata), err
	}
	report.SavedTo = savedTo

	a.recordRun(ctx, &report)
	a.reporter.Set("Analysis complete!")
	return report, nil
}

// saveReport writes the report JSON under the analysis directory with a
// timestamped filename and returns the path.
func (a *Analyzer) saveReport(report *model.AnalysisReport, videoID string) (string, error) {
	if err := os.MkdirAll(a.analysisDir, 0o750); err != nil {
		return "", fmt.Errorf("create analysis dir: %w", err)
	}

	filename := fmt.Sprintf("analysis_%s_%s.json", videoID, a.now().Format("20060102_150405"))
	path := filepath.Join(a.analysisDir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// recordRun appends the run to the history store. History failures are
// logged, never fatal: the report on disk is the primary artifact.
func (a *Analyzer) recordRun(ctx context.Context, report *model.AnalysisReport) {
	if a.history == nil || report.Spec == nil {
		return
	}

	run := &model.Run{
		ID:               uuid.NewString(),
		VideoID:          report.VideoID,
		Title:            report.Spec.VideoInfo.Title,
		ScriptType:       report.Spec.ScriptType,
		ComplexityScore:  report.Spec.ComplexityScore,
		TranscriptSource: report.Spec.VideoInfo.TranscriptSource,
		ReportPath:       report.SavedTo,
	}
	if err := a.history.SaveRun(ctx, run); err != nil {
		slog.Warn("Could not record run in history", "video_id", report.VideoID, "error", err)
	}
}

func preview(text string) string {
	if len(text) <= transcriptPreviewChars {
		return text
	}
	return text[:transcriptPreviewChars] + "..."
}
