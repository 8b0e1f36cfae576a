package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/pinereel/pinereel/internal/model"
)

// Writer appends analysis reports to a spreadsheet, one row per run.
type Writer struct {
	config  Config
	service *sheets.Service
}

// NewWriter creates an authenticated sheets writer.
func NewWriter(ctx context.Context, config Config) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheets config: %w", err)
	}

	client, err := config.httpClient(ctx)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{config: config, service: service}, nil
}

// headerRow is written once when the target sheet is empty.
var headerRow = []any{
	"Analyzed At", "Video ID", "Title", "Author", "Script Type",
	"Complexity", "Strategy Style", "Indicators", "Transcript Source", "Report Path",
}

// Export appends one report row, creating the header when needed.
func (w *Writer) Export(ctx context.Context, report *model.AnalysisReport) error {
	if report == nil || report.Spec == nil {
		return fmt.Errorf("report has no specification to export")
	}

	readRange := w.config.SheetName + "!A1:A1"
	existing, err := w.service.Spreadsheets.Values.Get(w.config.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", w.config.SheetName, err)
	}

	var rows [][]any
	if len(existing.Values) == 0 {
		rows = append(rows, headerRow)
	}
	rows = append(rows, reportRow(report))

	appendRange := w.config.SheetName + "!A1"
	_, err = w.service.Spreadsheets.Values.Append(w.config.SpreadsheetID, appendRange, &sheets.ValueRange{
		Values: rows,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append report row: %w", err)
	}

	slog.Info("Exported report to Google Sheets",
		"spreadsheet_id", w.config.SpreadsheetID,
		"sheet", w.config.SheetName,
		"video_id", report.VideoID)
	return nil
}

func reportRow(report *model.AnalysisReport) []any {
	spec := report.Spec
	return []any{
		spec.VideoInfo.AnalyzedAt.Format(time.RFC3339),
		report.VideoID,
		spec.VideoInfo.Title,
		spec.VideoInfo.Author,
		spec.ScriptType,
		spec.ComplexityScore,
		spec.StrategyStyle,
		strings.Join(spec.MainIndicators, ", "),
		spec.VideoInfo.TranscriptSource,
		report.SavedTo,
	}
}
