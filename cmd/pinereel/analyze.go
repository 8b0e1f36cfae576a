package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinereel/pinereel/internal/analysis"
	"github.com/pinereel/pinereel/internal/cli"
	"github.com/pinereel/pinereel/internal/pipeline"
	"github.com/pinereel/pinereel/internal/sheets"
	"github.com/pinereel/pinereel/internal/transcript"
	"github.com/pinereel/pinereel/internal/whisper"
	"github.com/pinereel/pinereel/internal/youtube"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze a YouTube trading video",
		Long: `Download a video's transcript, scan it for trading concepts, and produce
a structured report for Pine Script development.

Captions are used when available; pass --whisper to force local
speech-to-text over the downloaded audio instead.

Examples:
  # Analyze using captions when available
  pinereel analyze https://youtube.com/watch?v=ABC123

  # Force whisper transcription with a larger model
  pinereel analyze https://youtu.be/ABC123 --whisper --model medium

  # Machine-readable output
  pinereel analyze https://youtu.be/ABC123 --json

  # Re-fetch even when a cached transcript exists
  pinereel analyze https://youtu.be/ABC123 --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("whisper", false, "Force whisper transcription (slower but works for any video)")
	cmd.Flags().String("model", whisper.DefaultModel, "Whisper model size (tiny, base, small, medium, large)")
	cmd.Flags().Bool("json", false, "Output raw JSON instead of the formatted summary")
	cmd.Flags().Bool("refresh", false, "Ignore any cached transcript")
	cmd.Flags().Bool("sheets", false, "Also append the report to the configured Google Sheet")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	url := args[0]

	forceWhisper, _ := cmd.Flags().GetBool("whisper")
	modelSize, _ := cmd.Flags().GetString("model")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	refresh, _ := cmd.Flags().GetBool("refresh")
	exportSheets, _ := cmd.Flags().GetBool("sheets")

	if !whisper.ValidModel(modelSize) {
		return fmt.Errorf("invalid model: %s (valid options: tiny, base, small, medium, large)", modelSize)
	}

	cache, err := initCache()
	if err != nil {
		return fmt.Errorf("failed to open transcript cache: %w", err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	defer func() { _ = store.Close() }()

	reporter := statusReporter()
	defer reporter.Clear()

	var opts []transcript.FetcherOption
	if forceWhisper {
		opts = append(opts, transcript.WithForceWhisper())
	}
	if refresh {
		opts = append(opts, transcript.WithRefresh())
	}

	fetcher := transcript.NewFetcher(
		youtube.NewCaptionClient(),
		youtube.NewAudioDownloader(),
		whisper.NewService(modelSize),
		cache,
		reporter,
		opts...,
	)

	analyzer := pipeline.NewAnalyzer(youtube.NewMetadataClient(), fetcher, store, reporter, analysisDir())
	report, runErr := analyzer.Analyze(ctx, url)

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		if runErr != nil {
			// Non-zero exit with the failure already serialized above.
			os.Exit(1)
		}
		return nil
	}

	if runErr != nil {
		fmt.Println(cli.FormatError(report.Error))
		return runErr
	}

	fmt.Println(analysis.NewCLIFormatter().FormatSummary(&report))
	fmt.Println()
	fmt.Println(cli.FormatInfo(fmt.Sprintf("Full analysis saved to: %s", report.SavedTo)))

	if exportSheets {
		writer, err := sheets.NewWriter(ctx, sheetsConfig())
		if err != nil {
			return fmt.Errorf("failed to set up sheets export: %w", err)
		}
		if err := writer.Export(ctx, &report); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		fmt.Println(cli.FormatSuccess("Report exported to Google Sheets"))
	}

	slog.Debug("Analysis finished", "video_id", report.VideoID, "saved_to", report.SavedTo)
	return nil
}
