package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinereel/pinereel/internal/cli"
	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/sheets"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <report.json>",
		Short: "Append a saved analysis report to the configured Google Sheet",
		Long: `Export a previously saved report to Google Sheets.

Requires sheets.spreadsheet_id plus either OAuth2 credentials
(sheets.client_id, sheets.client_secret, sheets.token_file) or a service
account (sheets.service_account_path) in the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0]) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	var report model.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}
	if !report.Success || report.Spec == nil {
		return fmt.Errorf("report %s does not contain a successful analysis", args[0])
	}
	if report.SavedTo == "" {
		report.SavedTo = args[0]
	}

	writer, err := sheets.NewWriter(ctx, sheetsConfig())
	if err != nil {
		return fmt.Errorf("failed to set up sheets export: %w", err)
	}
	if err := writer.Export(ctx, &report); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Report exported to Google Sheets"))
	return nil
}
