package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinereel/pinereel/internal/cli"
	"github.com/pinereel/pinereel/internal/service"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous analysis runs",
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	cmd.Flags().String("video", "", "Only show runs for this video id")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	videoID, _ := cmd.Flags().GetString("video")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(ctx, service.RunFilter{VideoID: videoID, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println(cli.FormatInfo("No analysis runs recorded yet"))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Analysis History", cli.ChartIcon)))
	for _, run := range runs {
		fmt.Printf("%s  %-11s  %-9s  %2d/10  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.VideoID,
			run.ScriptType,
			run.ComplexityScore,
			run.Title)
		fmt.Println(cli.SubtleStyle.Render("    " + run.ReportPath))
	}
	return nil
}
