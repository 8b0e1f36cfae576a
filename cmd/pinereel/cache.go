package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinereel/pinereel/internal/cli"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the transcript cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			cache, err := initCache()
			if err != nil {
				return err
			}
			fmt.Println(cache.Dir())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached transcripts",
		RunE: func(_ *cobra.Command, _ []string) error {
			cache, err := initCache()
			if err != nil {
				return err
			}
			removed, err := cache.Clear()
			if err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %d cached transcript(s)", removed)))
			return nil
		},
	})

	return cmd
}
