package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pinereel/pinereel/internal/config"
	"github.com/pinereel/pinereel/internal/service"
	"github.com/pinereel/pinereel/internal/sheets"
	"github.com/pinereel/pinereel/internal/status"
	"github.com/pinereel/pinereel/internal/storage"
	"github.com/pinereel/pinereel/internal/transcript"
)

// initStorage initializes the run-history store with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "~/.local/share/pinereel/pinereel.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initCache opens the transcript cache at the configured directory.
func initCache() (*transcript.Cache, error) {
	dir := viper.GetString("cache.dir")
	if dir == "" {
		dir = "~/.cache/pinereel"
	}
	return transcript.NewCache(config.ExpandPath(dir))
}

// analysisDir returns the directory reports are written to.
func analysisDir() string {
	dir := viper.GetString("analysis.dir")
	if dir == "" {
		dir = "~/.local/share/pinereel/analysis"
	}
	return config.ExpandPath(dir)
}

// statusReporter builds the best-effort status file reporter.
func statusReporter() *status.Reporter {
	path := viper.GetString("status.file")
	if path == "" {
		path = "~/.local/share/pinereel/status"
	}
	return status.NewReporter(config.ExpandPath(path))
}

// sheetsConfig assembles the Sheets exporter configuration from viper.
func sheetsConfig() sheets.Config {
	cfg := sheets.DefaultConfig()
	cfg.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	if name := viper.GetString("sheets.sheet_name"); name != "" {
		cfg.SheetName = name
	}
	cfg.ClientID = viper.GetString("sheets.client_id")
	cfg.ClientSecret = viper.GetString("sheets.client_secret")
	cfg.TokenFile = config.ExpandPath(viper.GetString("sheets.token_file"))
	cfg.ServiceAccountPath = config.ExpandPath(viper.GetString("sheets.service_account_path"))
	return cfg
}
