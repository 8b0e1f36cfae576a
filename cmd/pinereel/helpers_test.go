package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetsConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("sheets.spreadsheet_id", "sheet-id")
	viper.Set("sheets.sheet_name", "Runs")
	viper.Set("sheets.service_account_path", "/tmp/sa.json")

	cfg := sheetsConfig()

	assert.Equal(t, "sheet-id", cfg.SpreadsheetID)
	assert.Equal(t, "Runs", cfg.SheetName)
	assert.Equal(t, "/tmp/sa.json", cfg.ServiceAccountPath)
	require.NoError(t, cfg.Validate())
}

func TestSheetsConfig_DefaultSheetName(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("sheets.spreadsheet_id", "sheet-id")

	cfg := sheetsConfig()
	assert.Equal(t, "Video Analyses", cfg.SheetName)
}

func TestAnalysisDir_Default(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := analysisDir()
	assert.NotEmpty(t, dir)
	assert.NotContains(t, dir, "~", "path must be expanded")
}

func TestAnalysisDir_Configured(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("analysis.dir", "/data/analyses")
	assert.Equal(t, "/data/analyses", analysisDir())
}
