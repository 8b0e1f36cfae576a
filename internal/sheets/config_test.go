package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinereel/pinereel/internal/model"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid oauth config",
			config: Config{
				ClientID:      "id",
				ClientSecret:  "secret",
				TokenFile:     "/tmp/token.json",
				SpreadsheetID: "sheet-id",
			},
		},
		{
			name: "valid service account config",
			config: Config{
				ServiceAccountPath: "/tmp/sa.json",
				SpreadsheetID:      "sheet-id",
			},
		},
		{
			name:    "no auth configured",
			config:  Config{SpreadsheetID: "sheet-id"},
			wantErr: "no authentication method",
		},
		{
			name: "both auth methods configured",
			config: Config{
				ClientID:           "id",
				ClientSecret:       "secret",
				TokenFile:          "/tmp/token.json",
				ServiceAccountPath: "/tmp/sa.json",
				SpreadsheetID:      "sheet-id",
			},
			wantErr: "multiple authentication methods",
		},
		{
			name: "missing spreadsheet id",
			config: Config{
				ServiceAccountPath: "/tmp/sa.json",
			},
			wantErr: "spreadsheet id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_DefaultsSheetName(t *testing.T) {
	config := Config{
		ServiceAccountPath: "/tmp/sa.json",
		SpreadsheetID:      "sheet-id",
	}
	require.NoError(t, config.Validate())
	assert.Equal(t, "Video Analyses", config.SheetName)
}

func TestReportRow(t *testing.T) {
	report := &model.AnalysisReport{
		Success: true,
		VideoID: "abc123",
		SavedTo: "/tmp/analysis_abc123.json",
		Spec: &model.ScriptSpec{
			VideoInfo: model.VideoInfo{
				Title:            "RSI Strategy",
				Author:           "TradeLab",
				TranscriptSource: model.SourceManualCaptions,
				AnalyzedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			},
			ScriptType:      model.ScriptTypeStrategy,
			ComplexityScore: 7,
			StrategyStyle:   "swing trading",
			MainIndicators:  []string{"rsi", "ema"},
		},
	}

	row := reportRow(report)
	require.Len(t, row, len(headerRow))

	assert.Equal(t, "abc123", row[1])
	assert.Equal(t, "RSI Strategy", row[2])
	assert.Equal(t, "strategy", row[4])
	assert.Equal(t, 7, row[5])
	assert.Equal(t, "rsi, ema", row[7])
}
