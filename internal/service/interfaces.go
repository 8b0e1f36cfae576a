// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pinereel/pinereel/internal/model"
)

// RunFilter defines filtering options for history queries.
type RunFilter struct {
	VideoID string
	Limit   int
	Offset  int
}

// Storage defines the contract for the analysis-history persistence layer.
type Storage interface {
	SaveRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}

// TranscriptProvider fetches a transcript for a video by any available means.
type TranscriptProvider interface {
	Fetch(ctx context.Context, url, videoID string) (model.TranscriptRecord, error)
}

// MetadataProvider resolves video metadata for a URL.
type MetadataProvider interface {
	Metadata(ctx context.Context, url string) (model.VideoMetadata, error)
}

// ReportExporter pushes a finished report to an external destination.
type ReportExporter interface {
	Export(ctx context.Context, report *model.AnalysisReport) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
