package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/pinereel/pinereel/internal/model"
)

// YtDlpCommand is the downloader binary expected on PATH.
const YtDlpCommand = "yt-dlp"

const maxDescriptionChars = 1000

// CommandRunner executes an external command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// MetadataClient fetches video metadata via yt-dlp.
type MetadataClient struct {
	binary string
	runner CommandRunner
}

// NewMetadataClient creates a metadata client using the default binary.
func NewMetadataClient() *MetadataClient {
	return &MetadataClient{binary: YtDlpCommand}
}

// WithRunner sets a custom command runner (for testing).
func (c *MetadataClient) WithRunner(runner CommandRunner) *MetadataClient {
	c.runner = runner
	return c
}

// infoJSON mirrors the subset of yt-dlp's --dump-single-json output we need.
type infoJSON struct {
	Title          string `json:"title"`
	Uploader       string `json:"uploader"`
	UploaderURL    string `json:"uploader_url"`
	Duration       int64  `json:"duration"`
	DurationString string `json:"duration_string"`
	Description    string `json:"description"`
	UploadDate     string `json:"upload_date"`
	ViewCount      int64  `json:"view_count"`
	LikeCount      int64  `json:"like_count"`
	Thumbnail      string `json:"thumbnail"`
}

// Metadata fetches metadata for the given URL. A failure degrades to
// placeholder metadata carrying the error; callers decide whether to abort.
func (c *MetadataClient) Metadata(ctx context.Context, url string) (model.VideoMetadata, error) {
	out, err := c.run(ctx, c.binary, "-J", "--no-warnings", "--skip-download", url)
	if err != nil {
		slog.Warn("Could not fetch metadata", "url", url, "error", err)
		return model.UnknownMetadata(url, err), err
	}

	var info infoJSON
	if err := json.Unmarshal(out, &info); err != nil {
		err = fmt.Errorf("parse yt-dlp output: %w", err)
		slog.Warn("Could not parse metadata", "url", url, "error", err)
		return model.UnknownMetadata(url, err), err
	}

	meta := model.VideoMetadata{
		Title:          orUnknown(info.Title),
		Author:         orUnknown(info.Uploader),
		ChannelURL:     info.UploaderURL,
		Duration:       info.Duration,
		DurationString: orUnknown(info.DurationString),
		Description:    truncate(info.Description, maxDescriptionChars),
		UploadDate:     orUnknown(info.UploadDate),
		ViewCount:      info.ViewCount,
		LikeCount:      info.LikeCount,
		Thumbnail:      info.Thumbnail,
		URL:            url,
	}
	return meta, nil
}

func (c *MetadataClient) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if c.runner != nil {
		return c.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
