package youtube

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/pinereel/pinereel/internal/common"
)

// RunFunc executes an external command for its side effects.
type RunFunc func(ctx context.Context, name string, args ...string) error

// AudioDownloader extracts a video's audio track to mp3 via yt-dlp.
type AudioDownloader struct {
	binary  string
	runner  RunFunc
	spinner bool
}

// NewAudioDownloader creates a downloader using the default binary.
func NewAudioDownloader() *AudioDownloader {
	return &AudioDownloader{binary: YtDlpCommand, spinner: true}
}

// WithRunner sets a custom command runner (for testing).
func (d *AudioDownloader) WithRunner(runner RunFunc) *AudioDownloader {
	d.runner = runner
	d.spinner = false
	return d
}

// Download fetches the best audio stream for url into destDir and returns
// the path of the resulting mp3 file.
func (d *AudioDownloader) Download(ctx context.Context, url, destDir string) (string, error) {
	template := filepath.Join(destDir, "audio.%(ext)s")
	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", template,
		"--no-warnings",
		"--quiet",
		url,
	}

	if err := d.runWithSpinner(ctx, args); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".mp3") {
			return filepath.Join(destDir, entry.Name()), nil
		}
	}
	return "", common.ErrDownloadFailed
}

func (d *AudioDownloader) runWithSpinner(ctx context.Context, args []string) error {
	if !d.spinner {
		return d.run(ctx, d.binary, args...)
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Downloading audio"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(120 * time.Millisecond):
				_ = bar.Add(1)
			}
		}
	}()

	err := d.run(ctx, d.binary, args...)
	close(done)
	_ = bar.Finish()
	return err
}

func (d *AudioDownloader) run(ctx context.Context, name string, args ...string) error {
	if d.runner != nil {
		return d.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204
	if output, err := cmd.CombinedOutput(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
