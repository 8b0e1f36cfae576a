// Package whisper wraps the OpenAI Whisper CLI for local speech-to-text.
package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Command is the transcriber binary expected on PATH.
const Command = "whisper"

// DefaultModel balances speed and accuracy for typical trading videos.
const DefaultModel = "base"

// ValidModels are the model sizes the CLI accepts.
var ValidModels = []string{"tiny", "base", "small", "medium", "large"}

// ValidModel reports whether name is an accepted model size.
func ValidModel(name string) bool {
	for _, m := range ValidModels {
		if m == name {
			return true
		}
	}
	return false
}

// Service transcribes audio files with the whisper CLI.
type Service struct {
	binary  string
	model   string
	runner  func(ctx context.Context, name string, args ...string) error
	spinner bool
}

// NewService creates a whisper service for the given model size.
func NewService(model string) *Service {
	if model == "" {
		model = DefaultModel
	}
	return &Service{binary: Command, model: model, spinner: true}
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.model
}

// WithRunner sets a custom command runner (for testing).
func (s *Service) WithRunner(runner func(ctx context.Context, name string, args ...string) error) *Service {
	s.runner = runner
	s.spinner = false
	return s
}

type whisperOutput struct {
	Text string `json:"text"`
}

// TranscribeFile transcribes an audio file and returns the plain text.
// Whisper writes its JSON output next to outputDir using the audio file's
// base name.
func (s *Service) TranscribeFile(ctx context.Context, audioPath, outputDir string) (string, error) {
	if audioPath == "" {
		return "", fmt.Errorf("transcribe: audio path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(audioPath)
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return "", fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	args := []string{
		audioPath,
		"--model", s.model,
		"--output_format", "json",
		"--output_dir", outputDir,
		"--fp16", "False",
	}

	if err := s.runWithSpinner(ctx, args); err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outputDir, base+".json")

	data, err := os.ReadFile(jsonPath) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("transcribe: read output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("transcribe: parse output: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("transcribe: empty transcription")
	}
	return text, nil
}

func (s *Service) runWithSpinner(ctx context.Context, args []string) error {
	if !s.spinner {
		return s.run(ctx, s.binary, args...)
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Transcribing with whisper (%s)", s.model)),
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

	err := s.run(ctx, s.binary, args...)
	close(done)
	_ = bar.Finish()
	return err
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.runner != nil {
		return s.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
