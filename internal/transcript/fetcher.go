package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/status"
)

// CaptionSource fetches a caption transcript for a video identifier.
type CaptionSource interface {
	Transcript(ctx context.Context, videoID string) (model.TranscriptRecord, error)
}

// AudioSource downloads a video's audio track for transcription.
type AudioSource interface {
	Download(ctx context.Context, url, destDir string) (string, error)
}

// Transcriber converts an audio file to text.
type Transcriber interface {
	TranscribeFile(ctx context.Context, audioPath, outputDir string) (string, error)
}

// Fetcher resolves transcripts through the acquisition chain: cache, then
// YouTube captions, then speech-to-text over downloaded audio.
type Fetcher struct {
	captions     CaptionSource
	audio        AudioSource
	transcriber  Transcriber
	cache        *Cache
	reporter     *status.Reporter
	forceWhisper bool
	refresh      bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithForceWhisper skips caption fetching entirely.
func WithForceWhisper() FetcherOption {
	return func(f *Fetcher) { f.forceWhisper = true }
}

// WithRefresh ignores any cached transcript.
func WithRefresh() FetcherOption {
	return func(f *Fetcher) { f.refresh = true }
}

// NewFetcher assembles a transcript fetcher.
func NewFetcher(captions CaptionSource, audio AudioSource, transcriber Transcriber, cache *Cache, reporter *status.Reporter, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		captions:    captions,
		audio:       audio,
		transcriber: transcriber,
		cache:       cache,
		reporter:    reporter,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the transcript for the given video, consulting the cache
// first. Successful fetches are cached before returning.
func (f *Fetcher) Fetch(ctx context.Context, url, videoID string) (model.TranscriptRecord, error) {
	if !f.refresh {
		if record, ok := f.cache.Get(videoID); ok {
			slog.Info("Using cached transcript", "video_id", videoID, "source", record.Source)
			record.Source += model.CachedSuffix
			return record, nil
		}
	}

	if !f.forceWhisper {
		f.reporter.Set("Fetching captions...")
		record, err := f.captions.Transcript(ctx, videoID)
		if err == nil {
			record.Text = Clean(record.Text)
			f.store(videoID, record)
			return record, nil
		}
		if ctx.Err() != nil {
			return model.TranscriptRecord{}, ctx.Err()
		}
		slog.Warn("Caption fetch failed, falling back to whisper", "video_id", videoID, "error", err)
	}

	record, err := f.fromWhisper(ctx, url)
	if err != nil {
		return model.TranscriptRecord{}, err
	}
	f.store(videoID, record)
	return record, nil
}

func (f *Fetcher) fromWhisper(ctx context.Context, url string) (model.TranscriptRecord, error) {
	var record model.TranscriptRecord

	tempDir, err := os.MkdirTemp("", "pinereel-audio-*")
	if err != nil {
		return record, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	f.reporter.Set("Downloading audio...")
	audioPath, err := f.audio.Download(ctx, url, tempDir)
	if err != nil {
		return record, err
	}

	f.reporter.Set("Transcribing with whisper...")
	text, err := f.transcriber.TranscribeFile(ctx, audioPath, tempDir)
	if err != nil {
		return record, err
	}

	record.Text = Clean(text)
	record.Source = model.SourceWhisper
	return record, nil
}

func (f *Fetcher) store(videoID string, record model.TranscriptRecord) {
	if err := f.cache.Put(videoID, record); err != nil {
		slog.Warn("Could not cache transcript", "video_id", videoID, "error", err)
	}
}
