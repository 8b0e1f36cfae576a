package transcript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinereel/pinereel/internal/common"
	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/status"
)

type fakeCaptions struct {
	record model.TranscriptRecord
	err    error
	calls  int
}

func (f *fakeCaptions) Transcript(_ context.Context, _ string) (model.TranscriptRecord, error) {
	f.calls++
	return f.record, f.err
}

type fakeAudio struct {
	err   error
	calls int
}

func (f *fakeAudio) Download(_ context.Context, _, destDir string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	path := filepath.Join(destDir, "audio.mp3")
	if err := os.WriteFile(path, []byte("mp3"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) TranscribeFile(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestFetcher(t *testing.T, captions *fakeCaptions, audio *fakeAudio, tr *fakeTranscriber, opts ...FetcherOption) (*Fetcher, *Cache) {
	t.Helper()
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)
	reporter := status.NewReporter("")
	return NewFetcher(captions, audio, tr, cache, reporter, opts...), cache
}

func TestFetcher_CaptionsPreferred(t *testing.T) {
	captions := &fakeCaptions{record: model.TranscriptRecord{
		Text:   "[Music] buy when RSI crosses",
		Source: model.SourceManualCaptions,
	}}
	audio := &fakeAudio{}
	tr := &fakeTranscriber{}

	fetcher, cache := newTestFetcher(t, captions, audio, tr)

	record, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)

	assert.Equal(t, "buy when RSI crosses", record.Text)
	assert.Equal(t, model.SourceManualCaptions, record.Source)
	assert.Equal(t, 0, audio.calls)
	assert.Equal(t, 0, tr.calls)

	// Fetch must have populated the cache.
	cached, ok := cache.Get("abc")
	require.True(t, ok)
	assert.Equal(t, record, cached)
}

func TestFetcher_CacheHitShortCircuitsNetwork(t *testing.T) {
	captions := &fakeCaptions{record: model.TranscriptRecord{
		Text:   "buy when RSI crosses",
		Source: model.SourceAutoCaptions,
	}}
	fetcher, _ := newTestFetcher(t, captions, &fakeAudio{}, &fakeTranscriber{})

	first, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, captions.calls)
	assert.Equal(t, model.SourceAutoCaptions, first.Source)

	second, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, captions.calls, "second fetch must not hit the network")
	assert.Equal(t, model.SourceAutoCaptions+model.CachedSuffix, second.Source)
	assert.Equal(t, first.Text, second.Text)
}

func TestFetcher_RefreshBypassesCache(t *testing.T) {
	captions := &fakeCaptions{record: model.TranscriptRecord{
		Text:   "fresh text",
		Source: model.SourceManualCaptions,
	}}
	fetcher, cache := newTestFetcher(t, captions, &fakeAudio{}, &fakeTranscriber{}, WithRefresh())

	require.NoError(t, cache.Put("abc", model.TranscriptRecord{Text: "stale", Source: model.SourceWhisper}))

	record, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, "fresh text", record.Text)
	assert.Equal(t, 1, captions.calls)
}

func TestFetcher_FallsBackToWhisper(t *testing.T) {
	captions := &fakeCaptions{err: common.ErrCaptionsDisabled}
	audio := &fakeAudio{}
	tr := &fakeTranscriber{text: "whisper transcription [Music] output"}

	fetcher, cache := newTestFetcher(t, captions, audio, tr)

	record, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)

	assert.Equal(t, model.SourceWhisper, record.Source)
	assert.Equal(t, "whisper transcription output", record.Text)
	assert.Equal(t, 1, audio.calls)
	assert.Equal(t, 1, tr.calls)

	cached, ok := cache.Get("abc")
	require.True(t, ok)
	assert.Equal(t, model.SourceWhisper, cached.Source)
}

func TestFetcher_ForceWhisperSkipsCaptions(t *testing.T) {
	captions := &fakeCaptions{record: model.TranscriptRecord{Text: "captions", Source: model.SourceManualCaptions}}
	tr := &fakeTranscriber{text: "whisper output"}

	fetcher, _ := newTestFetcher(t, captions, &fakeAudio{}, tr, WithForceWhisper())

	record, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, 0, captions.calls)
	assert.Equal(t, model.SourceWhisper, record.Source)
}

func TestFetcher_DownloadFailure(t *testing.T) {
	captions := &fakeCaptions{err: common.ErrNoCaptions}
	audio := &fakeAudio{err: common.ErrDownloadFailed}

	fetcher, _ := newTestFetcher(t, captions, audio, &fakeTranscriber{})

	_, err := fetcher.Fetch(context.Background(), "https://youtu.be/abc", "abc")
	assert.ErrorIs(t, err, common.ErrDownloadFailed)
}
