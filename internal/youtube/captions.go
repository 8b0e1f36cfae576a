package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pinereel/pinereel/internal/common"
	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/service"
)

const defaultInnertubeBase = "https://www.youtube.com"

// The ANDROID client gets caption tracks without requiring a signature.
const (
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
)

var englishCodes = map[string]bool{
	"en":    true,
	"en-US": true,
	"en-GB": true,
}

// CaptionTrack describes one caption track advertised by the player API.
type CaptionTrack struct {
	BaseURL      string
	LanguageCode string
	Generated    bool
}

// CaptionClient lists and fetches YouTube caption tracks.
type CaptionClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewCaptionClient creates a caption client with a polite request rate.
func NewCaptionClient() *CaptionClient {
	return &CaptionClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
		baseURL:    defaultInnertubeBase,
	}
}

// WithBaseURL overrides the innertube endpoint (for testing).
func (c *CaptionClient) WithBaseURL(base string) *CaptionClient {
	c.baseURL = base
	return c
}

// Transcript fetches the best available English caption track for a video,
// preferring manual captions over auto-generated ones.
func (c *CaptionClient) Transcript(ctx context.Context, videoID string) (model.TranscriptRecord, error) {
	var record model.TranscriptRecord

	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return record, err
	}

	track, source := pickTrack(tracks)
	if track == nil {
		return record, common.ErrNoCaptions
	}

	switch source {
	case model.SourceManualCaptions:
		slog.Info("Found manual English captions", "video_id", videoID)
	case model.SourceAutoCaptions:
		slog.Info("Found auto-generated English captions", "video_id", videoID)
	default:
		slog.Info("Found English captions", "video_id", videoID, "language", track.LanguageCode)
	}

	text, err := c.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return record, fmt.Errorf("fetch caption track: %w", err)
	}

	record.Text = text
	record.Source = source
	return record, nil
}

// pickTrack applies the preference order: manual English, auto-generated
// English, then any English variant.
func pickTrack(tracks []CaptionTrack) (*CaptionTrack, string) {
	for i := range tracks {
		if englishCodes[tracks[i].LanguageCode] && !tracks[i].Generated {
			return &tracks[i], model.SourceManualCaptions
		}
	}
	for i := range tracks {
		if englishCodes[tracks[i].LanguageCode] && tracks[i].Generated {
			return &tracks[i], model.SourceAutoCaptions
		}
	}
	for i := range tracks {
		if strings.HasPrefix(tracks[i].LanguageCode, "en") {
			return &tracks[i], model.SourceEnglishCaptions
		}
	}
	return nil, ""
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// ListTracks queries the innertube player endpoint for available caption
// tracks. Errors map to the tagged sentinels in internal/common.
func (c *CaptionClient) ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	body, err := json.Marshal(map[string]any{
		"videoId": videoID,
		"context": map[string]any{
			"client": map[string]any{
				"clientName":        innertubeClientName,
				"clientVersion":     innertubeClientVersion,
				"androidSdkVersion": 30,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal player request: %w", err)
	}

	url := c.baseURL + "/youtubei/v1/player"

	var raw []byte
	err = common.WithRetry(ctx, func() error {
		var reqErr error
		raw, reqErr = c.post(ctx, url, body)
		return reqErr
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})
	if err != nil {
		return nil, err
	}

	var resp playerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse player response: %w", err)
	}

	switch resp.PlayabilityStatus.Status {
	case "ERROR", "LOGIN_REQUIRED":
		return nil, fmt.Errorf("%w: %s", common.ErrVideoUnavailable, resp.PlayabilityStatus.Reason)
	}

	rendered := resp.Captions.Renderer.CaptionTracks
	if len(rendered) == 0 {
		// The player omits the captions block entirely when the uploader
		// disabled them.
		return nil, common.ErrCaptionsDisabled
	}

	tracks := make([]CaptionTrack, 0, len(rendered))
	for _, t := range rendered {
		tracks = append(tracks, CaptionTrack{
			BaseURL:      t.BaseURL,
			LanguageCode: t.LanguageCode,
			Generated:    t.Kind == "asr",
		})
	}
	return tracks, nil
}

// json3 caption payload: a flat list of timed events with text segments.
type json3Response struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func (c *CaptionClient) fetchTrack(ctx context.Context, trackURL string) (string, error) {
	sep := "?"
	if strings.Contains(trackURL, "?") {
		sep = "&"
	}

	var raw []byte
	err := common.WithRetry(ctx, func() error {
		var reqErr error
		raw, reqErr = c.get(ctx, trackURL+sep+"fmt=json3")
		return reqErr
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})
	if err != nil {
		return "", err
	}

	var resp json3Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("parse caption payload: %w", err)
	}

	var parts []string
	for _, event := range resp.Events {
		for _, seg := range event.Segs {
			if s := strings.TrimSpace(seg.UTF8); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if len(parts) == 0 {
		return "", common.ErrNoTranscript
	}
	return strings.Join(parts, " "), nil
}

func (c *CaptionClient) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *CaptionClient) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *CaptionClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &common.RetryableError{Err: err, Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host),
			Retryable: retryable,
		}
	}

	return io.ReadAll(resp.Body)
}
