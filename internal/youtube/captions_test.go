package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinereel/pinereel/internal/common"
	"github.com/pinereel/pinereel/internal/model"
)

// newCaptionServer serves a player response listing the given tracks and a
// json3 payload for any /track request.
func newCaptionServer(t *testing.T, tracks []map[string]string, segments []string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["videoId"])

		for _, track := range tracks {
			track["baseUrl"] = server.URL + "/track?lang=" + track["languageCode"]
		}
		resp := map[string]any{
			"playabilityStatus": map[string]any{"status": "OK"},
			"captions": map[string]any{
				"playerCaptionsTracklistRenderer": map[string]any{
					"captionTracks": tracks,
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	mux.HandleFunc("/track", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json3", r.URL.Query().Get("fmt"))
		events := make([]map[string]any, 0, len(segments))
		for _, seg := range segments {
			events = append(events, map[string]any{
				"segs": []map[string]string{{"utf8": seg}},
			})
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"events": events}))
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCaptionClient_Transcript_PrefersManualCaptions(t *testing.T) {
	server := newCaptionServer(t, []map[string]string{
		{"languageCode": "en", "kind": "asr"},
		{"languageCode": "en"},
		{"languageCode": "de"},
	}, []string{"buy when the RSI", "crosses above thirty"})

	client := NewCaptionClient().WithBaseURL(server.URL)
	record, err := client.Transcript(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, model.SourceManualCaptions, record.Source)
	assert.Equal(t, "buy when the RSI crosses above thirty", record.Text)
}

func TestCaptionClient_Transcript_FallsBackToAutoCaptions(t *testing.T) {
	server := newCaptionServer(t, []map[string]string{
		{"languageCode": "de"},
		{"languageCode": "en-US", "kind": "asr"},
	}, []string{"hello traders"})

	client := NewCaptionClient().WithBaseURL(server.URL)
	record, err := client.Transcript(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, model.SourceAutoCaptions, record.Source)
	assert.Equal(t, "hello traders", record.Text)
}

func TestCaptionClient_Transcript_AnyEnglishVariant(t *testing.T) {
	server := newCaptionServer(t, []map[string]string{
		{"languageCode": "de"},
		{"languageCode": "en-IN"},
	}, []string{"hello traders"})

	client := NewCaptionClient().WithBaseURL(server.URL)
	record, err := client.Transcript(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, model.SourceEnglishCaptions, record.Source)
}

func TestCaptionClient_Transcript_NoEnglishTracks(t *testing.T) {
	server := newCaptionServer(t, []map[string]string{
		{"languageCode": "de"},
		{"languageCode": "fr", "kind": "asr"},
	}, nil)

	client := NewCaptionClient().WithBaseURL(server.URL)
	_, err := client.Transcript(context.Background(), "abc123")
	assert.ErrorIs(t, err, common.ErrNoCaptions)
}

func TestCaptionClient_ListTracks_CaptionsDisabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"playabilityStatus": map[string]any{"status": "OK"},
		}))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewCaptionClient().WithBaseURL(server.URL)
	_, err := client.ListTracks(context.Background(), "abc123")
	assert.ErrorIs(t, err, common.ErrCaptionsDisabled)
}

func TestCaptionClient_ListTracks_VideoUnavailable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"playabilityStatus": map[string]any{
				"status": "ERROR",
				"reason": "This video is unavailable",
			},
		}))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewCaptionClient().WithBaseURL(server.URL)
	_, err := client.ListTracks(context.Background(), "gone")
	assert.ErrorIs(t, err, common.ErrVideoUnavailable)
}
