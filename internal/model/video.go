// Package model defines the core domain types shared across the application.
package model

// VideoMetadata describes a YouTube video as reported by the downloader.
// Every field is best-effort; absent values stay at "Unknown" or zero.
type VideoMetadata struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	ChannelURL     string `json:"channel_url"`
	DurationString string `json:"duration_string"`
	Description    string `json:"description"`
	UploadDate     string `json:"upload_date"`
	Thumbnail      string `json:"thumbnail"`
	URL            string `json:"url"`
	Error          string `json:"error,omitempty"`
	Duration       int64  `json:"duration"`
	ViewCount      int64  `json:"view_count"`
	LikeCount      int64  `json:"like_count"`
}

// UnknownMetadata returns metadata with placeholder fields for videos we
// could not inspect.
func UnknownMetadata(url string, err error) VideoMetadata {
	m := VideoMetadata{
		Title:          "Unknown",
		Author:         "Unknown",
		DurationString: "Unknown",
		UploadDate:     "Unknown",
		URL:            url,
	}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

// TranscriptRecord holds a fetched transcript and how it was obtained.
// Records are immutable once written; a re-fetch overwrites the whole record.
type TranscriptRecord struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Transcript source tags. Cache hits append the "_cached" suffix.
const (
	SourceManualCaptions  = "manual_captions"
	SourceAutoCaptions    = "auto_captions"
	SourceEnglishCaptions = "english_captions"
	SourceWhisper         = "whisper"

	CachedSuffix = "_cached"
)
