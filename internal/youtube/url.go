// Package youtube resolves video identifiers, metadata, captions, and audio
// for YouTube videos. Metadata and audio go through the yt-dlp binary;
// caption tracks are fetched directly from the innertube player API.
package youtube

import "regexp"

// The URL shapes we recognize. Anything else yields no identifier.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([\w-]+)`),
	regexp.MustCompile(`youtu\.be/([\w-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([\w-]+)`),
	regexp.MustCompile(`youtube\.com/v/([\w-]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([\w-]+)`),
}

// ExtractVideoID extracts the video identifier from a YouTube URL.
// It returns an empty string when no supported URL shape matches.
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
