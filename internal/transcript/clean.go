// Package transcript acquires video transcripts, preferring YouTube captions
// and falling back to local speech-to-text, with an on-disk cache keyed by
// video identifier.
package transcript

import (
	"regexp"
	"strings"
)

var (
	bracketCues = regexp.MustCompile(`\[[^\]]*\]`) // [Music], [Applause], ...
	lyricSpans  = regexp.MustCompile(`♪[^♪]*♪`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Clean strips caption cue markers and collapses whitespace.
func Clean(text string) string {
	text = bracketCues.ReplaceAllString(text, "")
	text = lyricSpans.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
