package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "removes bracketed cues",
			in:   "[Music] welcome back traders [Applause] let's begin",
			want: "welcome back traders let's begin",
		},
		{
			name: "removes lyric spans",
			in:   "intro ♪ some song lyrics ♪ now the strategy",
			want: "intro now the strategy",
		},
		{
			name: "collapses whitespace",
			in:   "buy   low\n\nsell\thigh",
			want: "buy low sell high",
		},
		{
			name: "trims edges",
			in:   "  [Music]  hello  ",
			want: "hello",
		},
		{
			name: "plain text unchanged",
			in:   "the RSI crosses above 30",
			want: "the RSI crosses above 30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}
