package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "standard watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch URL with extra query params",
			url:  "https://youtube.com/watch?v=abc_DEF-123&t=42s",
			want: "abc_DEF-123",
		},
		{
			name: "short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "legacy v URL",
			url:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "shorts URL",
			url:  "https://www.youtube.com/shorts/pXs2ycDGpAQ",
			want: "pXs2ycDGpAQ",
		},
		{
			name: "unrecognized host",
			url:  "https://vimeo.com/123456789",
			want: "",
		},
		{
			name: "youtube homepage",
			url:  "https://www.youtube.com/",
			want: "",
		},
		{
			name: "empty string",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}
