package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilename(t *testing.T) {
	tests := []struct {
		name  string
		query string
		count int
		want  string
	}{
		{name: "plain", query: "cats", count: 10, want: "youtube_videos_cats_10_results.xlsx"},
		{name: "spaces", query: "funny cat videos", count: 3, want: "youtube_videos_funny_cat_videos_3_results.xlsx"},
		{name: "punctuation dropped", query: "c++ / go: tips!", count: 0, want: "youtube_videos_c__go_tips_0_results.xlsx"},
		{name: "trailing space trimmed", query: "dogs ?", count: 5, want: "youtube_videos_dogs_5_results.xlsx"},
		{name: "dash and underscore kept", query: "how-to_go", count: 1, want: "youtube_videos_how-to_go_1_results.xlsx"},
		{name: "unicode letters kept", query: "café música", count: 2, want: "youtube_videos_café_música_2_results.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFilename(tt.query, tt.count))
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{name: "empty uses default", requested: "", want: "youtube_videos_cats_10_results.xlsx"},
		{name: "blank uses default", requested: "   ", want: "youtube_videos_cats_10_results.xlsx"},
		{name: "extension appended", requested: "report", want: "report.xlsx"},
		{name: "extension kept", requested: "report.xlsx", want: "report.xlsx"},
		{name: "path stripped", requested: "../../etc/report", want: "report.xlsx"},
		{name: "root only", requested: "/", want: "youtube_videos_cats_10_results.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.requested, "cats", 10))
		})
	}
}
