package ui

import (
	"fmt"
	"strings"

	"github.com/ytazure/yt-azure/internal/timecode"
)

// EmbedURL converts a YouTube watch or short-link URL into an embed URL
// carrying the clip bounds as whole seconds. Returns "" when no video ID can
// be extracted, which callers render as "no preview".
func EmbedURL(url, start, end string) string {
	videoID := extractVideoID(url)
	if videoID == "" {
		return ""
	}

	var params []string
	if sec, ok := timecode.Parse(start); ok {
		params = append(params, fmt.Sprintf("start=%d", int(sec)))
	}
	if sec, ok := timecode.Parse(end); ok {
		params = append(params, fmt.Sprintf("end=%d", int(sec)))
	}

	return "https://www.youtube.com/embed/" + videoID + "?" + strings.Join(params, "&")
}

// extractVideoID pulls the video ID out of the two common YouTube URL forms.
func extractVideoID(url string) string {
	if _, after, found := strings.Cut(url, "youtube.com/watch?v="); found {
		id, _, _ := strings.Cut(after, "&")
		return id
	}
	if _, after, found := strings.Cut(url, "youtu.be/"); found {
		id, _, _ := strings.Cut(after, "?")
		return id
	}
	return ""
}
