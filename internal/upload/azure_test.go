package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobKey(t *testing.T) {
	tests := []struct {
		folder string
		path   string
		want   string
	}{
		{"", "/tmp/clip.mp4", "clip.mp4"},
		{"videos", "/tmp/clip.mp4", "videos/clip.mp4"},
		{"videos/", "/tmp/clip.mp4", "videos/clip.mp4"},
		{"/videos/subfolder/", "/tmp/clip.mp4", "videos/subfolder/clip.mp4"},
		{"///", "/tmp/clip.mp4", "clip.mp4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BlobKey(tt.folder, tt.path), "BlobKey(%q, %q)", tt.folder, tt.path)
	}
}
