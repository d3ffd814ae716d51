package download

import (
	"context"

	"github.com/ytazure/yt-azure/internal/timecode"
)

// Options configures a single fetch.
type Options struct {
	OutputTemplate string          // full output path template, yt-dlp placeholders allowed
	Format         string          // format selector expression
	Clip           *timecode.Range // nil means download the whole video
}

// Result reports what a fetch produced. Path is empty when the collaborator
// never reported a written file, which callers must treat as a failed run.
type Result struct {
	Path string
}

// Fetcher defines the interface for the download collaborator.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts Options) (Result, error)
}
