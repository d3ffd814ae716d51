package download

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytazure/yt-azure/internal/timecode"
)

// Output template constants
const (
	TitlePlaceholder     = "%(title)s"
	ExtensionPlaceholder = "%(ext)s"
	TimestampLayout      = "20060102_150405"
)

// EnsureTool makes sure a yt-dlp binary is available, downloading one when
// none is on PATH. Called once at startup before any run.
func EnsureTool(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("yt-dlp is not available: %w", err)
	}
	return nil
}

// Service is the ytdlp-backed Fetcher.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new download service.
func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger}
}

// Fetch downloads url into the location described by opts and returns the
// final written file path. When opts.Clip is set only that sub-range is
// fetched, cut at the nearest keyframes.
func (s *Service) Fetch(ctx context.Context, url string, opts Options) (Result, error) {
	dl := ytdlp.New().
		ForceOverwrites().
		Format(opts.Format).
		Output(opts.OutputTemplate)

	if opts.Clip != nil {
		section := fmt.Sprintf("*%g-%g", opts.Clip.Start, opts.Clip.End)
		dl = dl.DownloadSections(section).ForceKeyframesAtCuts()
		s.logger.Info().Str("url", url).Str("section", section).Msg("Downloading clip range")
	} else {
		s.logger.Info().Str("url", url).Msg("Downloading")
	}

	// The collaborator reports the written path through its completion hook;
	// no reported path means the run failed even if Run returned cleanly.
	var downloadedFile string
	dl.ProgressFunc(500*time.Millisecond, func(update ytdlp.ProgressUpdate) {
		if update.Status == ytdlp.ProgressStatusFinished && update.Filename != "" {
			downloadedFile = update.Filename
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return Result{}, fmt.Errorf("download failed: %w", err)
	}

	if downloadedFile == "" && result != nil {
		if info, err := result.GetExtractedInfo(); err == nil && len(info) > 0 && info[0].Filename != nil {
			downloadedFile = *info[0].Filename
		}
	}

	if downloadedFile != "" {
		s.logger.Info().Str("path", downloadedFile).Msg("Downloaded")
	}
	return Result{Path: downloadedFile}, nil
}

// BuildOutputTemplate assembles the output file name: custom name (or the
// title placeholder), an optional start_to_end clip suffix, a timestamp and
// the extension placeholder resolved by the collaborator.
func BuildOutputTemplate(customName string, clip *timecode.Range, now time.Time) string {
	baseName := strings.TrimSpace(customName)
	if baseName == "" {
		baseName = TitlePlaceholder
	}

	timestamp := now.Format(TimestampLayout)
	if clip != nil {
		return fmt.Sprintf("%s_%s_%s.%s", baseName, clip.Suffix(), timestamp, ExtensionPlaceholder)
	}
	return fmt.Sprintf("%s_%s.%s", baseName, timestamp, ExtensionPlaceholder)
}
