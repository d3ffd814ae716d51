// Package orchestrator sequences one run: validate the clip range, download,
// conditionally upload, and always record the outcome to history.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytazure/yt-azure/internal/config"
	"github.com/ytazure/yt-azure/internal/download"
	"github.com/ytazure/yt-azure/internal/history"
	"github.com/ytazure/yt-azure/internal/model"
	"github.com/ytazure/yt-azure/internal/platform"
	"github.com/ytazure/yt-azure/internal/timecode"
	"github.com/ytazure/yt-azure/internal/upload"
)

// Run ID constants
const (
	RunIDPrefix = "run-"
)

// Runner executes runs strictly sequentially: at most one download call and
// one upload call per run, no retries, no cancellation beyond ctx.
type Runner struct {
	fetcher  download.Fetcher
	uploader upload.Uploader
	history  *history.Store
	logger   zerolog.Logger
	now      func() time.Time
}

// NewRunner creates a new runner over the two collaborators and the history
// store.
func NewRunner(fetcher download.Fetcher, uploader upload.Uploader, historyStore *history.Store, logger zerolog.Logger) *Runner {
	return &Runner{
		fetcher:  fetcher,
		uploader: uploader,
		history:  historyStore,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one request against the effective settings. Collaborator
// failures become outcome lines, never panics, and every run that reaches
// this point appends exactly one history entry before returning.
func (r *Runner) Run(ctx context.Context, req model.RunRequest, settings config.Settings) model.RunResult {
	result := model.RunResult{RunID: generateRunID()}
	effective := applyOverrides(settings, req)

	// VALIDATE_RANGE: both-or-neither. A violation ends the run before any
	// download but is still recorded.
	clip, hasClip, err := timecode.NewRange(req.Start, req.End)
	if err != nil {
		result.Failed = true
		r.outcome(&result, "Error: "+err.Error())
		r.record(req, result)
		return result
	}
	var clipRange *timecode.Range
	if hasClip {
		clipRange = &clip
	}

	// DOWNLOAD
	path, err := r.downloadStep(ctx, req, effective, clipRange, result.RunID)
	if err != nil {
		result.Failed = true
		r.outcome(&result, "Download error: "+err.Error())
		r.record(req, result)
		return result
	}
	if path == "" {
		result.Failed = true
		r.outcome(&result, "Download failed")
		r.record(req, result)
		return result
	}
	result.FilePath = path
	r.outcome(&result, "Downloaded: "+path)

	// UPLOAD | SKIP_UPLOAD. Missing credentials or container are
	// configuration errors: reported, not retried, download result stands.
	if req.Upload {
		switch {
		case effective.Storage.ConnectionString == "":
			r.outcome(&result, "Upload skipped: storage connection string not configured. Run: yt-azure --config")
		case effective.Storage.ContainerName == "":
			r.outcome(&result, "Upload skipped: container name not configured. Run: yt-azure --config")
		default:
			dest := upload.Destination{
				ConnectionString: effective.Storage.ConnectionString,
				Container:        effective.Storage.ContainerName,
				BlobKey:          upload.BlobKey(effective.Storage.DestinationFolder, path),
			}
			blobURL, err := r.uploader.Upload(ctx, path, dest)
			if err != nil {
				r.outcome(&result, "Upload error: "+err.Error())
			} else {
				result.BlobURL = blobURL
				r.outcome(&result, "Uploaded: "+blobURL)
			}
		}
	}

	// RECORD
	r.record(req, result)
	return result
}

// outcome appends a user-facing line to the result and duplicates it into
// the log, so the log file carries everything the user saw.
func (r *Runner) outcome(result *model.RunResult, line string) {
	result.Lines = append(result.Lines, line)
	r.logger.Info().Str("run_id", result.RunID).Msg(line)
}

// downloadStep resolves the output location and delegates the fetch.
func (r *Runner) downloadStep(ctx context.Context, req model.RunRequest, effective config.Settings, clip *timecode.Range, runID string) (string, error) {
	outputDir := platform.Resolve(effective.Download.OutputPath)
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	template := filepath.Join(outputDir, download.BuildOutputTemplate(req.VideoName, clip, r.now()))
	r.logger.Info().Str("run_id", runID).Str("url", req.URL).Msg("Starting download")

	fetched, err := r.fetcher.Fetch(ctx, req.URL, download.Options{
		OutputTemplate: template,
		Format:         effective.Download.Format,
		Clip:           clip,
	})
	if err != nil {
		return "", err
	}
	return fetched.Path, nil
}

// record appends one history entry for the run. The entry keeps the raw
// request fields so the form UI can repopulate itself from it.
func (r *Runner) record(req model.RunRequest, result model.RunResult) {
	entry := history.Entry{
		ID:         result.RunID,
		URL:        req.URL,
		Start:      req.Start,
		End:        req.End,
		VideoName:  req.VideoName,
		Container:  req.Container,
		BlobFolder: req.BlobFolder,
		Format:     req.Format,
		Log:        result.OutcomeText(),
		Timestamp:  r.now().Format(time.RFC3339),
	}

	if _, err := r.history.Append(entry); err != nil {
		r.logger.Error().Str("run_id", result.RunID).Err(err).Msg("Could not persist history")
	}
	r.logger.Info().
		Str("run_id", result.RunID).
		Str("url", req.URL).
		Str("start", req.Start).
		Str("end", req.End).
		Msg("Completed")
}

// applyOverrides merges non-empty per-run overrides into the loaded settings.
func applyOverrides(settings config.Settings, req model.RunRequest) config.Settings {
	if req.Container != "" {
		settings.Storage.ContainerName = req.Container
	}
	if req.BlobFolder != "" {
		settings.Storage.DestinationFolder = req.BlobFolder
	}
	if req.Format != "" {
		settings.Download.Format = req.Format
	}
	return settings
}

// generateRunID generates a unique run ID using UUID v7 for time ordering.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
