package model

import "strings"

// RunRequest carries the five logical inputs of a run: the URL, the raw
// start/end time strings as the user typed them, the per-run overrides and
// the upload decision. Empty override fields mean "use the config value".
type RunRequest struct {
	URL        string
	Start      string
	End        string
	VideoName  string
	Container  string
	BlobFolder string
	Format     string
	Upload     bool
}

// RunResult is the outcome of one orchestrator run.
type RunResult struct {
	RunID    string
	FilePath string   // local path of the downloaded file, empty on failure
	BlobURL  string   // accessible URL of the uploaded blob, empty when skipped or failed
	Lines    []string // ordered user-facing outcome messages
	Failed   bool     // true when no download was produced
}

// OutcomeText renders the outcome messages as the multi-line text shown to
// the user and stored in history.
func (r RunResult) OutcomeText() string {
	return strings.Join(r.Lines, "\n")
}
