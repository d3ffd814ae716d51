// Package prompt implements the line-based interactive front end: the
// configuration setup flow and the fallback download flow used when the
// form UI is unavailable.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytazure/yt-azure/internal/config"
	"github.com/ytazure/yt-azure/internal/model"
)

// Masked default shown for secret values that are already set
const secretDisplay = "**********"

// Flow reads answers from in and writes prompts to out. Front-end only: it
// collects inputs and leaves running them to the caller.
type Flow struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewFlow creates a prompt flow over the given reader and writer.
func NewFlow(in io.Reader, out io.Writer) *Flow {
	return &Flow{in: bufio.NewScanner(in), out: out}
}

// Input prompts for one value, returning def when the user enters nothing.
// Secret values display a mask instead of the current default.
func (f *Flow) Input(label, def string, secret bool) string {
	if def != "" {
		display := def
		if secret {
			display = secretDisplay
		}
		fmt.Fprintf(f.out, "%s [%s]: ", label, display)
	} else {
		fmt.Fprintf(f.out, "%s: ", label)
	}

	if !f.in.Scan() {
		return def
	}
	value := strings.TrimSpace(f.in.Text())
	if value == "" {
		return def
	}
	return value
}

// Configure walks the user through every settings field, using the current
// values as defaults, and persists the result.
func (f *Flow) Configure(path string, logger zerolog.Logger) error {
	fmt.Fprintln(f.out, "\nyt-azure configuration")

	settings := config.Load(path, logger)

	fmt.Fprintln(f.out, "\n-- Storage settings --")
	settings.Storage.ConnectionString = f.Input("Connection string", settings.Storage.ConnectionString, true)
	settings.Storage.ContainerName = f.Input("Container name", settings.Storage.ContainerName, false)
	settings.Storage.DestinationFolder = f.Input("Destination folder (e.g. videos/subfolder)", settings.Storage.DestinationFolder, false)

	fmt.Fprintln(f.out, "\n-- Download settings --")
	settings.Download.OutputPath = f.Input("Local output path", settings.Download.OutputPath, false)
	settings.Download.Format = f.Input("Video format", settings.Download.Format, false)

	if err := config.Save(settings, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(f.out, "\nConfig saved to: %s\n", path)
	return nil
}

// CollectRequest gathers one run request. Missing required inputs (URL, or
// the end time once a range was chosen) print an error and return false;
// such input errors never reach the orchestrator and are not recorded.
func (f *Flow) CollectRequest() (model.RunRequest, bool) {
	fmt.Fprintln(f.out, "\nyt-azure interactive mode")

	req := model.RunRequest{}

	req.URL = f.Input("Video URL", "", false)
	if req.URL == "" {
		fmt.Fprintln(f.out, "Error: URL is required")
		return model.RunRequest{}, false
	}

	useRange := f.Input("Download specific time range? (y/n)", "n", false)
	if strings.EqualFold(useRange, "y") {
		req.Start = f.Input("Start time (seconds or MM:SS)", "0", false)
		req.End = f.Input("End time (seconds or MM:SS)", "", false)
		if req.End == "" {
			fmt.Fprintln(f.out, "Error: end time is required for a time range")
			return model.RunRequest{}, false
		}
	}

	doUpload := f.Input("Upload to Azure? (y/n)", "y", false)
	req.Upload = strings.EqualFold(doUpload, "y")

	return req, true
}
