// Package cli wires the command-line front end: flag parsing, service
// construction, and dispatch to the configure, show-config, direct-run, or
// interactive flows.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Main parses flags and runs the selected flow. It is the whole program
// behind main().
func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "yt-azure",
		Short:        "Download a video clip and upload it to Azure Blob Storage",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().StringP("url", "u", "", "Video URL to download")
	root.Flags().StringP("start", "s", "", "Clip start time (seconds, MM:SS or HH:MM:SS)")
	root.Flags().StringP("end", "e", "", "Clip end time (seconds, MM:SS or HH:MM:SS)")
	root.Flags().StringP("name", "n", "", "Custom name for the downloaded file")
	root.Flags().StringP("format", "f", "", "yt-dlp format selector override")
	root.Flags().String("container", "", "Azure container override")
	root.Flags().String("blob-folder", "", "Destination folder override inside the container")
	root.Flags().Bool("no-upload", false, "Download only, skip the Azure upload")
	root.Flags().Bool("no-gui", false, "Use line prompts instead of the form window")

	root.Flags().StringP("config", "c", "", "Run the interactive configuration flow, optionally at a given settings path (--config=PATH or --config PATH)")
	root.Flags().Lookup("config").NoOptDefVal = bareConfigValue
	root.Flags().Bool("show-config", false, "Print the current configuration with secrets masked")
	root.Flags().String("config-file", "", "Path to the settings file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
