package cli

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytazure/yt-azure/internal/config"
	"github.com/ytazure/yt-azure/internal/download"
	"github.com/ytazure/yt-azure/internal/history"
	"github.com/ytazure/yt-azure/internal/logging"
	"github.com/ytazure/yt-azure/internal/model"
	"github.com/ytazure/yt-azure/internal/orchestrator"
	"github.com/ytazure/yt-azure/internal/platform"
	"github.com/ytazure/yt-azure/internal/prompt"
	"github.com/ytazure/yt-azure/internal/ui"
	"github.com/ytazure/yt-azure/internal/upload"
)

// Name of the log file kept beside the executable
const LogFileName = "yt-azure.log"

// Value --config reports when given without an attached path, so an explicit
// relative path is never mistaken for the bare form
const bareConfigValue = "-"

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if len(args) > 0 && !flags.Changed("config") {
		return fmt.Errorf("unexpected argument: %q", args[0])
	}

	configFile, _ := flags.GetString("config-file")
	configPath := resolveConfigPath(configFile, configFlagValue(flags, args))

	logger, closer, err := logging.New(platform.Resolve(LogFileName))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: log file unavailable: %v\n", err)
	}
	defer closer.Close()

	if flags.Changed("config") {
		return prompt.NewFlow(os.Stdin, cmd.OutOrStdout()).Configure(configPath, logger)
	}

	if showConfig, _ := flags.GetBool("show-config"); showConfig {
		return printConfig(cmd, configPath, logger)
	}

	if err := download.EnsureTool(cmd.Context()); err != nil {
		return err
	}

	store := history.NewStore(history.DefaultPath())
	runner := orchestrator.NewRunner(
		download.NewService(logger),
		upload.NewAzureUploader(logger),
		store,
		logger,
	)

	req, direct := buildRequest(flags)
	if !direct {
		return runInteractive(cmd, runner, store, configPath, logger)
	}

	settings := config.Load(configPath, logger)
	result := runner.Run(cmd.Context(), req, settings)
	fmt.Fprintln(cmd.OutOrStdout(), result.OutcomeText())
	return nil
}

// runInteractive enters the form window when one can be shown, falling back
// to line prompts. Missing prompt inputs are reported and exit cleanly.
func runInteractive(cmd *cobra.Command, runner *orchestrator.Runner, store *history.Store, configPath string, logger zerolog.Logger) error {
	if noGUI, _ := cmd.Flags().GetBool("no-gui"); !noGUI && guiAvailable() {
		ui.Run(runner, store, configPath, logger)
		return nil
	}

	req, ok := prompt.NewFlow(os.Stdin, cmd.OutOrStdout()).CollectRequest()
	if !ok {
		return nil
	}

	settings := config.Load(configPath, logger)
	result := runner.Run(cmd.Context(), req, settings)
	fmt.Fprintln(cmd.OutOrStdout(), result.OutcomeText())
	return nil
}

// buildRequest maps the download-related flags onto a run request. The
// second return is false when no URL was given, which selects interactive
// mode instead of a direct run.
func buildRequest(flags *pflag.FlagSet) (model.RunRequest, bool) {
	url, _ := flags.GetString("url")
	if url == "" {
		return model.RunRequest{}, false
	}

	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	name, _ := flags.GetString("name")
	format, _ := flags.GetString("format")
	container, _ := flags.GetString("container")
	blobFolder, _ := flags.GetString("blob-folder")
	noUpload, _ := flags.GetBool("no-upload")

	return model.RunRequest{
		URL:        url,
		Start:      start,
		End:        end,
		VideoName:  name,
		Container:  container,
		BlobFolder: blobFolder,
		Format:     format,
		Upload:     !noUpload,
	}, true
}

// configFlagValue returns the path handed to --config. The flag accepts an
// attached value (--config=path), a following positional (--config path) or
// nothing at all; the bare form without a positional means the default
// location.
func configFlagValue(flags *pflag.FlagSet, args []string) string {
	value, _ := flags.GetString("config")
	if value != bareConfigValue {
		return value
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveConfigPath picks the settings file location: an explicit
// --config-file wins, then a path given to --config, then the default file
// beside the executable.
func resolveConfigPath(configFile, configValue string) string {
	if configFile != "" {
		return config.Path(configFile)
	}
	return config.Path(configValue)
}

// printConfig writes the current settings as indented JSON with secret
// values masked.
func printConfig(cmd *cobra.Command, configPath string, logger zerolog.Logger) error {
	settings := config.Load(configPath, logger).Masked()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n%s\n", configPath, data)
	return nil
}
