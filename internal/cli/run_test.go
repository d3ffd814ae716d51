package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytazure/yt-azure/internal/config"
)

func downloadFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("url", "u", "", "")
	flags.StringP("start", "s", "", "")
	flags.StringP("end", "e", "", "")
	flags.StringP("name", "n", "", "")
	flags.StringP("format", "f", "", "")
	flags.String("container", "", "")
	flags.String("blob-folder", "", "")
	flags.Bool("no-upload", false, "")
	return flags
}

func TestBuildRequest_Direct(t *testing.T) {
	flags := downloadFlags()
	require.NoError(t, flags.Parse([]string{
		"--url", "https://youtu.be/abc",
		"--start", "3:07",
		"--end", "3:21",
		"--name", "goal",
		"--container", "clips",
		"--blob-folder", "matches",
		"--format", "best",
	}))

	req, direct := buildRequest(flags)
	require.True(t, direct)
	assert.Equal(t, "https://youtu.be/abc", req.URL)
	assert.Equal(t, "3:07", req.Start)
	assert.Equal(t, "3:21", req.End)
	assert.Equal(t, "goal", req.VideoName)
	assert.Equal(t, "clips", req.Container)
	assert.Equal(t, "matches", req.BlobFolder)
	assert.Equal(t, "best", req.Format)
	assert.True(t, req.Upload)
}

func TestBuildRequest_NoUpload(t *testing.T) {
	flags := downloadFlags()
	require.NoError(t, flags.Parse([]string{"-u", "https://youtu.be/abc", "--no-upload"}))

	req, direct := buildRequest(flags)
	require.True(t, direct)
	assert.False(t, req.Upload)
}

func TestBuildRequest_NoURLMeansInteractive(t *testing.T) {
	flags := downloadFlags()
	require.NoError(t, flags.Parse([]string{"--start", "1:00"}))

	_, direct := buildRequest(flags)
	assert.False(t, direct)
}

func configFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "")
	flags.Lookup("config").NoOptDefVal = bareConfigValue
	return flags
}

func TestConfigFlagValue_AttachedPath(t *testing.T) {
	flags := configFlags()
	require.NoError(t, flags.Parse([]string{"--config=/tmp/x.json"}))
	assert.Equal(t, "/tmp/x.json", configFlagValue(flags, flags.Args()))
}

func TestConfigFlagValue_SpaceSeparatedPath(t *testing.T) {
	flags := configFlags()
	require.NoError(t, flags.Parse([]string{"--config", "/tmp/x.json"}))
	require.True(t, flags.Changed("config"))
	assert.Equal(t, "/tmp/x.json", configFlagValue(flags, flags.Args()))
}

func TestConfigFlagValue_Bare(t *testing.T) {
	flags := configFlags()
	require.NoError(t, flags.Parse([]string{"--config"}))
	assert.Equal(t, "", configFlagValue(flags, flags.Args()))
}

func TestConfigFlagValue_RelativePathIsNotTheBareForm(t *testing.T) {
	flags := configFlags()
	require.NoError(t, flags.Parse([]string{"--config=" + config.DefaultConfigFileName}))
	assert.Equal(t, config.DefaultConfigFileName, configFlagValue(flags, flags.Args()))
}

func TestResolveConfigPath_ExplicitFileWins(t *testing.T) {
	got := resolveConfigPath("/etc/yt-azure/settings.json", "/tmp/other.json")
	assert.Equal(t, "/etc/yt-azure/settings.json", got)
}

func TestResolveConfigPath_ConfigValue(t *testing.T) {
	got := resolveConfigPath("", "/tmp/custom.json")
	assert.Equal(t, "/tmp/custom.json", got)
}

func TestResolveConfigPath_Default(t *testing.T) {
	got := resolveConfigPath("", "")
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, config.DefaultConfigFileName))
}
