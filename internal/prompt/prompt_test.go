package prompt

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytazure/yt-azure/internal/config"
	"github.com/ytazure/yt-azure/internal/logging"
)

func TestInput_DefaultOnEmpty(t *testing.T) {
	var out bytes.Buffer
	flow := NewFlow(strings.NewReader("\n"), &out)

	got := flow.Input("Container name", "clips", false)
	assert.Equal(t, "clips", got)
	assert.Contains(t, out.String(), "[clips]")
}

func TestInput_SecretMasksDefault(t *testing.T) {
	var out bytes.Buffer
	flow := NewFlow(strings.NewReader("\n"), &out)

	got := flow.Input("Connection string", "AccountKey=verysecret", true)
	assert.Equal(t, "AccountKey=verysecret", got)
	assert.NotContains(t, out.String(), "verysecret")
}

func TestCollectRequest_FullRange(t *testing.T) {
	var out bytes.Buffer
	answers := "https://youtube.com/watch?v=abc\ny\n3:07\n3:21\ny\n"
	flow := NewFlow(strings.NewReader(answers), &out)

	req, ok := flow.CollectRequest()
	require.True(t, ok)
	assert.Equal(t, "https://youtube.com/watch?v=abc", req.URL)
	assert.Equal(t, "3:07", req.Start)
	assert.Equal(t, "3:21", req.End)
	assert.True(t, req.Upload)
}

func TestCollectRequest_NoRangeNoUpload(t *testing.T) {
	var out bytes.Buffer
	answers := "https://youtube.com/watch?v=abc\nn\nn\n"
	flow := NewFlow(strings.NewReader(answers), &out)

	req, ok := flow.CollectRequest()
	require.True(t, ok)
	assert.Empty(t, req.Start)
	assert.Empty(t, req.End)
	assert.False(t, req.Upload)
}

func TestCollectRequest_MissingURL(t *testing.T) {
	var out bytes.Buffer
	flow := NewFlow(strings.NewReader("\n"), &out)

	_, ok := flow.CollectRequest()
	assert.False(t, ok)
	assert.Contains(t, out.String(), "URL is required")
}

func TestCollectRequest_MissingEndTime(t *testing.T) {
	var out bytes.Buffer
	answers := "https://youtube.com/watch?v=abc\ny\n1:00\n\n"
	flow := NewFlow(strings.NewReader(answers), &out)

	_, ok := flow.CollectRequest()
	assert.False(t, ok)
	assert.Contains(t, out.String(), "end time is required")
}

func TestConfigure_SavesAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yt-azure.json")
	var out bytes.Buffer

	// connection string, container, folder, output path (keep default), format (keep default)
	answers := "UseDevelopmentStorage=true\nclips\nvideos/\n\n\n"
	flow := NewFlow(strings.NewReader(answers), &out)

	require.NoError(t, flow.Configure(path, logging.Nop()))
	assert.Contains(t, out.String(), "Config saved to")

	saved := config.Load(path, logging.Nop())
	assert.Equal(t, "UseDevelopmentStorage=true", saved.Storage.ConnectionString)
	assert.Equal(t, "clips", saved.Storage.ContainerName)
	assert.Equal(t, "videos/", saved.Storage.DestinationFolder)
	assert.Equal(t, config.DefaultOutputPath, saved.Download.OutputPath)
	assert.Equal(t, config.DefaultFormat, saved.Download.Format)
}
