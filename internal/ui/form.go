package ui

import (
	"context"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytazure/yt-azure/internal/config"
	"github.com/ytazure/yt-azure/internal/history"
	"github.com/ytazure/yt-azure/internal/model"
	"github.com/ytazure/yt-azure/internal/orchestrator"
)

// Application constants
const (
	AppID        = "com.ytazure.yt-azure"
	WindowTitle  = "YT Azure Uploader"
	WindowWidth  = 640
	WindowHeight = 560
)

// Form placeholder and label constants
const (
	NoHistoryPlaceholder = "(no previous downloads)"
	NoPreviewText        = "No preview available"
	RunningText          = "Working..."
)

// RootForm is the main window: one form per run, a history dropdown above it
// and the run outcome below it.
type RootForm struct {
	window fyne.Window

	runner     *orchestrator.Runner
	store      *history.Store
	configPath string
	logger     zerolog.Logger

	historySelect  *widget.Select
	urlEntry       *widget.Entry
	startEntry     *widget.Entry
	endEntry       *widget.Entry
	nameEntry      *widget.Entry
	containerEntry *widget.Entry
	folderEntry    *widget.Entry
	formatEntry    *widget.Entry
	uploadCheck    *widget.Check
	previewLink    *widget.Hyperlink
	runBtn         *widget.Button
	outputLabel    *widget.Label
}

// NewRootForm creates and wires the main window content.
func NewRootForm(window fyne.Window, runner *orchestrator.Runner, store *history.Store, configPath string, logger zerolog.Logger) *RootForm {
	f := &RootForm{
		window:     window,
		runner:     runner,
		store:      store,
		configPath: configPath,
		logger:     logger,
	}
	f.setupUI()
	f.loadHistory()
	return f
}

// Run opens the form front end and blocks until the window is closed.
func Run(runner *orchestrator.Runner, store *history.Store, configPath string, logger zerolog.Logger) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootForm(window, runner, store, configPath, logger)

	window.ShowAndRun()
}

// setupUI builds the widget tree and connects handlers.
func (f *RootForm) setupUI() {
	f.historySelect = widget.NewSelect(nil, f.onHistorySelected)
	f.historySelect.PlaceHolder = NoHistoryPlaceholder

	f.urlEntry = widget.NewEntry()
	f.urlEntry.SetPlaceHolder("https://www.youtube.com/watch?v=...")
	f.urlEntry.OnChanged = func(string) { f.updatePreview() }

	f.startEntry = widget.NewEntry()
	f.startEntry.SetPlaceHolder("e.g. 90 or 1:30")
	f.startEntry.OnChanged = func(string) { f.updatePreview() }

	f.endEntry = widget.NewEntry()
	f.endEntry.SetPlaceHolder("e.g. 120 or 2:00")
	f.endEntry.OnChanged = func(string) { f.updatePreview() }

	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder("optional, defaults to the video title")

	f.containerEntry = widget.NewEntry()
	f.containerEntry.SetPlaceHolder("optional, overrides the configured container")

	f.folderEntry = widget.NewEntry()
	f.folderEntry.SetPlaceHolder("optional, e.g. videos/subfolder")

	f.formatEntry = widget.NewEntry()
	f.formatEntry.SetPlaceHolder("optional yt-dlp format selector")

	f.uploadCheck = widget.NewCheck("Upload to Azure after download", nil)
	f.uploadCheck.SetChecked(true)

	f.previewLink = widget.NewHyperlink(NoPreviewText, nil)

	f.runBtn = widget.NewButton("Download", f.onRun)

	f.outputLabel = widget.NewLabel("")
	f.outputLabel.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("Video URL", f.urlEntry),
		widget.NewFormItem("Start time", f.startEntry),
		widget.NewFormItem("End time", f.endEntry),
		widget.NewFormItem("Video name", f.nameEntry),
		widget.NewFormItem("Container", f.containerEntry),
		widget.NewFormItem("Blob folder", f.folderEntry),
		widget.NewFormItem("Format", f.formatEntry),
	)

	top := container.NewVBox(
		widget.NewLabel("Previous downloads"),
		f.historySelect,
		widget.NewSeparator(),
	)

	middle := container.NewVBox(
		form,
		f.uploadCheck,
		container.NewHBox(widget.NewLabel("Preview:"), f.previewLink),
		f.runBtn,
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		f.outputLabel,
	)

	f.window.SetContent(container.NewBorder(top, bottom, nil, nil, middle))
}

// loadHistory fills the dropdown and preloads the form from the most recent
// entry, so re-running the last download is a single click.
func (f *RootForm) loadHistory() {
	h := f.store.Load()
	f.historySelect.Options = HistoryLabels(h)
	f.historySelect.Refresh()

	if len(h.Entries) > 0 {
		f.applyState(StateFromEntry(h.Entries[len(h.Entries)-1]))
	}
}

// onHistorySelected repopulates the form from the chosen entry and shows its
// recorded outcome. The selection is persisted as the history position.
func (f *RootForm) onHistorySelected(label string) {
	index, ok := ParseSelection(label)
	if !ok {
		return
	}
	entry, ok := f.store.Select(index)
	if !ok {
		return
	}

	f.applyState(StateFromEntry(entry))
	f.outputLabel.SetText(entry.Log)
}

// applyState writes a form state into the widgets.
func (f *RootForm) applyState(state FormState) {
	f.urlEntry.SetText(state.URL)
	f.startEntry.SetText(state.Start)
	f.endEntry.SetText(state.End)
	f.nameEntry.SetText(state.VideoName)
	f.containerEntry.SetText(state.Container)
	f.folderEntry.SetText(state.BlobFolder)
	f.formatEntry.SetText(state.Format)
	f.updatePreview()
}

// updatePreview points the preview link at the clip's embed URL, when one can
// be derived from the current field values.
func (f *RootForm) updatePreview() {
	embed := EmbedURL(f.urlEntry.Text, f.startEntry.Text, f.endEntry.Text)
	if embed == "" {
		f.previewLink.SetText(NoPreviewText)
		f.previewLink.SetURL(nil)
		return
	}

	parsed, err := url.Parse(embed)
	if err != nil {
		f.previewLink.SetText(NoPreviewText)
		f.previewLink.SetURL(nil)
		return
	}
	f.previewLink.SetText(embed)
	f.previewLink.SetURL(parsed)
}

// onRun executes one full run with the current form values and displays the
// outcome. The form stays disabled while the run is in progress.
func (f *RootForm) onRun() {
	if f.urlEntry.Text == "" {
		f.outputLabel.SetText("Error: URL is required")
		return
	}

	req := model.RunRequest{
		URL:        f.urlEntry.Text,
		Start:      f.startEntry.Text,
		End:        f.endEntry.Text,
		VideoName:  f.nameEntry.Text,
		Container:  f.containerEntry.Text,
		BlobFolder: f.folderEntry.Text,
		Format:     f.formatEntry.Text,
		Upload:     f.uploadCheck.Checked,
	}

	f.runBtn.Disable()
	f.outputLabel.SetText(RunningText)

	go func() {
		settings := config.Load(f.configPath, f.logger)
		result := f.runner.Run(context.Background(), req, settings)

		fyne.Do(func() {
			f.outputLabel.SetText(result.OutcomeText())
			f.loadHistory()
			f.runBtn.Enable()
		})
	}()
}
