package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytazure/yt-azure/internal/history"
)

// Longest URL prefix shown in a history dropdown label
const historyLabelURLLength = 40

// FormState holds the editable field values of the form, independent of the
// widgets displaying them.
type FormState struct {
	URL        string
	Start      string
	End        string
	VideoName  string
	Container  string
	BlobFolder string
	Format     string
}

// StateFromEntry maps a history entry back onto form fields, so selecting an
// old run repopulates the form for a re-run.
func StateFromEntry(e history.Entry) FormState {
	return FormState{
		URL:        e.URL,
		Start:      e.Start,
		End:        e.End,
		VideoName:  e.VideoName,
		Container:  e.Container,
		BlobFolder: e.BlobFolder,
		Format:     e.Format,
	}
}

// HistoryLabels renders one dropdown label per history entry, oldest first,
// keeping indexes aligned with the entries slice.
func HistoryLabels(h history.History) []string {
	labels := make([]string, 0, len(h.Entries))
	for i, e := range h.Entries {
		labels = append(labels, historyLabel(i, e))
	}
	return labels
}

func historyLabel(index int, e history.Entry) string {
	url := e.URL
	if len(url) > historyLabelURLLength {
		url = url[:historyLabelURLLength] + "..."
	}
	label := fmt.Sprintf("%d. %s", index+1, url)
	if e.Start != "" || e.End != "" {
		label += fmt.Sprintf(" [%s-%s]", e.Start, e.End)
	}
	return label
}

// ParseSelection recovers the entry index from a dropdown label produced by
// HistoryLabels. Returns false for anything else.
func ParseSelection(label string) (int, bool) {
	numberPart, _, found := strings.Cut(label, ".")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(numberPart)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
