// Package history keeps the append-only record of past runs with a position
// cursor, persisted as a JSON document beside the executable.
package history

import (
	"os"

	json "github.com/goccy/go-json"

	"github.com/ytazure/yt-azure/internal/platform"
)

// Fixed file location, relative to the executable directory
const (
	DefaultHistoryFileName = "history.json"
	DefaultFileMode        = 0644
)

// EmptyPosition marks a history with no selected entry.
const EmptyPosition = -1

// Entry is one recorded run. Entries are never edited or removed; start and
// end keep the raw strings the user typed so the form can be repopulated.
type Entry struct {
	ID         string `json:"id,omitempty"`
	URL        string `json:"url"`
	Start      string `json:"start"`
	End        string `json:"end"`
	VideoName  string `json:"video_name"`
	Container  string `json:"container"`
	BlobFolder string `json:"blob_folder"`
	Format     string `json:"format"`
	Log        string `json:"log"`
	Timestamp  string `json:"timestamp"`
}

// History is the persisted document: ordered entries plus the position
// cursor (EmptyPosition when there are no entries).
type History struct {
	Entries  []Entry `json:"entries"`
	Position int     `json:"position"`
}

// Store reads and writes the history document at a fixed path. Each call
// re-reads the file; there is no cache and no file locking, so concurrent
// invocations are last-writer-wins.
type Store struct {
	path string
}

// NewStore creates a history store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the fixed history location beside the executable.
func DefaultPath() string {
	return platform.Resolve(DefaultHistoryFileName)
}

// Load reads the history document. An absent or corrupt file silently yields
// an empty history.
func (s *Store) Load() History {
	empty := History{Entries: []Entry{}, Position: EmptyPosition}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return empty
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return empty
	}
	if h.Entries == nil {
		h.Entries = []Entry{}
	}
	return h
}

// Append loads the current history, appends entry, moves the position cursor
// to the new last index and persists the whole document.
func (s *Store) Append(entry Entry) (History, error) {
	h := s.Load()
	h.Entries = append(h.Entries, entry)
	h.Position = len(h.Entries) - 1

	if err := s.save(h); err != nil {
		return h, err
	}
	return h, nil
}

// Select returns the entry at index and persists index as the new position
// cursor. An out-of-range index returns false and leaves the stored document
// untouched.
func (s *Store) Select(index int) (Entry, bool) {
	h := s.Load()
	if index < 0 || index >= len(h.Entries) {
		return Entry{}, false
	}

	h.Position = index
	// Best effort: a failed position write must not hide the entry.
	_ = s.save(h)

	return h.Entries[index], true
}

// save persists the full document atomically.
func (s *Store) save(h History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return platform.WriteFileAtomic(s.path, data, DefaultFileMode)
}
