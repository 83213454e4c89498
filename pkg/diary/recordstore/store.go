// Package recordstore persists generated day log entries as per-day
// JSON documents: one file per calendar date, each holding every entry
// created that day keyed by its HH:MM:SS creation time.
//
// The store exclusively owns the on-disk layout; callers go through
// Save/Read/ListAll and never touch the files directly. Concurrent
// writers to the same day document are out of scope: two saves landing
// in the same wall-clock second silently overwrite.
package recordstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/entrhq/snaplog/pkg/logging"
)

const (
	dayFileExt = ".json"
	dateLayout = "2006-01-02"
	keyLayout  = "15:04:05"
)

// Entry is one generated day log entry.
type Entry struct {
	Content    string    `json:"content"`
	Style      string    `json:"style"`
	ImageCount int       `json:"image_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// DayDocument maps HH:MM:SS creation-time keys to the entries created
// on one calendar date.
type DayDocument map[string]Entry

// Store reads and writes day documents under a single storage root.
type Store struct {
	dir    string
	logger *logging.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the wall clock used for entry keys and creation
// timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store rooted at dir. The directory is created lazily on
// the first save.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the storage root.
func (s *Store) Dir() string {
	return s.dir
}

// Save appends an entry to the day document for the given date and
// writes the document back, returning the file path written.
//
// The entry key is the current wall-clock time (HH:MM:SS); an existing
// entry under the same key is overwritten silently. The document is
// written as indented UTF-8 JSON with non-ASCII characters preserved
// literally.
func (s *Store) Save(content string, day time.Time, style string, imageCount int) (string, error) {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := s.dayPath(day.Format(dateLayout))

	doc := DayDocument{}
	if existing, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return "", fmt.Errorf("failed to parse existing day document %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read day document %s: %w", path, err)
	}

	now := s.now()
	doc[now.Format(keyLayout)] = Entry{
		Content:    content,
		Style:      style,
		ImageCount: imageCount,
		CreatedAt:  now,
	}

	if err := s.writeDocument(path, doc); err != nil {
		return "", err
	}

	s.logger.Infof("saved day log entry to %s", path)
	return path, nil
}

// Read loads the day document for one date string (YYYY-MM-DD).
func (s *Store) Read(date string) (DayDocument, error) {
	path := s.dayPath(date)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read day document for %s: %w", date, err)
	}
	var doc DayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse day document for %s: %w", date, err)
	}
	return doc, nil
}

// ListAll scans the storage root and returns every parseable day
// document keyed by date string. A file that fails to parse is logged
// and skipped; one corrupt record never aborts the listing. A missing
// storage root yields an empty result.
func (s *Store) ListAll() (map[string]DayDocument, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]DayDocument{}, nil
		}
		return nil, fmt.Errorf("failed to scan storage directory: %w", err)
	}

	docs := make(map[string]DayDocument)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), dayFileExt) {
			continue
		}
		date := strings.TrimSuffix(e.Name(), dayFileExt)
		doc, err := s.Read(date)
		if err != nil {
			s.logger.Warnf("skipping unreadable day document %s: %v", e.Name(), err)
			continue
		}
		docs[date] = doc
	}
	return docs, nil
}

// SortedDatesDesc returns the dates of a listing newest-first. Date
// strings are ISO-formatted, so lexical order is chronological order.
func SortedDatesDesc(docs map[string]DayDocument) []string {
	dates := make([]string, 0, len(docs))
	for date := range docs {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// SortedKeys returns a day document's time keys in ascending order.
func SortedKeys(doc DayDocument) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) dayPath(date string) string {
	return filepath.Join(s.dir, date+dayFileExt)
}

// writeDocument writes a day document atomically via a temp file, with
// human-readable indentation and literal non-ASCII text.
func (s *Store) writeDocument(path string, doc DayDocument) error {
	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp day document: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode day document: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp day document: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp day document: %w", err)
	}

	return nil
}
