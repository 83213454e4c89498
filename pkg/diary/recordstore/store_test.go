package recordstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a clock that yields the given times in sequence,
// repeating the last one when exhausted.
func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestSaveCreatesDayDocument(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 15, 9, 30, 12, 0, time.UTC)
	store := New(dir, WithClock(fixedClock(created)))

	path, err := store.Save("Went to the park.", day, "natural", 3)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-03-15.json"), path)

	doc, err := store.Read("2024-03-15")
	require.NoError(t, err)
	require.Len(t, doc, 1)

	entry := doc["09:30:12"]
	assert.Equal(t, "Went to the park.", entry.Content)
	assert.Equal(t, "natural", entry.Style)
	assert.Equal(t, 3, entry.ImageCount)
	assert.True(t, entry.CreatedAt.Equal(created))
}

func TestSaveTwiceAppendsDistinctEntries(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	store := New(dir, WithClock(fixedClock(
		time.Date(2024, 3, 15, 9, 30, 12, 0, time.UTC),
		time.Date(2024, 3, 15, 21, 2, 45, 0, time.UTC),
	)))

	_, err := store.Save("morning entry", day, "natural", 1)
	require.NoError(t, err)
	_, err = store.Save("evening entry", day, "concise", 2)
	require.NoError(t, err)

	docs, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs["2024-03-15"]
	require.Len(t, doc, 2)
	assert.Equal(t, "morning entry", doc["09:30:12"].Content)
	assert.Equal(t, "evening entry", doc["21:02:45"].Content)
}

func TestSaveSameSecondOverwritesSilently(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := New(t.TempDir(), WithClock(fixedClock(at)))

	_, err := store.Save("first", day, "natural", 1)
	require.NoError(t, err)
	_, err = store.Save("second", day, "natural", 1)
	require.NoError(t, err)

	doc, err := store.Read("2024-03-15")
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "second", doc["12:00:00"].Content)
}

func TestSavePreservesNonASCIILiterally(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	store := New(dir, WithClock(fixedClock(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))))

	content := "오늘은 공원에 갔다. 날씨가 참 좋았다."
	path, err := store.Save(content, day, "natural", 1)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// Non-ASCII stays literal (no \uXXXX escapes), body is indented.
	assert.Contains(t, string(raw), content)
	assert.NotContains(t, string(raw), `\u`)
	assert.Contains(t, string(raw), "\n  \"")
}

func TestListAllSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, WithClock(fixedClock(time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC))))

	_, err := store.Save("valid entry", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), "concise", 1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-15.json"), []byte("{ not json"), 0600))

	docs, err := store.ListAll()

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs, "2024-03-16")
	assert.Equal(t, "valid entry", docs["2024-03-16"]["10:00:00"].Content)
}

func TestListAllIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hi"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup"), 0750))

	docs, err := New(dir).ListAll()

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListAllMissingDirectory(t *testing.T) {
	docs, err := New(filepath.Join(t.TempDir(), "never-created")).ListAll()

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSaveFailsOnCorruptExistingDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-15.json"), []byte("{ not json"), 0600))
	store := New(dir)

	_, err := store.Save("entry", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "natural", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-03-15")
}

func TestReadMissingDate(t *testing.T) {
	_, err := New(t.TempDir()).Read("1999-01-01")

	assert.Error(t, err)
}

func TestSortedDatesDesc(t *testing.T) {
	docs := map[string]DayDocument{
		"2024-03-15": {},
		"2024-03-17": {},
		"2023-12-31": {},
	}

	assert.Equal(t, []string{"2024-03-17", "2024-03-15", "2023-12-31"}, SortedDatesDesc(docs))
}

func TestSortedKeys(t *testing.T) {
	doc := DayDocument{
		"21:02:45": {},
		"09:30:12": {},
		"12:00:00": {},
	}

	assert.Equal(t, []string{"09:30:12", "12:00:00", "21:02:45"}, SortedKeys(doc))
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, WithClock(fixedClock(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))))

	_, err := store.Save("entry", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "natural", 1)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file: %s", e.Name())
	}
}
