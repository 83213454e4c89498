package metadata

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a small PNG (no embedded tags) and returns its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, width, height))))
	return path
}

func TestExtractIntrinsicsFromPNG(t *testing.T) {
	path := writeTestPNG(t, 8, 6)

	md, err := Extract(path)

	require.NoError(t, err)
	assert.Equal(t, 8, md[KeyWidth])
	assert.Equal(t, 6, md[KeyHeight])
	assert.Equal(t, "png", md[KeyFormat])
	assert.Equal(t, "NRGBA", md[KeyColorMode])

	// PNG carries no EXIF; the map holds intrinsics only.
	assert.NotContains(t, md, TagDateTimeOriginal)
	assert.NotContains(t, md, TagGPSLatitude)
}

func TestExtractMissingFileReturnsEmptyMap(t *testing.T) {
	md, err := Extract(filepath.Join(t.TempDir(), "nope.jpg"))

	assert.Error(t, err)
	assert.Empty(t, md)
}

func TestExtractUnreadableDataReturnsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0600))

	md, err := Extract(path)

	assert.Error(t, err)
	assert.Empty(t, md)
}

func TestExtractFailureStillNormalizes(t *testing.T) {
	// The pipeline proceeds with whatever Extract returned, even empty.
	md, _ := Extract(filepath.Join(t.TempDir(), "nope.jpg"))
	info := Normalize(md)

	assert.Empty(t, info.Time)
	assert.Empty(t, info.Location)
}
