package diary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// supportedImages matches the file names of supported input formats.
var supportedImages = glob.MustCompile("*.{jpg,jpeg,png}")

// IsSupportedImage reports whether the file name has a supported image
// extension (JPEG or PNG).
func IsSupportedImage(name string) bool {
	return supportedImages.Match(strings.ToLower(filepath.Base(name)))
}

// MediaType returns the MIME type for a supported image path.
func MediaType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// CollectImages resolves a directory, glob pattern, or single file path
// into an ordered list of supported image files. Directory and pattern
// results are sorted lexically so the implied chronology is
// deterministic for camera-style sequential file names.
func CollectImages(pathOrPattern string) ([]string, error) {
	if info, err := os.Stat(pathOrPattern); err == nil {
		if !info.IsDir() {
			if !IsSupportedImage(pathOrPattern) {
				return nil, fmt.Errorf("unsupported image file: %s", pathOrPattern)
			}
			return []string{pathOrPattern}, nil
		}

		entries, err := os.ReadDir(pathOrPattern)
		if err != nil {
			return nil, fmt.Errorf("failed to read image directory: %w", err)
		}
		var paths []string
		for _, e := range entries {
			if !e.IsDir() && IsSupportedImage(e.Name()) {
				paths = append(paths, filepath.Join(pathOrPattern, e.Name()))
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	matches, err := filepath.Glob(pathOrPattern)
	if err != nil {
		return nil, fmt.Errorf("bad image pattern %q: %w", pathOrPattern, err)
	}
	var paths []string
	for _, m := range matches {
		if IsSupportedImage(m) {
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported images matched %q", pathOrPattern)
	}
	return paths, nil
}

// Truncate caps a path list at max entries, preserving order. Oversupply
// handling belongs to the caller of Generate, not the generator itself.
func Truncate(paths []string, max int) []string {
	if max <= 0 || len(paths) <= max {
		return paths
	}
	return paths[:max]
}
