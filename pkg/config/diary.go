package config

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// SectionIDDiary is the identifier for the diary storage section
	SectionIDDiary = "diary"

	// DefaultMaxImages is the per-generation image cap applied by the
	// CLI when the config does not override it.
	DefaultMaxImages = 10
)

// DiarySection manages diary storage and generation settings.
type DiarySection struct {
	StorageDir   string
	MaxImages    int
	DefaultStyle string // internal style tag; empty means the catalog default
	mu           sync.RWMutex
}

// NewDiarySection creates a new diary section with default settings.
func NewDiarySection() *DiarySection {
	return &DiarySection{
		MaxImages: DefaultMaxImages,
	}
}

// ID returns the section identifier.
func (s *DiarySection) ID() string {
	return SectionIDDiary
}

// Data returns the current configuration data.
func (s *DiarySection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"storage_dir":   s.StorageDir,
		"max_images":    s.MaxImages,
		"default_style": s.DefaultStyle,
	}
}

// SetData updates the configuration from the provided data.
func (s *DiarySection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir, ok := data["storage_dir"].(string); ok {
		s.StorageDir = dir
	}
	switch v := data["max_images"].(type) {
	case int:
		if v > 0 {
			s.MaxImages = v
		}
	case float64:
		if v > 0 {
			s.MaxImages = int(v)
		}
	}
	if style, ok := data["default_style"].(string); ok {
		s.DefaultStyle = style
	}
	return nil
}

// GetStorageDir returns the configured storage directory, falling back
// to ~/.snaplog/diaries when unset.
func (s *DiarySection) GetStorageDir() string {
	s.mu.RLock()
	dir := s.StorageDir
	s.mu.RUnlock()

	if dir != "" {
		return dir
	}
	return DefaultStorageDir()
}

// GetMaxImages returns the configured per-generation image cap.
func (s *DiarySection) GetMaxImages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.MaxImages <= 0 {
		return DefaultMaxImages
	}
	return s.MaxImages
}

// GetDefaultStyle returns the configured default style tag, or "".
func (s *DiarySection) GetDefaultStyle() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.DefaultStyle
}

// DefaultStorageDir returns the default diary storage root. Falls back
// to a relative directory when the home directory cannot be resolved.
func DefaultStorageDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "diaries"
	}
	return filepath.Join(homeDir, ".snaplog", "diaries")
}
