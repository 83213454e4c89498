// Package main provides the SnapLog command line interface: generate a
// natural day log entry from a set of photos, optionally save it, and
// browse previously saved entries.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	appconfig "github.com/entrhq/snaplog/pkg/config"
	"github.com/entrhq/snaplog/pkg/diary"
	"github.com/entrhq/snaplog/pkg/diary/recordstore"
	"github.com/entrhq/snaplog/pkg/logging"
)

const version = "0.1.0"

var (
	dateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	timeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	metaStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	Images      string
	Style       string
	Date        string
	Save        bool
	List        bool
	Compare     bool
	ConfigFile  string
	Model       string
	BaseURL     string
	APIKey      string
	StorageDir  string
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("SnapLog v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		log.Printf("snaplog: %v", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	config := &CLIConfig{}

	flag.StringVar(&config.Images, "images", "", "Images to process: directory, glob pattern, comma-separated paths, or '-' for stdin")
	flag.StringVar(&config.Style, "style", "", "Writing style label (see Styles below)")
	flag.StringVar(&config.Date, "date", "", "Save date as YYYY-MM-DD (default today)")
	flag.BoolVar(&config.Save, "save", false, "Save the generated entry to the diary store")
	flag.BoolVar(&config.List, "list", false, "List saved entries instead of generating")
	flag.BoolVar(&config.Compare, "compare", false, "Generate one entry per style for comparison")
	flag.StringVar(&config.ConfigFile, "config", "", "Path to configuration file (default ~/.snaplog/config.yaml)")
	flag.StringVar(&config.Model, "model", "", "LLM model to use")
	flag.StringVar(&config.BaseURL, "base-url", "", "OpenAI-compatible API base URL")
	flag.StringVar(&config.APIKey, "api-key", "", "API key (defaults to OPENAI_API_KEY)")
	flag.StringVar(&config.StorageDir, "storage-dir", "", "Diary storage directory")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SnapLog - natural day logs from your photos\n\n")
		fmt.Fprintf(os.Stderr, "Usage: snaplog [options]\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nStyles:\n")
		for _, s := range diary.Styles() {
			fmt.Fprintf(os.Stderr, "  %-24s(%s)\n", s.Label, s.Tag)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  snaplog -images ./photos -style \"concise and clear\" -save\n")
		fmt.Fprintf(os.Stderr, "  snaplog -images \"trip/*.jpg\" -compare\n")
		fmt.Fprintf(os.Stderr, "  snaplog -list\n")
	}

	flag.Parse()
	return config
}

func run(ctx context.Context, config *CLIConfig) error {
	if err := appconfig.Initialize(config.ConfigFile); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger("cli")
	if err != nil {
		log.Printf("file logging unavailable: %v", err)
	}
	defer logger.Close()

	store := recordstore.New(storageDir(config), recordstore.WithLogger(logger))

	if config.List {
		return runList(store)
	}
	if config.Images == "" {
		flag.Usage()
		return fmt.Errorf("-images is required (or use -list)")
	}
	return runGenerate(ctx, config, store, logger)
}

// runGenerate drives the generation pipeline and optionally saves the
// result.
func runGenerate(ctx context.Context, config *CLIConfig, store *recordstore.Store, logger *logging.Logger) error {
	paths, cleanup, err := resolveImages(config.Images)
	if err != nil {
		return err
	}
	defer cleanup()

	// Truncation to the configured cap is a caller concern; the
	// generator processes whatever it receives.
	maxImages := appconfig.GetDiary().GetMaxImages()
	if len(paths) > maxImages {
		logger.Warnf("truncating %d images to the configured maximum of %d", len(paths), maxImages)
		fmt.Fprintf(os.Stderr, "note: using the first %d of %d images\n", maxImages, len(paths))
		paths = diary.Truncate(paths, maxImages)
	}

	style, err := resolveStyle(config.Style)
	if err != nil {
		return err
	}

	provider, err := appconfig.BuildProvider(config.Model, config.BaseURL, config.APIKey)
	if err != nil {
		return err
	}
	logger.Infof("using model %s at %s", provider.GetModel(), provider.GetBaseURL())

	generator := diary.NewGenerator(provider, logger)

	if config.Compare {
		results := generator.CompareStyles(ctx, paths)
		for _, s := range diary.Styles() {
			fmt.Println(titleStyle.Render(s.Label))
			fmt.Println(results[s.Label])
			fmt.Println()
		}
		return nil
	}

	text := generator.GenerateWithFallback(ctx, paths, style)
	fmt.Println(text)

	if config.Save {
		day, err := saveDate(config.Date)
		if err != nil {
			return err
		}
		path, err := store.Save(text, day, style.Tag, len(paths))
		if err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved to %s\n", path)
	}
	return nil
}

// runList prints every saved entry, newest date first.
func runList(store *recordstore.Store) error {
	docs, err := store.ListAll()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("no saved entries")
		return nil
	}

	for _, date := range recordstore.SortedDatesDesc(docs) {
		fmt.Println(dateStyle.Render(date))
		doc := docs[date]
		for _, key := range recordstore.SortedKeys(doc) {
			entry := doc[key]
			fmt.Printf("  %s %s\n", timeStyle.Render(key),
				metaStyle.Render(fmt.Sprintf("style: %s | photos: %d", entry.Style, entry.ImageCount)))
			for _, line := range strings.Split(strings.TrimRight(entry.Content, "\n"), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
		fmt.Println()
	}
	return nil
}

// resolveImages expands the -images argument into ordered image paths.
// The returned cleanup func removes any temp files materialized along
// the way and must run on every exit path.
func resolveImages(arg string) ([]string, func(), error) {
	cleanup := func() {}

	if arg == "-" {
		path, err := stdinToTempImage()
		if err != nil {
			return nil, cleanup, err
		}
		return []string{path}, func() { os.Remove(path) }, nil
	}

	var paths []string
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found, err := diary.CollectImages(part)
		if err != nil {
			return nil, cleanup, err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, cleanup, fmt.Errorf("no images found for %q", arg)
	}
	return paths, cleanup, nil
}

// stdinToTempImage copies stdin to a temp file so it can cross the
// path-based extractor interface.
func stdinToTempImage() (string, error) {
	f, err := os.CreateTemp("", "snaplog-*.jpg")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	if _, err := io.Copy(f, os.Stdin); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to read image from stdin: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}
	return f.Name(), nil
}

// resolveStyle maps the -style flag (or the configured default) to a
// catalog style.
func resolveStyle(label string) (diary.Style, error) {
	if label == "" {
		if tag := appconfig.GetDiary().GetDefaultStyle(); tag != "" {
			if style, ok := diary.StyleByTag(tag); ok {
				return style, nil
			}
		}
		return diary.DefaultStyle, nil
	}
	style, ok := diary.StyleByLabel(label)
	if !ok {
		labels := make([]string, 0, len(diary.Styles()))
		for _, s := range diary.Styles() {
			labels = append(labels, fmt.Sprintf("%q", s.Label))
		}
		return diary.Style{}, fmt.Errorf("unknown style %q: choose one of %s", label, strings.Join(labels, ", "))
	}
	return style, nil
}

// saveDate parses the -date flag, defaulting to today.
func saveDate(arg string) (time.Time, error) {
	if arg == "" {
		return time.Now(), nil
	}
	day, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -date %q (want YYYY-MM-DD): %w", arg, err)
	}
	return day, nil
}

func storageDir(config *CLIConfig) string {
	if config.StorageDir != "" {
		return config.StorageDir
	}
	return appconfig.GetDiary().GetStorageDir()
}
