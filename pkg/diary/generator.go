package diary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/entrhq/snaplog/pkg/llm"
	"github.com/entrhq/snaplog/pkg/logging"
	"github.com/entrhq/snaplog/pkg/metadata"
	"github.com/entrhq/snaplog/pkg/types"
)

// Generator orchestrates the pipeline: per-image metadata extraction and
// normalization, prompt composition, and the external model call.
type Generator struct {
	provider llm.Provider
	logger   *logging.Logger
}

// NewGenerator creates a generator backed by the given provider. A nil
// logger disables diagnostics.
func NewGenerator(provider llm.Provider, logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{provider: provider, logger: logger}
}

// Generate produces a day log entry for the given images, processed
// sequentially in input order.
//
// Images whose metadata extraction fails still contribute an empty hint
// rather than being dropped, so the hint sequence is always exactly as
// long as the path sequence. The model's raw text response is returned
// unmodified. A capability failure is returned as an error so callers
// can tell real content from failure; use GenerateWithFallback for the
// never-fails contract.
func (g *Generator) Generate(ctx context.Context, paths []string, style Style) (string, error) {
	g.logger.Infof("generating day log for %d photo(s), style %q", len(paths), style.Label)

	hints := g.CollectHints(paths)
	images := g.loadPayloads(paths)

	req := Compose(images, hints, style)
	resp, err := g.provider.Complete(ctx, []*types.Message{req.ToMessage()})
	if err != nil {
		return "", fmt.Errorf("day log generation failed: %w", err)
	}

	return resp.Text(), nil
}

// GenerateWithFallback is Generate with the capability failure folded
// into the result: on any generation error it returns the fixed-shape
// fallback narrative instead. The fallback is valid output, not an error
// signal; callers that must distinguish should use Generate.
func (g *Generator) GenerateWithFallback(ctx context.Context, paths []string, style Style) string {
	text, err := g.Generate(ctx, paths, style)
	if err != nil {
		g.logger.Errorf("falling back after generation error: %v", err)
		return Fallback(err)
	}
	return text
}

// CompareStyles generates one entry per catalog style for the same image
// set, keyed by style label. Iterate Styles() for catalog order.
func (g *Generator) CompareStyles(ctx context.Context, paths []string) map[string]string {
	results := make(map[string]string, len(styleCatalog))
	for _, style := range styleCatalog {
		results[style.Label] = g.GenerateWithFallback(ctx, paths, style)
	}
	return results
}

// CollectHints runs extraction and normalization for every path and
// returns one hint string per image, in order. Extraction failures are
// logged and yield an empty hint for that image.
func (g *Generator) CollectHints(paths []string) []string {
	hints := make([]string, len(paths))
	for i, path := range paths {
		md, err := metadata.Extract(path)
		if err != nil {
			g.logger.Warnf("metadata extraction failed for %s: %v", path, err)
		}
		hints[i] = Hint(metadata.Normalize(md))
	}
	return hints
}

// Hint summarizes practical info as the short string inserted into the
// generation prompt. Returns "" when there is nothing to say.
func Hint(info metadata.PracticalInfo) string {
	var parts []string
	if info.Time != "" {
		parts = append(parts, "taken at "+info.Time)
	}
	if info.Location != "" {
		parts = append(parts, info.Location)
	}
	return strings.Join(parts, " | ")
}

// loadPayloads reads every image file into a payload, preserving order.
// An unreadable file is logged and skipped; its hint still reached the
// prompt, matching the recover-locally policy for extraction errors.
func (g *Generator) loadPayloads(paths []string) []ImagePayload {
	payloads := make([]ImagePayload, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			g.logger.Warnf("failed to read image %s: %v", path, err)
			continue
		}
		payloads = append(payloads, ImagePayload{Data: data, MediaType: MediaType(path)})
	}
	return payloads
}

// Fallback renders the fixed-shape narrative returned in place of a real
// entry when the generation capability fails. The error detail appears
// exactly once, and the opening line makes the text recognizable as a
// fallback to a human reader.
func Fallback(err error) string {
	return fmt.Sprintf(`An error occurred while generating this day log: %v

It was still a day with its own share of moments.
Judging by the photos kept from it, the time was spent meaningfully in its own way.
Even without a complete record, small ordinary days like this are what quietly add up to a life.
`, err)
}
