package diary

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/snaplog/pkg/metadata"
	"github.com/entrhq/snaplog/pkg/types"
)

// stubProvider records the request it receives and returns a canned
// response or error.
type stubProvider struct {
	response string
	err      error
	received []*types.Message
}

func (s *stubProvider) Complete(_ context.Context, messages []*types.Message) (*types.Message, error) {
	s.received = messages
	if s.err != nil {
		return nil, s.err
	}
	return types.NewAssistantMessage(s.response), nil
}

func (s *stubProvider) GetModelInfo() *types.ModelInfo {
	return &types.ModelInfo{Provider: "stub", Name: "stub", SupportsVision: true}
}

func (s *stubProvider) GetModel() string   { return "stub" }
func (s *stubProvider) GetBaseURL() string { return "" }

// writePlainImages writes n metadata-free PNGs into a temp dir.
func writePlainImages(t *testing.T, n int) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		path := filepath.Join(dir, "photo"+string(rune('a'+i))+".png")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
		require.NoError(t, f.Close())
		paths[i] = path
	}
	return paths
}

func TestGenerateEndToEndWithoutMetadata(t *testing.T) {
	paths := writePlainImages(t, 3)
	provider := &stubProvider{response: "Spent the morning out with the camera. A quiet, good day."}
	g := NewGenerator(provider, nil)

	style, ok := StyleByLabel("concise and clear")
	require.True(t, ok)

	text, err := g.Generate(context.Background(), paths, style)

	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Equal(t, provider.response, text)

	// One user message: instruction first, then all three payloads in order.
	require.Len(t, provider.received, 1)
	msg := provider.received[0]
	assert.Equal(t, types.RoleUser, msg.Role)
	assert.Equal(t, 3, msg.ImageCount())
	assert.Contains(t, msg.Text(), "concise and clear tone")
	assert.Contains(t, msg.Text(), "Photo 1: no metadata")
	assert.Contains(t, msg.Text(), "Photo 3: no metadata")
}

func TestGenerateReturnsResponseUnmodified(t *testing.T) {
	paths := writePlainImages(t, 1)
	provider := &stubProvider{response: "  raw text with whitespace  \n"}
	g := NewGenerator(provider, nil)

	text, err := g.Generate(context.Background(), paths, DefaultStyle)

	require.NoError(t, err)
	assert.Equal(t, "  raw text with whitespace  \n", text)
}

func TestGenerateSurfacesCapabilityError(t *testing.T) {
	paths := writePlainImages(t, 1)
	provider := &stubProvider{err: errors.New("quota exhausted")}
	g := NewGenerator(provider, nil)

	_, err := g.Generate(context.Background(), paths, DefaultStyle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestGenerateWithFallbackEmbedsErrorOnce(t *testing.T) {
	paths := writePlainImages(t, 2)
	provider := &stubProvider{err: errors.New("connection reset by peer")}
	g := NewGenerator(provider, nil)

	text := g.GenerateWithFallback(context.Background(), paths, DefaultStyle)

	assert.NotEmpty(t, text)
	assert.Equal(t, 1, strings.Count(text, "connection reset by peer"))
	// The fallback must be recognizable as such by a human reader.
	assert.Contains(t, text, "An error occurred while generating this day log")
}

func TestGenerateWithFallbackPassesThroughSuccess(t *testing.T) {
	paths := writePlainImages(t, 1)
	provider := &stubProvider{response: "a real entry"}
	g := NewGenerator(provider, nil)

	assert.Equal(t, "a real entry", g.GenerateWithFallback(context.Background(), paths, DefaultStyle))
}

func TestCollectHintsLengthMatchesPathsOnFailures(t *testing.T) {
	good := writePlainImages(t, 1)
	paths := []string{
		good[0],
		filepath.Join(t.TempDir(), "missing.jpg"),
		filepath.Join(t.TempDir(), "also-missing.png"),
	}
	g := NewGenerator(&stubProvider{response: "ok"}, nil)

	hints := g.CollectHints(paths)

	require.Len(t, hints, len(paths))
	// Failed extractions contribute empty hints, not dropped entries.
	assert.Empty(t, hints[1])
	assert.Empty(t, hints[2])
}

func TestGenerateSkipsUnreadablePayloadsButKeepsHints(t *testing.T) {
	good := writePlainImages(t, 1)
	paths := append(good, filepath.Join(t.TempDir(), "missing.jpg"))
	provider := &stubProvider{response: "entry"}
	g := NewGenerator(provider, nil)

	_, err := g.Generate(context.Background(), paths, DefaultStyle)

	require.NoError(t, err)
	msg := provider.received[0]
	assert.Equal(t, 1, msg.ImageCount())
	assert.Contains(t, msg.Text(), "Photo 2: no metadata")
}

func TestCompareStylesCoversCatalog(t *testing.T) {
	paths := writePlainImages(t, 1)
	provider := &stubProvider{response: "entry"}
	g := NewGenerator(provider, nil)

	results := g.CompareStyles(context.Background(), paths)

	require.Len(t, results, len(Styles()))
	for _, s := range Styles() {
		assert.Equal(t, "entry", results[s.Label])
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name     string
		time     string
		location string
		want     string
	}{
		{name: "nothing", want: ""},
		{name: "time only", time: "2023-12-25 14:30", want: "taken at 2023-12-25 14:30"},
		{name: "location only", location: "approximate coordinates (lat 37.55, lon 126.98)",
			want: "approximate coordinates (lat 37.55, lon 126.98)"},
		{name: "both", time: "2023-12-25 14:30", location: "approximate coordinates (lat 37.55, lon 126.98)",
			want: "taken at 2023-12-25 14:30 | approximate coordinates (lat 37.55, lon 126.98)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(metadata.PracticalInfo{Time: tt.time, Location: tt.location})
			assert.Equal(t, tt.want, got)
		})
	}
}
