package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesFixedOrder(t *testing.T) {
	labels := []string{}
	for _, s := range Styles() {
		labels = append(labels, s.Label)
	}

	assert.Equal(t, []string{
		"natural and relaxed",
		"emotional and lyrical",
		"concise and clear",
		"detailed and specific",
	}, labels)
}

func TestStylesReturnsACopy(t *testing.T) {
	styles := Styles()
	styles[0] = Style{Label: "mutated", Tag: "mutated"}

	assert.Equal(t, "natural and relaxed", Styles()[0].Label)
}

func TestStyleByLabel(t *testing.T) {
	style, ok := StyleByLabel("concise and clear")
	require.True(t, ok)
	assert.Equal(t, "concise", style.Tag)

	_, ok = StyleByLabel("extremely flowery")
	assert.False(t, ok)
}

func TestStyleByTag(t *testing.T) {
	style, ok := StyleByTag("emotional")
	require.True(t, ok)
	assert.Equal(t, "emotional and lyrical", style.Label)

	_, ok = StyleByTag("freeform")
	assert.False(t, ok)
}
