package diary

import (
	"fmt"
	"strings"

	"github.com/entrhq/snaplog/pkg/types"
)

// NoMetadataMarker is written in place of a hint for images that yielded
// no practical information.
const NoMetadataMarker = "no metadata"

// ImagePayload is one image to be inlined into the generation request.
type ImagePayload struct {
	Data      []byte
	MediaType string
}

// Request is a fully composed generation request: one instruction block
// followed by the image payloads in their original order. Built fresh
// per invocation and never persisted.
type Request struct {
	Instruction string
	Images      []ImagePayload
	Style       Style
}

// Compose builds a generation request from ordered image payloads, their
// per-image hints, and a style from the catalog.
//
// The instruction block combines the style label inserted into the fixed
// template, then the numbered hints (or the no-metadata marker where a
// hint is empty). Image order is preserved end to end and determines the
// implied chronology; images are never resequenced by extracted
// timestamp.
//
// Passing a style that is not from the catalog is a programming error
// and panics. Callers resolve user input through StyleByLabel first.
func Compose(images []ImagePayload, hints []string, style Style) *Request {
	if !isCatalogStyle(style) {
		panic(fmt.Sprintf("diary: style %q is not in the style catalog", style.Label))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Look at these photos and write a record of the day in a %s tone.\n\n", style.Label)

	b.WriteString("Capture information for reference:\n")
	if len(hints) == 0 {
		b.WriteString("no metadata available\n")
	}
	for i, hint := range hints {
		if hint == "" {
			hint = NoMetadataMarker
		}
		fmt.Fprintf(&b, "Photo %d: %s\n", i+1, hint)
	}

	b.WriteString(`
Writing guidelines:
1. Write naturally and comfortably, as if telling a friend about your day.
2. Avoid excessive sentiment and literary embellishment; center the record on what actually happened.
3. Weave in times, places, activities, and the people involved where they fit naturally.
4. Keep the photos' order so the flow of the day comes through.
5. Keep the entry a comfortable length to read, neither too long nor too short.

Write it like a diary entry: an unexaggerated, natural record of real experience.
`)

	return &Request{
		Instruction: b.String(),
		Images:      images,
		Style:       style,
	}
}

// ToMessage renders the request as a single user message: the
// instruction text first, then every image payload in request order.
func (r *Request) ToMessage() *types.Message {
	parts := make([]types.ContentPart, 0, len(r.Images)+1)
	parts = append(parts, types.NewTextPart(r.Instruction))
	for _, img := range r.Images {
		parts = append(parts, types.NewImagePart(img.Data, img.MediaType))
	}
	return types.NewUserMessage(parts...)
}
