// Package diary turns a set of photos into a natural-language day log
// entry: embedded metadata becomes per-image hints, hints and image
// payloads become a single generation request, and the external model's
// response becomes the entry text.
package diary

// Style is one entry of the fixed writing-style catalog. The external
// label is inserted verbatim into the generation instruction; the tag is
// the short internal identifier persisted with saved entries.
type Style struct {
	Label string
	Tag   string
}

// styleCatalog is the fixed, ordered set of selectable styles. The core
// accepts no freeform style strings; callers present exactly these.
var styleCatalog = []Style{
	{Label: "natural and relaxed", Tag: "natural"},
	{Label: "emotional and lyrical", Tag: "emotional"},
	{Label: "concise and clear", Tag: "concise"},
	{Label: "detailed and specific", Tag: "detailed"},
}

// DefaultStyle is used when the caller does not pick one.
var DefaultStyle = styleCatalog[0]

// Styles returns the style catalog in its fixed order.
func Styles() []Style {
	out := make([]Style, len(styleCatalog))
	copy(out, styleCatalog)
	return out
}

// StyleByLabel resolves an external style label to its catalog entry.
func StyleByLabel(label string) (Style, bool) {
	for _, s := range styleCatalog {
		if s.Label == label {
			return s, true
		}
	}
	return Style{}, false
}

// StyleByTag resolves an internal style tag to its catalog entry.
func StyleByTag(tag string) (Style, bool) {
	for _, s := range styleCatalog {
		if s.Tag == tag {
			return s, true
		}
	}
	return Style{}, false
}

// isCatalogStyle reports whether s is exactly one of the catalog entries.
func isCatalogStyle(s Style) bool {
	for _, c := range styleCatalog {
		if c == s {
			return true
		}
	}
	return false
}
