package metadata

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	// Register the decoders for the supported input formats.
	_ "image/jpeg"
	_ "image/png"
)

// Extract reads an image file and returns its metadata: intrinsic
// properties (pixel dimensions, format, color mode) plus any embedded
// capture tags, with numeric tag IDs resolved to human-readable names.
//
// Formats without embedded tag support (PNG) yield intrinsic properties
// only. Any failure is non-fatal for the pipeline: the returned map is
// empty, and the error exists purely so the caller can log a diagnostic
// before proceeding with an empty hint.
func Extract(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	md := Metadata{
		KeyWidth:     cfg.Width,
		KeyHeight:    cfg.Height,
		KeyFormat:    format,
		KeyColorMode: colorMode(cfg.ColorModel),
	}

	// Rewind and attempt an EXIF pass. Missing or unsupported tag data
	// is expected for many inputs and leaves the intrinsics untouched.
	if _, err := f.Seek(0, 0); err != nil {
		return md, nil
	}
	x, err := exif.Decode(f)
	if err != nil {
		return md, nil
	}

	collector := tagCollector{md: md}
	_ = x.Walk(&collector)

	return md, nil
}

// tagCollector copies every walked EXIF field into the metadata map,
// converting tag values to plain Go types.
type tagCollector struct {
	md Metadata
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.md[string(name)] = tagValue(tag)
	return nil
}

// tagValue converts a TIFF tag to a plain Go value. Rational tags keep
// their numerator/denominator pairs so GPS degree/minute/second triples
// survive for the normalizer to decode.
func tagValue(tag *tiff.Tag) interface{} {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return tag.String()
		}
		return s
	case tiff.IntVal:
		if tag.Count == 1 {
			v, err := tag.Int(0)
			if err != nil {
				return tag.String()
			}
			return v
		}
		vals := make([]int, 0, tag.Count)
		for i := 0; i < int(tag.Count); i++ {
			v, err := tag.Int(i)
			if err != nil {
				return tag.String()
			}
			vals = append(vals, v)
		}
		return vals
	case tiff.FloatVal:
		v, err := tag.Float(0)
		if err != nil {
			return tag.String()
		}
		return v
	case tiff.RatVal:
		vals := make([]Rational, 0, tag.Count)
		for i := 0; i < int(tag.Count); i++ {
			num, den, err := tag.Rat2(i)
			if err != nil {
				return tag.String()
			}
			vals = append(vals, Rational{Num: num, Den: den})
		}
		if len(vals) == 1 {
			return vals[0]
		}
		return vals
	default:
		return tag.String()
	}
}

// colorMode names the color model of a decoded image config.
func colorMode(model color.Model) string {
	switch model {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	}
	if _, ok := model.(color.Palette); ok {
		return "Paletted"
	}
	return "unknown"
}
