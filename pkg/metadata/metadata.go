// Package metadata extracts embedded tags from image files and distills
// them into the practical information (capture time, coarse location)
// the diary pipeline feeds into generation prompts.
package metadata

// Metadata maps resolved tag names to raw tag values. Values are plain
// Go types: string for ASCII tags, int/[]int for integral tags, float64
// for floating tags, Rational/[]Rational for rational tags, and a string
// rendering for anything else. Intrinsic image properties (Width, Height,
// Format, ColorMode) are always present when the file decodes.
type Metadata map[string]interface{}

// Rational is an unreduced EXIF rational value.
type Rational struct {
	Num int64
	Den int64
}

// Intrinsic property keys, present for any decodable image.
const (
	KeyWidth     = "Width"
	KeyHeight    = "Height"
	KeyFormat    = "Format"
	KeyColorMode = "ColorMode"
)

// Embedded capture tag names consulted by Normalize. goexif resolves
// numeric EXIF tag IDs to these names during extraction.
const (
	TagDateTime          = "DateTime"
	TagDateTimeOriginal  = "DateTimeOriginal"
	TagDateTimeDigitized = "DateTimeDigitized"
	TagGPSLatitude       = "GPSLatitude"
	TagGPSLatitudeRef    = "GPSLatitudeRef"
	TagGPSLongitude      = "GPSLongitude"
	TagGPSLongitudeRef   = "GPSLongitudeRef"
)
