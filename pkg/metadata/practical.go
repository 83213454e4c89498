package metadata

import (
	"fmt"
	"time"
)

// PracticalInfo is the normalized capture-time/location pair derived
// from a raw tag map. Empty fields mean the information was absent or
// undecodable; both cases are expected. Never mutated after creation.
type PracticalInfo struct {
	// Time is the capture time as "YYYY-MM-DD HH:MM", or "".
	Time string

	// Location is a human-readable coarse hint carrying coordinates
	// rounded to two decimal places, or "". Raw GPS tag content is
	// never exposed here.
	Location string
}

// timeTagPriority is the order in which capture timestamp tags are
// consulted: original capture, digitized, then the generic timestamp.
var timeTagPriority = []string{TagDateTimeOriginal, TagDateTimeDigitized, TagDateTime}

const exifTimeLayout = "2006:01:02 15:04:05"

// Normalize distills a raw tag map into practical info. It never fails:
// missing tags, malformed timestamps, and undecodable GPS data all
// result in absent fields.
func Normalize(md Metadata) PracticalInfo {
	return PracticalInfo{
		Time:     normalizeTime(md),
		Location: normalizeLocation(md),
	}
}

// normalizeTime returns the first syntactically valid capture timestamp
// reformatted as "YYYY-MM-DD HH:MM" (seconds dropped), or "".
func normalizeTime(md Metadata) string {
	for _, tag := range timeTagPriority {
		s, ok := md[tag].(string)
		if !ok || len(s) < len(exifTimeLayout) {
			continue
		}
		t, err := time.Parse(exifTimeLayout, s[:len(exifTimeLayout)])
		if err != nil {
			continue
		}
		return t.Format("2006-01-02 15:04")
	}
	return ""
}

// normalizeLocation decodes the GPS tag group into a coarse coordinate
// hint. The hint is emitted only when both latitude and longitude decode
// successfully; any error anywhere in the path yields "".
func normalizeLocation(md Metadata) string {
	lat, err := degrees(md[TagGPSLatitude])
	if err != nil {
		return ""
	}
	lon, err := degrees(md[TagGPSLongitude])
	if err != nil {
		return ""
	}

	if ref, ok := md[TagGPSLatitudeRef].(string); ok && ref == "S" {
		lat = -lat
	}
	if ref, ok := md[TagGPSLongitudeRef].(string); ok && ref == "W" {
		lon = -lon
	}

	return fmt.Sprintf("approximate coordinates (lat %.2f, lon %.2f)", lat, lon)
}

// degrees converts a degree/minute/second rational triple to decimal
// degrees.
func degrees(v interface{}) (float64, error) {
	triple, ok := v.([]Rational)
	if !ok || len(triple) != 3 {
		return 0, fmt.Errorf("not a degree/minute/second triple: %v", v)
	}
	parts := make([]float64, 3)
	for i, r := range triple {
		if r.Den == 0 {
			return 0, fmt.Errorf("zero denominator in GPS rational")
		}
		parts[i] = float64(r.Num) / float64(r.Den)
	}
	return parts[0] + parts[1]/60.0 + parts[2]/3600.0, nil
}
