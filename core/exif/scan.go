// Package exif extracts camera metadata from JPEG byte buffers.
//
// Two strategies are provided. Scan is the default "scan-v1" strategy: a
// best-effort substring match over the first APP1 segment that deliberately
// does not walk the TIFF/IFD tag table. Its false negatives (NUL padding
// variations, non-ASCII layouts) are part of the scoring contract and must
// not be "fixed" here. ScanFull is the separate "ifd-v2" strategy backed by
// a full EXIF decoder; it exists for inspection and is never substituted
// into the scoring pipeline.
package exif

import (
	"encoding/binary"
	"regexp"
)

// Tags maps an EXIF tag name to its extracted string value. A key is present
// only if the tag was found; absence is meaningful to the scorer.
type Tags map[string]string

// Strategy identifiers, reported alongside extraction output.
const (
	StrategyScan = "scan-v1"
	StrategyFull = "ifd-v2"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8 // start of image
	markerAPP1   = 0xE1 // EXIF application segment
)

// tagNames are the only fields the scan strategy looks for. CreateDate and
// ModifyDate are intentionally not in this list; the scorer checks them
// defensively but the scan never produces them.
var tagNames = []string{"Software", "Make", "Model", "DateTime", "DateTimeOriginal"}

// Each pattern is "tag name, one NUL, then a run of non-NUL bytes".
// "DateTime" cannot false-match inside "DateTimeOriginal" because the NUL
// must follow the name immediately.
var tagPatterns = buildPatterns()

func buildPatterns() map[string]*regexp.Regexp {
	pats := make(map[string]*regexp.Regexp, len(tagNames))
	for _, name := range tagNames {
		pats[name] = regexp.MustCompile(name + "\x00([^\x00]+)")
	}
	return pats
}

// Scan runs the scan-v1 strategy over a JPEG buffer. It returns the tag
// mapping and true when at least one tag matched, or nil and false for
// non-JPEG input, a missing APP1 segment, a malformed segment, or zero
// matches. Scan never panics; parse failures degrade to "no metadata".
func Scan(data []byte) (tags Tags, ok bool) {
	defer func() {
		// Malformed length fields cause out-of-range slices; treat them
		// the same as an absent segment.
		if r := recover(); r != nil {
			tags, ok = nil, false
		}
	}()

	if len(data) < 2 || data[0] != markerPrefix || data[1] != markerSOI {
		return nil, false
	}

	start := -1
	for i := 0; i+1 < len(data); i++ {
		if data[i] == markerPrefix && data[i+1] == markerAPP1 {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	segLen := int(binary.BigEndian.Uint16(data[start+2 : start+4]))
	region := data[start+4 : start+2+segLen]

	tags = Tags{}
	for name, re := range tagPatterns {
		if m := re.FindSubmatch(region); m != nil {
			tags[name] = string(m[1])
		}
	}
	if len(tags) == 0 {
		return nil, false
	}
	return tags, true
}
