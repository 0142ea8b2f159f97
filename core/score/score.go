// Package score implements the five-signal authenticity heuristics and the
// composite 1-10 trust score. Each signal is a pure function of the tag
// mapping (and, for future-timestamp detection, the current time); signals
// run independently and never short-circuit one another.
package score

import (
	"fmt"
	"strings"
	"time"
)

// Editing tool name fragments, matched case-insensitively against the
// Software, Make and Model tags. First match wins; multiple matches do not
// stack.
var editingTools = []string{
	"photoshop",
	"lightroom",
	"gimp",
	"paint.net",
	"affinity",
	"pixelmator",
	"snapseed",
	"picsart",
	"canva",
	"luminar",
}

// AI generation tool name fragments. A match overrides any editing-tool
// penalty with the near-certain penalty.
var aiTools = []string{
	"midjourney",
	"dall-e",
	"dalle",
	"stable diffusion",
	"stablediffusion",
	"leonardo",
	"firefly",
	"comfyui",
	"runway",
	"imagen",
	"ideogram",
	"flux",
}

const (
	penaltyEditing      = 4
	penaltyAIGenerated  = 9
	penaltyNoCameraInfo = 2
	penaltyLargeGap     = 2
	penaltySmallGap     = 1
	penaltyIdentical    = 1
	penaltyFuture       = 2
)

// signal is one category's contribution to the report.
type signal struct {
	penalty  int
	issues   []string
	warnings []string
}

// checkSoftware detects editing and AI tools in the Software, Make and
// Model tags.
func checkSoftware(tags map[string]string) signal {
	var s signal
	fields := []string{
		strings.ToLower(tags["Software"]),
		strings.ToLower(tags["Make"]),
		strings.ToLower(tags["Model"]),
	}
	for _, tool := range editingTools {
		if containsAny(fields, tool) {
			s.penalty = penaltyEditing
			s.issues = append(s.issues, "Editing software detected: "+tool)
			break
		}
	}
	for _, tool := range aiTools {
		if containsAny(fields, tool) {
			// Override, not add: an AI match makes the editing
			// penalty irrelevant.
			s.penalty = penaltyAIGenerated
			s.issues = append(s.issues, "AI generation tool detected: "+tool)
			break
		}
	}
	return s
}

func containsAny(fields []string, fragment string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(f, fragment) {
			return true
		}
	}
	return false
}

// checkCameraPresence treats a missing manufacturer and model pair as a
// proxy for synthetic or heavily stripped images.
func checkCameraPresence(tags map[string]string) signal {
	var s signal
	if tags["Make"] == "" && tags["Model"] == "" {
		s.penalty = penaltyNoCameraInfo
		s.issues = append(s.issues, "Missing camera make and model information")
	}
	return s
}

// timestampSlots returns the present values among DateTimeOriginal,
// CreateDate and ModifyDate/DateTime, in that order. CreateDate is checked
// even though the scan strategy never extracts it; callers supplying
// hand-built tag maps may still populate it.
func timestampSlots(tags map[string]string) []string {
	var vals []string
	if v := tags["DateTimeOriginal"]; v != "" {
		vals = append(vals, v)
	}
	if v := tags["CreateDate"]; v != "" {
		vals = append(vals, v)
	}
	if v := tags["ModifyDate"]; v != "" {
		vals = append(vals, v)
	} else if v := tags["DateTime"]; v != "" {
		vals = append(vals, v)
	}
	return vals
}

// checkTimestampConsistency compares the capture timestamp against the
// modification timestamp when at least two timestamp fields are present.
// Unparseable dates are silently skipped.
func checkTimestampConsistency(tags map[string]string) signal {
	var s signal
	if len(timestampSlots(tags)) < 2 {
		return s
	}

	original := tags["DateTimeOriginal"]
	if original == "" {
		original = tags["CreateDate"]
	}
	modified := tags["ModifyDate"]
	if modified == "" {
		modified = tags["DateTime"]
	}

	origTime, okO := ParseDate(original)
	modTime, okM := ParseDate(modified)
	if !okO || !okM {
		return s
	}

	diff := modTime.Sub(origTime)
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff > 24*time.Hour:
		s.penalty = penaltyLargeGap
		s.warnings = append(s.warnings,
			fmt.Sprintf("Timestamps differ by %d days", int(diff.Hours()/24)))
	case diff > time.Hour:
		s.penalty = penaltySmallGap
		s.warnings = append(s.warnings,
			fmt.Sprintf("Timestamps differ by %d hours", int(diff.Hours())))
	}
	return s
}

// checkCompleteness penalizes one point per missing field among Make,
// Model and DateTime.
func checkCompleteness(tags map[string]string) signal {
	var s signal
	missing := 0
	for _, name := range []string{"Make", "Model", "DateTime"} {
		if tags[name] == "" {
			missing++
		}
	}
	if missing > 0 {
		s.penalty = missing
		s.warnings = append(s.warnings,
			fmt.Sprintf("%d metadata fields missing", missing))
	}
	return s
}

// checkTimestampAnomalies flags three-or-more textually identical
// timestamps and any timestamp later than the current wall clock. The
// future penalty stacks once per offending field.
func checkTimestampAnomalies(tags map[string]string, now time.Time) signal {
	var s signal
	vals := timestampSlots(tags)

	if len(vals) >= 3 {
		identical := true
		for _, v := range vals[1:] {
			if v != vals[0] {
				identical = false
				break
			}
		}
		if identical {
			s.penalty += penaltyIdentical
			s.warnings = append(s.warnings, "All timestamps are identical")
		}
	}

	for _, v := range vals {
		if t, ok := ParseDate(v); ok && t.After(now) {
			s.penalty += penaltyFuture
			s.warnings = append(s.warnings, "Timestamp is in the future: "+v)
		}
	}
	return s
}

// ParseDate converts the EXIF "YYYY:MM:DD HH:MM:SS" layout to a parseable
// form by replacing the first two colons with dashes. The second return is
// false for anything that still fails to parse.
func ParseDate(v string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04:05", strings.Replace(v, ":", "-", 2))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
