package score

import "time"

// Analysis is the diagnostic report for one image.
type Analysis struct {
	Score    int      `json:"score"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	// Breakdown is present only when the signals actually ran; the
	// no-metadata and failure paths report a fixed score without one.
	Breakdown *Breakdown `json:"breakdown,omitempty"`
}

// Breakdown holds per-category sub-scores, each computed as 10 minus that
// category's penalty. Unlike the composite score these values are NOT
// clamped: an AI detection (penalty 9) yields 1, and a penalty above 10
// would go negative. The asymmetry is deliberate and relied upon by
// downstream consumers.
type Breakdown struct {
	Software     int `json:"software"`
	AIDetection  int `json:"aiDetection"`
	Consistency  int `json:"consistency"`
	Completeness int `json:"completeness"`
	Anomalies    int `json:"anomalies"`
}

const (
	baseline = 10
	minScore = 1
	maxScore = 10
)

// Evaluate runs all five signal categories over the tag mapping and folds
// them into a composite score: baseline 10 minus the summed penalties,
// clamped to [1,10]. Issues and warnings keep category execution order.
func Evaluate(tags map[string]string, now time.Time) Analysis {
	cats := [5]signal{
		checkSoftware(tags),
		checkCameraPresence(tags),
		checkTimestampConsistency(tags),
		checkCompleteness(tags),
		checkTimestampAnomalies(tags, now),
	}

	total := 0
	var issues, warnings []string
	for _, c := range cats {
		total += c.penalty
		issues = append(issues, c.issues...)
		warnings = append(warnings, c.warnings...)
	}

	return Analysis{
		Score:    clamp(baseline - total),
		Issues:   issues,
		Warnings: warnings,
		Breakdown: &Breakdown{
			Software:     baseline - cats[0].penalty,
			AIDetection:  baseline - cats[1].penalty,
			Consistency:  baseline - cats[2].penalty,
			Completeness: baseline - cats[3].penalty,
			Anomalies:    baseline - cats[4].penalty,
		},
	}
}

func clamp(s int) int {
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}
