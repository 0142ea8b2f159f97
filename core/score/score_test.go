package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCheckSoftware_EditingTool(t *testing.T) {
	s := checkSoftware(map[string]string{"Software": "Adobe Photoshop 24.0"})
	assert.Equal(t, penaltyEditing, s.penalty)
	require.Len(t, s.issues, 1)
	assert.Contains(t, s.issues[0], "photoshop")
}

func TestCheckSoftware_NoStacking(t *testing.T) {
	// Two editing tools across fields still count once.
	s := checkSoftware(map[string]string{
		"Software": "Adobe Photoshop 24.0",
		"Model":    "GIMP export",
	})
	assert.Equal(t, penaltyEditing, s.penalty)
	assert.Len(t, s.issues, 1)
}

func TestCheckSoftware_AIOverridesEditing(t *testing.T) {
	s := checkSoftware(map[string]string{"Software": "Midjourney via Photoshop"})
	assert.Equal(t, penaltyAIGenerated, s.penalty)
	// Both detections are reported; only the penalty is overridden.
	assert.Len(t, s.issues, 2)
}

func TestCheckSoftware_AIInModelField(t *testing.T) {
	s := checkSoftware(map[string]string{"Model": "DALL-E 3"})
	assert.Equal(t, penaltyAIGenerated, s.penalty)
}

func TestCheckSoftware_CaseInsensitive(t *testing.T) {
	s := checkSoftware(map[string]string{"Software": "STABLE DIFFUSION XL"})
	assert.Equal(t, penaltyAIGenerated, s.penalty)
}

func TestCheckSoftware_Clean(t *testing.T) {
	s := checkSoftware(map[string]string{
		"Software": "Firmware 1.8.1",
		"Make":     "Canon",
		"Model":    "Canon EOS R5",
	})
	assert.Zero(t, s.penalty)
	assert.Empty(t, s.issues)
}

func TestCheckCameraPresence(t *testing.T) {
	s := checkCameraPresence(map[string]string{"Software": "anything"})
	assert.Equal(t, penaltyNoCameraInfo, s.penalty)

	// One of the two present is enough.
	s = checkCameraPresence(map[string]string{"Make": "Canon"})
	assert.Zero(t, s.penalty)
}

func TestCheckTimestampConsistency(t *testing.T) {
	tests := []struct {
		name        string
		tags        map[string]string
		wantPenalty int
		wantWarning string
	}{
		{
			name: "gap over 24 hours",
			tags: map[string]string{
				"DateTimeOriginal": "2023:01:01 10:00:00",
				"DateTime":         "2023:01:05 10:00:00",
			},
			wantPenalty: penaltyLargeGap,
			wantWarning: "Timestamps differ by 4 days",
		},
		{
			name: "gap over one hour",
			tags: map[string]string{
				"DateTimeOriginal": "2023:01:01 10:00:00",
				"DateTime":         "2023:01:01 13:30:00",
			},
			wantPenalty: penaltySmallGap,
			wantWarning: "Timestamps differ by 3 hours",
		},
		{
			name: "gap under one hour",
			tags: map[string]string{
				"DateTimeOriginal": "2023:01:01 10:00:00",
				"DateTime":         "2023:01:01 10:45:00",
			},
		},
		{
			name: "absolute difference regardless of order",
			tags: map[string]string{
				"DateTimeOriginal": "2023:01:05 10:00:00",
				"DateTime":         "2023:01:01 10:00:00",
			},
			wantPenalty: penaltyLargeGap,
			wantWarning: "Timestamps differ by 4 days",
		},
		{
			name: "single field skipped",
			tags: map[string]string{"DateTime": "2023:01:01 10:00:00"},
		},
		{
			name: "unparseable silently skipped",
			tags: map[string]string{
				"DateTimeOriginal": "sometime last summer",
				"DateTime":         "2023:01:01 10:00:00",
			},
		},
		{
			name: "CreateDate accepted as original",
			tags: map[string]string{
				"CreateDate": "2023:01:01 10:00:00",
				"DateTime":   "2023:01:03 10:00:00",
			},
			wantPenalty: penaltyLargeGap,
			wantWarning: "Timestamps differ by 2 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := checkTimestampConsistency(tt.tags)
			assert.Equal(t, tt.wantPenalty, s.penalty)
			if tt.wantWarning != "" {
				require.Len(t, s.warnings, 1)
				assert.Equal(t, tt.wantWarning, s.warnings[0])
			} else {
				assert.Empty(t, s.warnings)
			}
		})
	}
}

func TestCheckCompleteness(t *testing.T) {
	s := checkCompleteness(map[string]string{})
	assert.Equal(t, 3, s.penalty)
	require.Len(t, s.warnings, 1)
	assert.Equal(t, "3 metadata fields missing", s.warnings[0])

	s = checkCompleteness(map[string]string{"Make": "Canon", "DateTime": "x"})
	assert.Equal(t, 1, s.penalty)

	s = checkCompleteness(map[string]string{"Make": "a", "Model": "b", "DateTime": "c"})
	assert.Zero(t, s.penalty)
	assert.Empty(t, s.warnings)
}

func TestCheckTimestampAnomalies_Identical(t *testing.T) {
	ts := "2023:01:01 10:00:00"

	// Three identical values trip the check.
	s := checkTimestampAnomalies(map[string]string{
		"DateTimeOriginal": ts,
		"CreateDate":       ts,
		"ModifyDate":       ts,
	}, testNow)
	assert.Equal(t, penaltyIdentical, s.penalty)
	require.Len(t, s.warnings, 1)
	assert.Equal(t, "All timestamps are identical", s.warnings[0])

	// Two identical values are normal camera behavior.
	s = checkTimestampAnomalies(map[string]string{
		"DateTimeOriginal": ts,
		"DateTime":         ts,
	}, testNow)
	assert.Zero(t, s.penalty)
}

func TestCheckTimestampAnomalies_Future(t *testing.T) {
	s := checkTimestampAnomalies(map[string]string{
		"DateTimeOriginal": "2099:01:01 00:00:00",
	}, testNow)
	assert.Equal(t, penaltyFuture, s.penalty)
	require.Len(t, s.warnings, 1)
	assert.Contains(t, s.warnings[0], "future")

	// Stacks once per offending field.
	s = checkTimestampAnomalies(map[string]string{
		"DateTimeOriginal": "2099:01:01 00:00:00",
		"DateTime":         "2098:01:01 00:00:00",
	}, testNow)
	assert.Equal(t, 2*penaltyFuture, s.penalty)
}

func TestParseDate(t *testing.T) {
	ts, ok := ParseDate("2023:05:10 14:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC), ts)

	_, ok = ParseDate("")
	assert.False(t, ok)
	_, ok = ParseDate("yesterday")
	assert.False(t, ok)
	_, ok = ParseDate("2023:05:10")
	assert.False(t, ok)
}

func TestEvaluate_CleanImage(t *testing.T) {
	a := Evaluate(map[string]string{
		"Make":     "Canon",
		"Model":    "Canon EOS R5",
		"DateTime": "2023:05:10 14:30:00",
	}, testNow)

	assert.Equal(t, 10, a.Score)
	assert.Empty(t, a.Issues)
	assert.Empty(t, a.Warnings)
	require.NotNil(t, a.Breakdown)
	assert.Equal(t, Breakdown{
		Software:     10,
		AIDetection:  10,
		Consistency:  10,
		Completeness: 10,
		Anomalies:    10,
	}, *a.Breakdown)
}

func TestEvaluate_AIDetection(t *testing.T) {
	a := Evaluate(map[string]string{"Software": "Midjourney v6"}, testNow)

	// 9 (AI) + 2 (no camera info) + 3 (completeness) pushes the raw sum
	// past the baseline; composite clamps, breakdown does not.
	assert.Equal(t, 1, a.Score)
	require.NotNil(t, a.Breakdown)
	assert.Equal(t, 1, a.Breakdown.Software)
	assert.Equal(t, 8, a.Breakdown.AIDetection)
	assert.Equal(t, 7, a.Breakdown.Completeness)
}

func TestEvaluate_CompositeClampedLow(t *testing.T) {
	a := Evaluate(map[string]string{
		"Software":         "Midjourney v6",
		"DateTimeOriginal": "2099:01:01 00:00:00",
		"CreateDate":       "2099:01:01 00:00:00",
		"ModifyDate":       "2099:01:01 00:00:00",
	}, testNow)

	assert.Equal(t, 1, a.Score)
	// Per-category anomaly sub-score: 10 - (1 identical + 3*2 future) = 3.
	require.NotNil(t, a.Breakdown)
	assert.Equal(t, 3, a.Breakdown.Anomalies)
}

func TestEvaluate_OrderOfFindings(t *testing.T) {
	a := Evaluate(map[string]string{"Software": "Adobe Photoshop 24.0"}, testNow)

	// software issue first, then the camera-absence issue.
	require.Len(t, a.Issues, 2)
	assert.Contains(t, a.Issues[0], "Editing software")
	assert.Contains(t, a.Issues[1], "camera make and model")
	// completeness warning follows category order.
	require.Len(t, a.Warnings, 1)
	assert.Equal(t, "3 metadata fields missing", a.Warnings[0])
}

func TestEvaluate_MissingDatesNeverPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		a := Evaluate(map[string]string{"Software": "Firmware 1.0"}, testNow)
		assert.GreaterOrEqual(t, a.Score, 1)
		assert.LessOrEqual(t, a.Score, 10)
	})
}

func TestEvaluate_ScoreAlwaysInRange(t *testing.T) {
	cases := []map[string]string{
		{},
		{"Software": "Midjourney"},
		{"Software": "photoshop lightroom gimp midjourney dall-e"},
		{
			"DateTimeOriginal": "2099:01:01 00:00:00",
			"CreateDate":       "2099:01:01 00:00:00",
			"ModifyDate":       "2099:01:01 00:00:00",
			"Software":         "stable diffusion",
		},
		{"Make": "Canon", "Model": "EOS", "DateTime": "2023:01:01 00:00:00"},
	}
	for _, tags := range cases {
		a := Evaluate(tags, testNow)
		assert.GreaterOrEqual(t, a.Score, 1)
		assert.LessOrEqual(t, a.Score, 10)
	}
}
