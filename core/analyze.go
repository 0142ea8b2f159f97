package core

import (
	"fmt"
	"io"
	"time"

	"github.com/fairbnb/image-integrity/core/exif"
	"github.com/fairbnb/image-integrity/core/score"
)

// noMetadataIssue is the fixed diagnostic for the no-metadata path. It
// covers non-JPEG input, a missing or malformed APP1 segment, and a
// segment with zero recognizable tags; all three collapse into the same
// suspicious default.
const noMetadataIssue = "No EXIF metadata found - image may be processed, stripped, or AI-generated"

// AnalyzeImage reads the byte source to completion and scores it. The read
// is the only blocking step; everything after it is synchronous and
// deterministic. AnalyzeImage never fails: read errors, parse failures and
// panics all degrade to a score-1 result with the failure as its sole
// issue. Safe for concurrent use; no state is shared between calls.
func AnalyzeImage(r io.Reader, filename string) *AnalysisResult {
	data, err := io.ReadAll(r)
	if err != nil {
		return failureResult(nil, filename, "reading image: "+err.Error())
	}
	return AnalyzeBytes(data, filename)
}

// AnalyzeBytes scores an in-memory image buffer. See AnalyzeImage.
func AnalyzeBytes(data []byte, filename string) (res *AnalysisResult) {
	if filename == "" {
		filename = "unknown"
	}
	defer func() {
		if r := recover(); r != nil {
			res = failureResult(data, filename, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	tags, ok := exif.Scan(data)
	if !ok {
		return noMetadataResult(data, filename)
	}

	analysis := score.Evaluate(tags, time.Now())

	meta := buildRecord(tags, filename, int64(len(data)))
	meta.FileHash = FileHash(data)
	meta.IntegrityScore = analysis.Score

	return &AnalysisResult{
		NFTMetadata:    meta,
		IntegrityScore: analysis.Score,
		Analysis:       analysis,
		FullMetadata:   tags,
	}
}

// buildRecord normalizes the raw tags into the record shape the
// marketplace stores alongside the minted NFT.
func buildRecord(tags exif.Tags, filename string, size int64) NFTMetadata {
	rec := NFTMetadata{
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
		Filename:    filename,
		FileSize:    size,
		CameraInfo: CameraInfo{
			Make:     tagPtr(tags, "Make"),
			Model:    tagPtr(tags, "Model"),
			Software: tagPtr(tags, "Software"),
		},
	}

	original := tags["DateTimeOriginal"]
	if original == "" {
		original = tags["DateTime"]
	}
	rec.OriginalCreationDate = isoDate(original)
	rec.LastModifiedDate = isoDate(tags["DateTime"])
	return rec
}

// isoDate converts an EXIF timestamp to ISO-8601. Values that do not parse
// are passed through verbatim rather than dropped, so the record still
// shows what the file claimed.
func isoDate(v string) *string {
	if v == "" {
		return nil
	}
	if t, ok := score.ParseDate(v); ok {
		s := t.UTC().Format(time.RFC3339)
		return &s
	}
	return &v
}

func tagPtr(tags exif.Tags, name string) *string {
	if v, ok := tags[name]; ok {
		return &v
	}
	return nil
}

func noMetadataResult(data []byte, filename string) *AnalysisResult {
	return suspiciousDefault(data, filename, noMetadataIssue)
}

func failureResult(data []byte, filename string, issue string) *AnalysisResult {
	if filename == "" {
		filename = "unknown"
	}
	return suspiciousDefault(data, filename, issue)
}

// suspiciousDefault is the shared terminal shape for the no-metadata and
// failure paths: score 1, a single issue, no tag mapping, no breakdown.
func suspiciousDefault(data []byte, filename string, issue string) *AnalysisResult {
	return &AnalysisResult{
		NFTMetadata: NFTMetadata{
			ExtractedAt:    time.Now().UTC().Format(time.RFC3339),
			Filename:       filename,
			FileSize:       int64(len(data)),
			FileHash:       FileHash(data),
			IntegrityScore: 1,
		},
		IntegrityScore: 1,
		Analysis: score.Analysis{
			Score:  1,
			Issues: []string{issue},
		},
	}
}
