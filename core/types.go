// Package core implements the image authenticity scoring engine: a pure,
// deterministic pipeline that takes a JPEG byte buffer and produces a 1-10
// trust score, a diagnostic report, a normalized metadata record, and a
// content digest. The engine performs no I/O beyond reading the supplied
// bytes and never returns an error; every failure mode degrades to a valid
// low-score result, since an unscorable image is itself a fraud signal.
package core

import (
	"github.com/fairbnb/image-integrity/core/exif"
	"github.com/fairbnb/image-integrity/core/score"
)

// CameraInfo carries the camera-related tags of the normalized record. Nil
// fields mean the tag was absent.
type CameraInfo struct {
	Make     *string `json:"make"`
	Model    *string `json:"model"`
	Software *string `json:"software"`
}

// NFTMetadata is the normalized record attached to a listing NFT before it
// is handed to the storage and contract collaborators.
type NFTMetadata struct {
	// OriginalCreationDate is derived from the best available capture
	// timestamp (DateTimeOriginal, falling back to DateTime).
	OriginalCreationDate *string    `json:"originalCreationDate"`
	LastModifiedDate     *string    `json:"lastModifiedDate"`
	ExtractedAt          string     `json:"extractedAt"`
	Filename             string     `json:"filename"`
	FileSize             int64      `json:"fileSize"`
	CameraInfo           CameraInfo `json:"cameraInfo"`
	// FileHash is the lowercase hex content digest; identical bytes
	// always yield the identical hash.
	FileHash string `json:"fileHash"`
	// IntegrityScore always lies in [1,10].
	IntegrityScore int `json:"integrityScore"`
}

// AnalysisResult bundles everything AnalyzeImage produces.
type AnalysisResult struct {
	NFTMetadata    NFTMetadata    `json:"nftMetadata"`
	IntegrityScore int            `json:"integrityScore"`
	Analysis       score.Analysis `json:"analysis"`
	// FullMetadata is present only on the success path; it is nil when
	// no metadata was found and on the failure path.
	FullMetadata exif.Tags `json:"fullMetadata"`
}
