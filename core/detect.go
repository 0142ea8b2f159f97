package core

import "bytes"

// FormatID enumerates the image formats the surfaces can label. The engine
// itself only cares about JPEG; everything else is scored as "no metadata".
type FormatID string

const (
	FmtJPEG FormatID = "jpeg"
	FmtPNG  FormatID = "png"
	FmtGIF  FormatID = "gif"
	FmtWebP FormatID = "webp"
	FmtTIFF FormatID = "tiff"
	FmtBMP  FormatID = "bmp"

	FmtUnknown FormatID = "unknown"
)

// DetectFormat identifies an image format by magic bytes. Used by the CLI
// and HTTP surfaces to label non-JPEG uploads in diagnostics; it never
// influences the score.
func DetectFormat(b []byte) FormatID {
	if len(b) < 4 {
		return FmtUnknown
	}
	switch {
	// JPEG: FF D8
	case b[0] == 0xFF && b[1] == 0xD8:
		return FmtJPEG
	// PNG: 89 50 4E 47 0D 0A 1A 0A
	case bytes.HasPrefix(b, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}):
		return FmtPNG
	// GIF: GIF87a or GIF89a
	case bytes.HasPrefix(b, []byte("GIF87a")) || bytes.HasPrefix(b, []byte("GIF89a")):
		return FmtGIF
	// WebP: RIFF????WEBP
	case len(b) >= 12 && bytes.Equal(b[0:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return FmtWebP
	// TIFF: 49 49 2A 00 (little-endian) or 4D 4D 00 2A (big-endian)
	case bytes.HasPrefix(b, []byte{0x49, 0x49, 0x2A, 0x00}) ||
		bytes.HasPrefix(b, []byte{0x4D, 0x4D, 0x00, 0x2A}):
		return FmtTIFF
	// BMP: 42 4D
	case b[0] == 0x42 && b[1] == 0x4D:
		return FmtBMP
	}
	return FmtUnknown
}
