package core

import (
	"path/filepath"
	"strings"
)

// FormatID enumerates every image format the editor accepts.
type FormatID string

const (
	FmtJPEG FormatID = "jpeg"
	FmtPNG  FormatID = "png"
	FmtGIF  FormatID = "gif"
	FmtWebP FormatID = "webp"
	FmtTIFF FormatID = "tiff"
	FmtBMP  FormatID = "bmp"
	FmtHEIC FormatID = "heic"

	FmtUnknown FormatID = "unknown"
)

// extMap maps lowercase extensions to format IDs.
var extMap = map[string]FormatID{
	".jpg":  FmtJPEG,
	".jpeg": FmtJPEG,
	".png":  FmtPNG,
	".gif":  FmtGIF,
	".webp": FmtWebP,
	".tiff": FmtTIFF,
	".tif":  FmtTIFF,
	".bmp":  FmtBMP,
	".heic": FmtHEIC,
	".heif": FmtHEIC,
}

// readFlags holds extra engine arguments needed when reading a format.
// TIFF files frequently trip minor-error warnings that would otherwise
// abort the read, so they are read in ignore-minor-errors mode.
var readFlags = map[FormatID][]string{
	FmtTIFF: {"-m", "-ignoreMinorErrors"},
}

// DetectFormat returns the FormatID for the given path by extension.
func DetectFormat(path string) FormatID {
	if id, ok := extMap[strings.ToLower(filepath.Ext(path))]; ok {
		return id
	}
	return FmtUnknown
}

// Supported reports whether the editor accepts the file at path.
func Supported(path string) bool {
	return DetectFormat(path) != FmtUnknown
}

// ReadFlags returns the extra engine arguments for reading path, or nil.
func ReadFlags(path string) []string {
	return readFlags[DetectFormat(path)]
}
