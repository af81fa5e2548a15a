package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxDimension bounds the width and height of a rendered chart.
const MaxDimension = 20000.0

// DocumentExtensions lists the file extensions a chart document may have.
var DocumentExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".toml": true,
}

// ValidateDocumentPath checks that path names a chart document: a non-empty
// path without control characters whose extension selects a known codec.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "document path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !DocumentExtensions[ext] {
		return New(ErrCodeInvalidDocument, "unsupported document extension %q (must be .json, .yaml, .yml or .toml)", ext)
	}
	return nil
}

// ValidateDimension checks that a width or height is usable. Zero means
// "use the default" and is accepted.
func ValidateDimension(name string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return New(ErrCodeInvalidConfig, "%s must be a finite number", name)
	case v < 0:
		return New(ErrCodeInvalidConfig, "%s cannot be negative (got %g)", name, v)
	case v > MaxDimension:
		return New(ErrCodeInvalidConfig, "%s too large (max %g, got %g)", name, MaxDimension, v)
	}
	return nil
}

// ValidateOutputPrefix checks an output path prefix: the path renders are
// written to before the format extension is appended.
func ValidateOutputPrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.ContainsRune(prefix, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains invalid characters")
	}
	if strings.HasSuffix(prefix, "/") || strings.HasSuffix(prefix, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}
	return nil
}
