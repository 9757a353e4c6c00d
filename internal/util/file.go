package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// allowedImageExtensions are the upload formats the markup renderer can
// embed as data URIs.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// IsAllowedImageFile reports whether the uploaded filename carries a
// supported image extension.
func IsAllowedImageFile(fileName string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(fileName))]
}

// AllowedImageExtensions returns the supported extensions without the
// leading dot, for error messages.
func AllowedImageExtensions() []string {
	exts := make([]string, 0, len(allowedImageExtensions))
	for ext := range allowedImageExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return exts
}

// ImageMIMESubtype maps an uploaded filename to the MIME image subtype used
// in data URIs. "jpg" normalizes to "jpeg".
func ImageMIMESubtype(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "jpg" {
		return "jpeg"
	}
	return ext
}

func GetTempDir() string {
	return fmt.Sprintf("%s/cardproof", os.TempDir())
}

func CreateTemp(pattern string) (*os.File, error) {
	tempDir := GetTempDir()
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return os.CreateTemp(tempDir, pattern)
}
