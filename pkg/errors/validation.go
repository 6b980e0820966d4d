package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output path for safety.
// It prevents control-character injection and keeps paths to a sane length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//
// Absolute paths are allowed: render output goes wherever the user says.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// imageExtensions lists the raster formats the imaging library can encode.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}

// ValidateImageExtension validates that a path ends in an encodable raster
// format extension.
func ValidateImageExtension(path string) error {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported image extension in %q (want one of %s)",
		path, strings.Join(imageExtensions, ", "))
}

// hexColorRegex matches #RGB and #RRGGBB hex color notation.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string as used in config files.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidConfig, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidConfig, "invalid hex color %q (want #RGB or #RRGGBB)", s)
	}

	return nil
}

// ValidateWindowName validates a surface window name.
// Surface backends pass names straight to the platform layer, so reject
// anything with control characters or absurd length.
func ValidateWindowName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "window name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "window name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "window name contains invalid control characters")
		}
	}

	return nil
}
