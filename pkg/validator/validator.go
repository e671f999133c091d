package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 128
	maxNameLen        = 120
	maxCompanyLen     = 255
	maxMessageLen     = 5000

	errEmailEmptyFmt          = "email cannot be empty"
	errEmailLengthFmt         = "email must be between %d and %d characters"
	errEmailInvalidFmt        = "invalid email format"
	errPasswordMinLengthFmt   = "password must be at least %d characters"
	errPasswordMaxLengthFmt   = "password must not exceed %d characters"
	errRequiredFieldFmt       = "%s is required"
	errFieldMaxLengthFmt      = "%s must not exceed %d characters"
	errFieldControlCharsFmt   = "%s cannot contain control characters"
	errImageTypeUnsupported   = "unsupported image type %q"
	errImageSizeNegativeFmt   = "image size cannot be negative"
	errImageSizeMaxFmt        = "image exceeds maximum upload size of %d bytes"
	asciiControlStart         = 32
	asciiDelete               = 127
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// imageExtensions maps accepted image content types to the file extension
// used when building storage keys.
var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

// RequiredName validates a human/company name field: non-empty after
// trimming, bounded, printable. Format beyond that is not enforced.
func RequiredName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf(errRequiredFieldFmt, field)
	}

	if len(value) > maxNameLen {
		return fmt.Errorf(errFieldMaxLengthFmt, field, maxNameLen)
	}

	return checkControlChars(field, value)
}

// OptionalText bounds a free-text field without requiring it.
func OptionalText(field, value string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = maxMessageLen
	}
	if len(value) > maxLen {
		return fmt.Errorf(errFieldMaxLengthFmt, field, maxLen)
	}
	return nil
}

// ImageContentType validates an upload's content type and returns the
// extension to use for its storage key.
func ImageContentType(contentType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(normalized, ";"); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}

	ext, ok := imageExtensions[normalized]
	if !ok {
		return "", fmt.Errorf(errImageTypeUnsupported, contentType)
	}

	return ext, nil
}

func ImageSize(sizeBytes, maxBytes int64) error {
	if sizeBytes < 0 {
		return fmt.Errorf(errImageSizeNegativeFmt)
	}

	if maxBytes > 0 && sizeBytes > maxBytes {
		return fmt.Errorf(errImageSizeMaxFmt, maxBytes)
	}

	return nil
}

func checkControlChars(field, value string) error {
	for _, r := range value {
		if r < asciiControlStart || r == asciiDelete {
			return fmt.Errorf(errFieldControlCharsFmt, field)
		}
	}
	return nil
}
