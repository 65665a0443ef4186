package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePayloadSize rejects payloads larger than max bytes.
// A max of zero or less disables the check.
func ValidatePayloadSize(size, max int) error {
	if max > 0 && size > max {
		return New(ErrCodeInputTooLarge, "payload is %d bytes (max %d)", size, max)
	}
	return nil
}

// ValidateCount rejects element counts above max.
// what names the counted element ("vertices", "segments", ...).
// A max of zero or less disables the check.
func ValidateCount(what string, n, max int) error {
	if max > 0 && n > max {
		return New(ErrCodeInputTooLarge, "too many %s: %d (max %d)", what, n, max)
	}
	return nil
}

// toolNameRegex matches tool names as registered by the tool layer.
var toolNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateToolName validates a tool name taken from an invocation request.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 64 characters
//   - No control characters
//   - Lowercase snake_case only
func ValidateToolName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "tool name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "tool name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tool name contains invalid control characters")
		}
	}

	if !toolNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid tool name: %q", name)
	}

	return nil
}

// ValidateCacheKeyPrefix validates a cache key prefix from configuration.
// Prefixes end up in Redis keys and file cache names, so whitespace and
// glob characters are rejected.
func ValidateCacheKeyPrefix(prefix string) error {
	if len(prefix) > 128 {
		return New(ErrCodeInvalidConfig, "cache prefix too long (max 128 characters)")
	}
	if strings.ContainsAny(prefix, " \t\r\n*?[]") {
		return New(ErrCodeInvalidConfig, "cache prefix contains invalid characters: %q", prefix)
	}
	return nil
}
