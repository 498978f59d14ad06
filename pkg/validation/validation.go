package validation

import (
	"fmt"
	"net/url"
	"regexp"
)

// Simple security validation that focuses only on actual injection risks:
// both the URL and the format ID end up on a yt-dlp command line.
var (
	// Block shell metacharacters that could enable command injection
	dangerousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[;&|$` + "`" + `]`), // Shell metacharacters
		regexp.MustCompile(`\$\(.*\)`),          // Command substitution $(...)
		regexp.MustCompile("`.*`"),              // Command substitution backticks
		regexp.MustCompile(`[\x00-\x1F\x7F]`),   // Control characters (including newline, tab, null byte, etc.)
	}

	// yt-dlp format selectors: ids plus the +/, combinators (e.g. "137+140")
	validFormatPattern = regexp.MustCompile(`^[a-zA-Z0-9._+,/-]+$`)
)

type ValidationError error

// ValidateStringForInjection checks if a string contains dangerous patterns
func ValidateStringForInjection(value string) error {
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(value) {
			return ValidationError(fmt.Errorf("value contains potentially dangerous characters: %s", value))
		}
	}
	return nil
}

// ValidateURL checks that a download URL is present, well-formed, and safe
// to hand to the extraction engine.
func ValidateURL(raw string) (string, error) {
	if raw == "" {
		return "", ValidationError(fmt.Errorf("url cannot be empty"))
	}
	if err := ValidateStringForInjection(raw); err != nil {
		return "", err
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ValidationError(fmt.Errorf("invalid url: %w", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ValidationError(fmt.Errorf("url scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return "", ValidationError(fmt.Errorf("url is missing a host"))
	}

	return raw, nil
}

// ValidateFormatID checks a caller-selected format selector.
func ValidateFormatID(id string) (string, error) {
	if id == "" {
		return "", ValidationError(fmt.Errorf("format ID cannot be empty"))
	}
	if !validFormatPattern.MatchString(id) {
		return "", ValidationError(fmt.Errorf("invalid format ID: %q", id))
	}
	return id, nil
}
