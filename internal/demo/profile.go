package demo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// profileURLPattern accepts anything containing a linkedin.com/in/<slug> path.
var profileURLPattern = regexp.MustCompile(`(?i)^.*(linkedin\.com/in/[a-z0-9-]+).*$`)

// ErrInvalidProfileURL is wrapped by every FormatError.
var ErrInvalidProfileURL = errors.New("invalid profile URL")

// FormatError reports a value that does not look like a profile URL.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("the provided LinkedIn URL, %q, is not a valid URL", e.Value)
}

func (e *FormatError) Unwrap() error { return ErrInvalidProfileURL }

// MatchProfileURL reports whether value, trimmed, is an acceptable profile URL.
func MatchProfileURL(value string) bool {
	return profileURLPattern.MatchString(strings.TrimSpace(value))
}

// ValidateProfileURL returns the URL to send for value, or a *FormatError.
func ValidateProfileURL(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	match := profileURLPattern.FindString(trimmed)
	if match == "" {
		return "", &FormatError{Value: trimmed}
	}
	return match, nil
}
