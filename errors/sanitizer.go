package errors

import (
	"fmt"
	"regexp"
)

// Credentials leak into transport errors through request dumps and URLs.
// Anything matching these patterns is redacted before a message is logged
// or forwarded to the notification sink.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)channel_(?:id|secret|token)[=:]\s*\S+`),
	regexp.MustCompile(`(?i)authorization[=:]\s*\S+`),
	regexp.MustCompile(`(?i)bearer\s+\S+`),
}

// Sanitize redacts credentials and tokens from an error message.
func Sanitize(message string) string {
	for _, pattern := range sensitivePatterns {
		message = pattern.ReplaceAllString(message, "[REDACTED]")
	}
	return message
}

// FormatError renders an error with its context tag, sanitized.
func FormatError(err error, context string) string {
	return fmt.Sprintf("<%s> %s", context, Sanitize(err.Error()))
}
