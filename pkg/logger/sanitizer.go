package logger

import "regexp"

// Sensitive field patterns to filter from logs
var (
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)[\s:=]+[^\s]+`)
	tokenPattern    = regexp.MustCompile(`(?i)(token|jwt|bearer)[\s:=]+[^\s]+`)
	apiKeyPattern   = regexp.MustCompile(`(?i)(api[_-]?key|apikey)[\s:=]+[^\s]+`)
	secretPattern   = regexp.MustCompile(`(?i)(secret|private[_-]?key)[\s:=]+[^\s]+`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

const redactedPlaceholder = "[REDACTED]"

// SanitizeLogMessage removes credentials from log messages.
func SanitizeLogMessage(message string) string {
	message = passwordPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = tokenPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = apiKeyPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = secretPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)

	return message
}

// SanitizePII additionally redacts email addresses. Quote submissions carry
// contact emails, so error text that echoes a record must pass through here
// before logging.
func SanitizePII(message string) string {
	message = SanitizeLogMessage(message)
	return emailPattern.ReplaceAllString(message, redactedPlaceholder)
}
