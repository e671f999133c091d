package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLogMessage(t *testing.T) {
	in := "login failed password=hunter2 token: eyJhbGciOi"
	out := SanitizeLogMessage(in)

	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "eyJhbGciOi")
	assert.Contains(t, out, "[REDACTED]")
}

func TestSanitizePII(t *testing.T) {
	in := "duplicate quote for dana@example.com with api_key=abc123"
	out := SanitizePII(in)

	assert.NotContains(t, out, "dana@example.com")
	assert.NotContains(t, out, "abc123")
}

func TestSanitizeLeavesPlainTextAlone(t *testing.T) {
	in := "portfolio item not found"
	assert.Equal(t, in, SanitizeLogMessage(in))
}
