package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		want     string
	}{
		{
			name:     "nil error returns empty string",
			err:      nil,
			maxWidth: 80,
			want:     "",
		},
		{
			name:     "short message fits on one line",
			err:      errors.New("boom"),
			maxWidth: 80,
			want:     "Error: boom",
		},
		{
			name:     "empty message gets placeholder",
			err:      errors.New(""),
			maxWidth: 80,
			want:     "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplayWrapsToTwoLines(t *testing.T) {
	err := errors.New("failed to save tasks because the database file is locked by another process")

	got := formatErrorForDisplay(err, 40)

	lines := strings.Split(got, "\n")
	require.LessOrEqual(t, len(lines), maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40+len(errorPrefix))
	}
}

func TestFormatErrorForDisplayTruncatesLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("overflowing words everywhere ", 20))

	got := formatErrorForDisplay(err, 30)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(got, truncationMark),
		"messages that do not fit end with the truncation mark")
}
