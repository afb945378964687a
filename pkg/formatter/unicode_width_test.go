package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"wide cjk runes", "서버", 4},
		{"mixed", "db-서버", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringWidth(tt.input))
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "hello", TruncateToWidth("hello", 10))
	assert.Equal(t, "hello", TruncateToWidth("hello", 5))

	truncated := TruncateToWidth("a-very-long-resource-name", 10)
	assert.LessOrEqual(t, StringWidth(truncated), 10)
	assert.Contains(t, truncated, "..")
}

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadToWidth("ab", 5))
	assert.Equal(t, "abcde", PadToWidth("abcde", 5))
	assert.Equal(t, "abcdef", PadToWidth("abcdef", 5))
}
