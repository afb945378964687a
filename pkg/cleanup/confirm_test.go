package cleanup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"uppercase yes", "YES\n", true},
		{"no", "no\n", false},
		{"n", "n\n", false},
		{"retry until valid", "maybe\nyes\n", true},
		{"whitespace trimmed", "  yes  \n", true},
		{"input runs out", "", false},
		{"garbage then eof", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			result := Confirm(strings.NewReader(tt.input), &out, "Delete everything?")
			assert.Equal(t, tt.expected, result)
			assert.Contains(t, out.String(), "Delete everything?")
		})
	}
}
