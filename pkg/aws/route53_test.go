package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHostedZoneID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with prefix", "/hostedzone/Z04757631B4P0PMO60XAX", "Z04757631B4P0PMO60XAX"},
		{"bare id", "Z04757631B4P0PMO60XAX", "Z04757631B4P0PMO60XAX"},
		{"health check style prefix", "/healthcheck/abc-123", "abc-123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseHostedZoneID(tt.input))
		})
	}
}
