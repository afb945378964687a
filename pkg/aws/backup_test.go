package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBackupRelatedRule(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		expected bool
	}{
		{"backup keyword", "nightly-backup-job", true},
		{"snapshot keyword", "CreateSnapshotDaily", true},
		{"ami keyword", "weekly-AMI-rotation", true},
		{"dlm keyword", "dlm-managed-rule", true},
		{"unrelated rule", "scale-down-dev-cluster", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBackupRelatedRule(tt.ruleName))
		})
	}
}
