package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackEBSMonthlyCost(t *testing.T) {
	tests := []struct {
		name       string
		volumeType string
		sizeGB     int
		region     string
		expected   float64
	}{
		{"gp3 in us-east-1", "gp3", 100, "us-east-1", 8.0},
		{"gp2 in us-east-1", "gp2", 100, "us-east-1", 10.0},
		{"io1 in us-east-1", "io1", 10, "us-east-1", 1.25},
		{"sc1 in us-east-1", "sc1", 1000, "us-east-1", 25.0},
		{"gp3 in eu-west-2", "gp3", 100, "eu-west-2", 9.3},
		{"unknown type falls back to gp2", "gp4", 100, "us-east-1", 10.0},
		{"unknown region falls back to us-east-1", "gp3", 100, "mars-north-1", 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := FallbackEBSMonthlyCost(tt.volumeType, tt.sizeGB, tt.region)
			assert.InDelta(t, tt.expected, cost, 0.0001)
		})
	}
}

func TestCalculateSnapshotMonthlyCost(t *testing.T) {
	assert.InDelta(t, 5.0, CalculateSnapshotMonthlyCost(100), 0.0001)
	assert.InDelta(t, 0.0, CalculateSnapshotMonthlyCost(0), 0.0001)
}

func TestCalculateEFSMonthlyCost(t *testing.T) {
	oneGB := int64(1024 * 1024 * 1024)

	assert.InDelta(t, 0.30, CalculateEFSMonthlyCost(oneGB), 0.0001)
	assert.InDelta(t, 3.0, CalculateEFSMonthlyCost(10*oneGB), 0.0001)
	assert.InDelta(t, 0.0, CalculateEFSMonthlyCost(0), 0.0001)
}
