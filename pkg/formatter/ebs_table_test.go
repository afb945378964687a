package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/costctl/costctl/internal/models"
)

func TestPrintVolumesTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintVolumesTable(&buf, nil)
	assert.Contains(t, buf.String(), "No available EBS volumes found.")
}

func TestPrintVolumesTable(t *testing.T) {
	volumes := []models.VolumeInfo{
		{
			VolumeID:             "vol-0abc",
			Name:                 "orphaned-data",
			Size:                 100,
			VolumeType:           "gp3",
			State:                "available",
			Region:               "us-east-1",
			ElapsedDaysSinceUsed: 45,
			EstimatedMonthlyCost: 8.0,
			PricingSource:        "Default",
		},
		{
			VolumeID:             "vol-0def",
			Name:                 "Unnamed",
			Size:                 50,
			VolumeType:           "gp2",
			State:                "available",
			Region:               "eu-west-2",
			ElapsedDaysSinceUsed: 10,
			EstimatedMonthlyCost: 5.8,
			PricingSource:        "API",
		},
	}

	var buf bytes.Buffer
	PrintVolumesTable(&buf, volumes)
	out := buf.String()

	assert.Contains(t, out, "vol-0abc")
	assert.Contains(t, out, "vol-0def")
	assert.Contains(t, out, "gp3")
	assert.Contains(t, out, "$8.00")
	assert.Contains(t, out, "150 GB") // total size
	assert.Contains(t, out, "$13.80") // total cost

	// Highest cost must come first
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("vol-0abc")), bytes.Index(buf.Bytes(), []byte("vol-0def")))
}

func TestPrintVolumesSummary(t *testing.T) {
	volumes := []models.VolumeInfo{
		{VolumeType: "gp3", Size: 100, EstimatedMonthlyCost: 8.0},
		{VolumeType: "gp3", Size: 20, EstimatedMonthlyCost: 1.6},
		{VolumeType: "gp2", Size: 30, EstimatedMonthlyCost: 3.0},
	}

	var buf bytes.Buffer
	PrintVolumesSummary(&buf, volumes)
	out := buf.String()

	assert.Contains(t, out, "gp3")
	assert.Contains(t, out, "120 GB")
	assert.Contains(t, out, "$9.60")
	assert.Contains(t, out, "gp2")
}

func TestPrintSnapshotsTable(t *testing.T) {
	snapshots := []models.SnapshotInfo{
		{
			SnapshotID:           "snap-0abc",
			SizeGB:               200,
			Region:               "us-east-1",
			AgeDays:              90,
			Encrypted:            true,
			EstimatedMonthlyCost: 10.0,
			Description:          "pre-migration backup",
		},
	}

	var buf bytes.Buffer
	PrintSnapshotsTable(&buf, snapshots)
	out := buf.String()

	assert.Contains(t, out, "snap-0abc")
	assert.Contains(t, out, "200 GB")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "pre-migration backup")
}
