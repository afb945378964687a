package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeIsCleanupCandidate(t *testing.T) {
	assert.True(t, VolumeInfo{State: "available"}.IsCleanupCandidate())
	assert.False(t, VolumeInfo{State: "in-use"}.IsCleanupCandidate())
	assert.False(t, VolumeInfo{State: "deleting"}.IsCleanupCandidate())
}

func TestSnapshotIsOld(t *testing.T) {
	snapshot := SnapshotInfo{AgeDays: 31}
	assert.True(t, snapshot.IsOld(30))
	assert.False(t, snapshot.IsOld(31))
	assert.False(t, SnapshotInfo{AgeDays: 5}.IsOld(30))
}

func TestENIIsUnused(t *testing.T) {
	assert.True(t, ENIInfo{Status: "available"}.IsUnused())
	assert.False(t, ENIInfo{Status: "in-use", AttachedTo: "i-0abc"}.IsUnused())
	assert.False(t, ENIInfo{Status: "available", AttachedTo: "i-0abc"}.IsUnused())
}

func TestKeyIsBillable(t *testing.T) {
	assert.True(t, KeyInfo{KeyState: "Enabled"}.IsBillable())
	assert.True(t, KeyInfo{KeyState: "Disabled"}.IsBillable())
	assert.False(t, KeyInfo{KeyState: "PendingDeletion"}.IsBillable())
}

func TestCanaryIsRunning(t *testing.T) {
	assert.True(t, CanaryInfo{State: "RUNNING"}.IsRunning())
	assert.False(t, CanaryInfo{State: "STOPPED"}.IsRunning())
}
