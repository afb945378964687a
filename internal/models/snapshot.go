package models

import "time"

// SnapshotInfo represents EBS snapshot information
type SnapshotInfo struct {
	SnapshotID           string
	Description          string
	VolumeID             string
	SizeGB               int
	State                string
	Region               string
	StartTime            time.Time
	AgeDays              int
	Encrypted            bool
	EstimatedMonthlyCost float64
}

// IsOld reports whether the snapshot is older than the given threshold in days
func (s SnapshotInfo) IsOld(thresholdDays int) bool {
	return s.AgeDays > thresholdDays
}
