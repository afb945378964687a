package models

import "time"

// FileSystemInfo represents an EFS file system
type FileSystemInfo struct {
	FileSystemID         string
	Name                 string
	State                string
	SizeBytes            int64
	PerformanceMode      string
	HasLifecyclePolicy   bool
	MountTargetCount     int
	Region               string
	CreationTime         time.Time
	EstimatedMonthlyCost float64
}
