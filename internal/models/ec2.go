package models

import "time"

// InstanceInfo represents EC2 instance information
type InstanceInfo struct {
	InstanceID           string
	Name                 string
	InstanceType         string
	State                string
	Region               string
	AvailabilityZone     string
	StoppedTime          *time.Time
	LaunchTime           time.Time
	ElapsedDays          int
	VolumeIDs            []string
	AttachedStorageGB    int
	EstimatedMonthlyCost float64 // storage still billed while stopped
	PricingSource        string
}
