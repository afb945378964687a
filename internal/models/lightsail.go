package models

import "time"

// LightsailInstanceInfo represents a Lightsail instance
type LightsailInstanceInfo struct {
	Name                 string
	State                string
	BundleID             string
	BlueprintName        string
	Region               string
	CreatedAt            *time.Time
	EstimatedMonthlyCost float64
}

// LightsailDatabaseInfo represents a Lightsail managed database
type LightsailDatabaseInfo struct {
	Name          string
	State         string
	BundleID      string
	Engine        string
	Region        string
	CreatedAt     *time.Time
}
