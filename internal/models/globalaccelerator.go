package models

import "time"

// AcceleratorInfo represents a Global Accelerator accelerator.
// Accelerators bill the fixed fee even while disabled.
type AcceleratorInfo struct {
	AcceleratorArn       string
	Name                 string
	Status               string
	Enabled              bool
	IPAddresses          []string
	CreatedTime          *time.Time
	EstimatedMonthlyCost float64
}
