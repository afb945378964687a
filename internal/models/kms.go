package models

import "time"

// KeyInfo represents a customer-managed KMS key
type KeyInfo struct {
	KeyID                string
	Description          string
	KeyState             string
	Aliases              []string
	GrantCount           int
	Region               string
	CreationDate         time.Time
	EstimatedMonthlyCost float64
}

// IsBillable reports whether the key still accrues the monthly key charge.
// Keys pending deletion stop billing.
func (k KeyInfo) IsBillable() bool {
	return k.KeyState == "Enabled" || k.KeyState == "Disabled"
}
