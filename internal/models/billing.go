package models

// ServiceCostInfo represents one service's cost for the report period
type ServiceCostInfo struct {
	ServiceName string
	Amount      float64
	Unit        string
}
