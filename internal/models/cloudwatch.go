package models

// AlarmInfo represents a CloudWatch alarm
type AlarmInfo struct {
	AlarmName      string
	State          string
	ActionsEnabled bool
	Namespace      string
	MetricName     string
	Region         string
}

// DashboardInfo represents a CloudWatch dashboard
type DashboardInfo struct {
	DashboardName        string
	Region               string
	EstimatedMonthlyCost float64 // dashboards beyond the free tier bill $3/month
}

// CanaryInfo represents a CloudWatch Synthetics canary
type CanaryInfo struct {
	CanaryName string
	State      string
	Schedule   string
	Region     string
}

// IsRunning reports whether the canary is still executing (and billing per run)
func (c CanaryInfo) IsRunning() bool {
	return c.State == "RUNNING"
}
