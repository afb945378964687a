package models

// ZoneInfo represents a Route 53 hosted zone
type ZoneInfo struct {
	ZoneID               string // without the /hostedzone/ prefix
	Name                 string
	Private              bool
	RecordCount          int64
	NonDefaultRecords    int // records other than NS and SOA
	EstimatedMonthlyCost float64
}

// HealthCheckInfo represents a Route 53 health check
type HealthCheckInfo struct {
	HealthCheckID        string
	Type                 string
	Target               string
	EstimatedMonthlyCost float64
}

// RecordInfo represents a single resource record set
type RecordInfo struct {
	Name   string
	Type   string
	TTL    int64
	Values []string
	Alias  string
}
