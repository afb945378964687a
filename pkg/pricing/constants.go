package pricing

// Flat monthly rates for resources whose billing does not vary by size.
// These match the published on-demand prices the audit reports assume.
const (
	// SnapshotCostPerGBMonth is the EBS snapshot storage rate
	SnapshotCostPerGBMonth = 0.05

	// UnassociatedEIPMonthlyCost is the charge for an allocated but
	// unassociated Elastic IP ($0.005/hour)
	UnassociatedEIPMonthlyCost = 3.65

	// HostedZoneMonthlyCost applies to every Route 53 hosted zone,
	// public or private
	HostedZoneMonthlyCost = 0.50

	// HealthCheckMonthlyCost is the basic Route 53 health check rate
	HealthCheckMonthlyCost = 0.50

	// CustomerKeyMonthlyCost is the charge per customer-managed KMS key
	// in Enabled or Disabled state
	CustomerKeyMonthlyCost = 1.00

	// NATGatewayMonthlyCost is the hourly NAT gateway charge ($0.045/hour)
	// over a 730-hour month, excluding data processing
	NATGatewayMonthlyCost = 32.85

	// InterfaceEndpointMonthlyCost is the hourly interface VPC endpoint
	// charge ($0.01/hour) over a 730-hour month; gateway endpoints are free
	InterfaceEndpointMonthlyCost = 7.30

	// AcceleratorMonthlyCost is the Global Accelerator fixed fee,
	// billed whether or not the accelerator is enabled
	AcceleratorMonthlyCost = 18.00

	// DashboardMonthlyCost applies to each CloudWatch dashboard
	// beyond the three in the free tier
	DashboardMonthlyCost = 3.00

	// EFSStandardCostPerGBMonth is the EFS Standard storage class rate
	EFSStandardCostPerGBMonth = 0.30

	// DBMicroInstanceMonthlyCost is the rough on-demand estimate
	// for a db.t3.micro instance
	DBMicroInstanceMonthlyCost = 20.00
)

// CalculateSnapshotMonthlyCost returns the storage cost of a snapshot
func CalculateSnapshotMonthlyCost(sizeGB int) float64 {
	return float64(sizeGB) * SnapshotCostPerGBMonth
}

// CalculateEFSMonthlyCost returns the standard-class storage cost
// for a file system of the given size in bytes
func CalculateEFSMonthlyCost(sizeBytes int64) float64 {
	gb := float64(sizeBytes) / (1024 * 1024 * 1024)
	return gb * EFSStandardCostPerGBMonth
}

// FallbackEBSMonthlyCost computes an EBS volume's monthly cost from the
// hardcoded price table alone, bypassing the Pricing API. Unknown types
// fall back to the gp2 rate; unknown regions use us-east-1.
func FallbackEBSMonthlyCost(volumeType string, sizeGB int, region string) float64 {
	regionPrices, found := DefaultEBSPrices[region]
	if !found {
		regionPrices = DefaultEBSPrices["us-east-1"]
	}

	price, found := regionPrices[volumeType]
	if !found {
		price = regionPrices["gp2"]
	}

	return float64(sizeGB) * price
}
