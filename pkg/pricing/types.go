package pricing

import (
	"sync"
)

// PricingSource represents the source of pricing information
type PricingSource string

const (
	// PricingSourceAPI indicates pricing data came from AWS API
	PricingSourceAPI PricingSource = "API"

	// PricingSourceCache indicates pricing data came from cache
	PricingSourceCache PricingSource = "Cache"

	// PricingSourceDefault indicates pricing data came from hardcoded defaults
	PricingSourceDefault PricingSource = "Default"

	// PricingSourceFixed indicates a flat published rate
	PricingSourceFixed PricingSource = "Fixed"

	// PricingSourceNA indicates pricing data is not available
	PricingSourceNA PricingSource = "N/A"
)

// Stats tracking for pricing API calls
var (
	// PricingAPIStats tracks API call statistics by service and region
	PricingAPIStats = make(map[string]map[string]map[string]int) // service -> region -> {success, failure, cache}

	// PricingAPIStatsLock protects the stats map from concurrent access
	PricingAPIStatsLock sync.RWMutex
)

// EBS cache
var (
	// EBSPricingCache caches EBS volume pricing data
	EBSPricingCache = make(map[string]float64)

	// EBSPricingCacheLock protects the EBS cache from concurrent access
	EBSPricingCacheLock sync.RWMutex
)

// DefaultEBSPrices holds fallback EBS prices in USD per GB-month
// used when the Pricing API is unreachable
var DefaultEBSPrices = map[string]map[string]float64{
	"us-east-1": { // US East (N. Virginia)
		"gp2":      0.10,
		"gp3":      0.08,
		"io1":      0.125,
		"io2":      0.125,
		"st1":      0.045,
		"sc1":      0.025,
		"standard": 0.05,
	},
	"eu-west-2": { // EU (London)
		"gp2":      0.116,
		"gp3":      0.093,
		"io1":      0.145,
		"io2":      0.145,
		"st1":      0.053,
		"sc1":      0.029,
		"standard": 0.058,
	},
	// Add more regions as needed
}
