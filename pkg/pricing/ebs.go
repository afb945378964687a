package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
)

// getEBSPriceFromAPI retrieves EBS volume pricing from the AWS Pricing API
func getEBSPriceFromAPI(volumeType, region string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	volumeTypeValue := mapVolumeTypeToAPIValue(volumeType)

	filters := []types.Filter{
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("volumeType"),
			Value: aws.String(volumeTypeValue),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("location"),
			Value: aws.String(GetRegionDescriptiveName(region)),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("productFamily"),
			Value: aws.String("Storage"),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("regionCode"),
			Value: aws.String(region),
		},
	}

	pricingProducts, err := GetPricingProducts(ctx, "AmazonEC2", filters, "EBS", volumeType, region)
	if err != nil {
		return 0, err
	}

	// Find exact match for the volume type
	var matchedProduct string
	var matchFound bool

	for _, product := range pricingProducts {
		var priceData map[string]interface{}
		if err := json.Unmarshal([]byte(product), &priceData); err != nil {
			continue
		}

		productAttrs, ok := priceData["product"].(map[string]interface{})
		if !ok {
			continue
		}

		attributes, ok := productAttrs["attributes"].(map[string]interface{})
		if !ok {
			continue
		}

		if volApiName, ok := attributes["volumeApiName"].(string); ok {
			if volApiName == volumeType {
				matchedProduct = product
				matchFound = true
				break
			}
		}
	}

	if !matchFound {
		return 0, fmt.Errorf("no exact match found for EBS volume type %s in region %s", volumeType, region)
	}

	return ExtractOnDemandPrice(matchedProduct)
}

// mapVolumeTypeToAPIValue maps EBS volume types to their API filter values
func mapVolumeTypeToAPIValue(volumeType string) string {
	switch volumeType {
	case "gp2", "gp3":
		return "General Purpose"
	case "io1", "io2":
		return "Provisioned IOPS"
	case "st1":
		return "Throughput Optimized HDD"
	case "sc1":
		return "Cold HDD"
	case "standard":
		return "Magnetic"
	default:
		return "General Purpose"
	}
}

// CalculateEBSMonthlyCostWithSource calculates the monthly cost of an EBS volume
// and returns the pricing source
func CalculateEBSMonthlyCostWithSource(volumeType string, sizeGB int, region string) (float64, string) {
	PricingInitOnce.Do(InitPricingClient)

	cacheKey := fmt.Sprintf("ebs:%s:%s", volumeType, region)

	EBSPricingCacheLock.RLock()
	if price, found := EBSPricingCache[cacheKey]; found {
		EBSPricingCacheLock.RUnlock()

		UpdateCacheHitStats("EBS", region)

		return float64(sizeGB) * price, string(PricingSourceCache)
	}
	EBSPricingCacheLock.RUnlock()

	if PricingClient != nil {
		price, err := getEBSPriceFromAPI(volumeType, region)
		if err == nil {
			UpdateAPISuccessStats("EBS", region)

			EBSPricingCacheLock.Lock()
			EBSPricingCache[cacheKey] = price
			EBSPricingCacheLock.Unlock()

			return float64(sizeGB) * price, string(PricingSourceAPI)
		}

		log.Printf("Error getting EBS price from API: %v for %s in %s.", err, volumeType, region)
	}

	UpdateAPIFailureStats("EBS", region)

	return FallbackEBSMonthlyCost(volumeType, sizeGB, region), string(PricingSourceDefault)
}

// CalculateEBSMonthlyCost is a wrapper around CalculateEBSMonthlyCostWithSource
// that returns only the cost
func CalculateEBSMonthlyCost(volumeType string, sizeGB int, region string) float64 {
	cost, _ := CalculateEBSMonthlyCostWithSource(volumeType, sizeGB, region)
	return cost
}
