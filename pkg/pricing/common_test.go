package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePriceJSON = `{
	"terms": {
		"OnDemand": {
			"SKU123.JRTCKXETXF": {
				"priceDimensions": {
					"SKU123.JRTCKXETXF.6YS6EN2CT7": {
						"unit": "GB-Mo",
						"pricePerUnit": {
							"USD": "0.0800000000"
						}
					}
				}
			}
		}
	}
}`

func TestExtractOnDemandPrice(t *testing.T) {
	price, err := ExtractOnDemandPrice(samplePriceJSON)
	require.NoError(t, err)
	assert.InDelta(t, 0.08, price, 0.0001)
}

func TestExtractOnDemandPriceErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"invalid json", "{not json"},
		{"missing terms", `{"product": {}}`},
		{"missing OnDemand", `{"terms": {}}`},
		{"empty OnDemand", `{"terms": {"OnDemand": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractOnDemandPrice(tt.json)
			assert.Error(t, err)
		})
	}
}

func TestPricingAPIStats(t *testing.T) {
	UpdateAPISuccessStats("EBS", "us-east-1")
	UpdateAPISuccessStats("EBS", "us-east-1")
	UpdateAPIFailureStats("EBS", "us-east-1")
	UpdateCacheHitStats("EBS", "eu-west-2")

	stats := GetAPIStats()
	require.Contains(t, stats, "EBS")

	assert.Equal(t, 2, stats["EBS"]["us-east-1"]["success"])
	assert.Equal(t, 1, stats["EBS"]["us-east-1"]["failure"])
	assert.Equal(t, 1, stats["EBS"]["eu-west-2"]["cache"])

	// The returned map is a copy; mutating it must not leak back
	stats["EBS"]["us-east-1"]["success"] = 99
	assert.Equal(t, 2, GetAPIStats()["EBS"]["us-east-1"]["success"])
}
