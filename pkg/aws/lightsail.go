package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lightsail"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/utils"
)

// LightsailClient struct for Lightsail client
type LightsailClient struct {
	client *lightsail.Client
	region string
}

// NewLightsailClient creates a new LightsailClient
func NewLightsailClient(region string) (*LightsailClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &LightsailClient{
		client: lightsail.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetInstances returns Lightsail instances in the region with the bundle
// price as the monthly cost estimate
func (c *LightsailClient) GetInstances() ([]models.LightsailInstanceInfo, error) {
	result, err := c.client.GetInstances(context.TODO(), &lightsail.GetInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying Lightsail instances: %w", err)
	}

	bundlePrices := c.getBundlePrices()

	instances := []models.LightsailInstanceInfo{}
	for _, instance := range result.Instances {
		info := models.LightsailInstanceInfo{
			Name:          utils.SafeDeref(instance.Name),
			BundleID:      utils.SafeDeref(instance.BundleId),
			BlueprintName: utils.SafeDeref(instance.BlueprintName),
			Region:        c.region,
			CreatedAt:     instance.CreatedAt,
		}
		if instance.State != nil {
			info.State = utils.SafeDeref(instance.State.Name)
		}
		if price, ok := bundlePrices[info.BundleID]; ok {
			info.EstimatedMonthlyCost = price
		}

		instances = append(instances, info)
	}

	return instances, nil
}

// getBundlePrices maps bundle IDs to their monthly USD price. Bundle
// lookups failing is not fatal; instances then report zero cost.
func (c *LightsailClient) getBundlePrices() map[string]float64 {
	prices := map[string]float64{}

	result, err := c.client.GetBundles(context.TODO(), &lightsail.GetBundlesInput{})
	if err != nil {
		return prices
	}

	for _, bundle := range result.Bundles {
		if bundle.BundleId != nil && bundle.Price != nil {
			prices[*bundle.BundleId] = float64(*bundle.Price)
		}
	}

	return prices
}

// GetDatabases returns Lightsail managed databases in the region
func (c *LightsailClient) GetDatabases() ([]models.LightsailDatabaseInfo, error) {
	result, err := c.client.GetRelationalDatabases(context.TODO(), &lightsail.GetRelationalDatabasesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying Lightsail databases: %w", err)
	}

	databases := []models.LightsailDatabaseInfo{}
	for _, db := range result.RelationalDatabases {
		databases = append(databases, models.LightsailDatabaseInfo{
			Name:      utils.SafeDeref(db.Name),
			State:     utils.SafeDeref(db.State),
			BundleID:  utils.SafeDeref(db.RelationalDatabaseBundleId),
			Engine:    utils.SafeDeref(db.Engine),
			Region:    c.region,
			CreatedAt: db.CreatedAt,
		})
	}

	return databases, nil
}
