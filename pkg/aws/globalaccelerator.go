package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/globalaccelerator"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// GlobalAcceleratorAPIRegion is the only region serving the
// Global Accelerator control plane
const GlobalAcceleratorAPIRegion = "us-west-2"

// GlobalAcceleratorClient struct for Global Accelerator client
type GlobalAcceleratorClient struct {
	client *globalaccelerator.Client
}

// NewGlobalAcceleratorClient creates a new GlobalAcceleratorClient.
// The API endpoint lives in us-west-2 regardless of where listeners point.
func NewGlobalAcceleratorClient() (*GlobalAcceleratorClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(GlobalAcceleratorAPIRegion))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &GlobalAcceleratorClient{
		client: globalaccelerator.NewFromConfig(cfg),
	}, nil
}

// GetAccelerators returns all accelerators. The fixed fee applies even
// while an accelerator is disabled; the only way to stop billing is
// to delete it.
func (c *GlobalAcceleratorClient) GetAccelerators() ([]models.AcceleratorInfo, error) {
	result, err := c.client.ListAccelerators(context.TODO(), &globalaccelerator.ListAcceleratorsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying accelerators: %w", err)
	}

	accelerators := []models.AcceleratorInfo{}
	for _, acc := range result.Accelerators {
		info := models.AcceleratorInfo{
			AcceleratorArn:       utils.SafeDeref(acc.AcceleratorArn),
			Name:                 utils.SafeDeref(acc.Name),
			Status:               string(acc.Status),
			Enabled:              utils.SafeBool(acc.Enabled),
			CreatedTime:          acc.CreatedTime,
			EstimatedMonthlyCost: pricing.AcceleratorMonthlyCost,
		}

		for _, ipSet := range acc.IpSets {
			info.IPAddresses = append(info.IPAddresses, ipSet.IpAddresses...)
		}

		accelerators = append(accelerators, info)
	}

	return accelerators, nil
}
