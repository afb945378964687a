package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// EIPClient struct for Elastic IP client
type EIPClient struct {
	client *ec2.Client
	region string
}

// NewEIPClient creates a new EIPClient
func NewEIPClient(region string) (*EIPClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &EIPClient{
		client: client,
		region: region,
	}, nil
}

// GetUnassociatedEIPs returns all Elastic IPs not associated with an
// instance or network interface. Those are the ones that bill.
func (c *EIPClient) GetUnassociatedEIPs() ([]models.EIPInfo, error) {
	input := &ec2.DescribeAddressesInput{}

	result, err := c.client.DescribeAddresses(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying Elastic IPs: %w", err)
	}

	eips := []models.EIPInfo{}

	for _, eip := range result.Addresses {
		if eip.InstanceId != nil || eip.NetworkInterfaceId != nil {
			continue
		}

		eipInfo := models.EIPInfo{
			AllocationID:         utils.SafeDeref(eip.AllocationId),
			PublicIP:             utils.SafeDeref(eip.PublicIp),
			Domain:               string(eip.Domain),
			AssociationID:        utils.SafeDeref(eip.AssociationId),
			AssociationState:     "Unassociated",
			Region:               c.region,
			EstimatedMonthlyCost: pricing.UnassociatedEIPMonthlyCost,
			PricingSource:        string(pricing.PricingSourceFixed),
		}

		eips = append(eips, eipInfo)
	}

	return eips, nil
}

// ReleaseAddress releases an unassociated Elastic IP allocation
func (c *EIPClient) ReleaseAddress(allocationID string) error {
	input := &ec2.ReleaseAddressInput{
		AllocationId: aws.String(allocationID),
	}

	if _, err := c.client.ReleaseAddress(context.TODO(), input); err != nil {
		return fmt.Errorf("error releasing Elastic IP %s: %w", allocationID, err)
	}

	return nil
}
