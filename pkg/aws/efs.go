package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/efs"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// EFSClient struct for EFS client
type EFSClient struct {
	client *efs.Client
	region string
}

// NewEFSClient creates a new EFSClient
func NewEFSClient(region string) (*EFSClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &EFSClient{
		client: efs.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetFileSystems returns EFS file systems with sizes and whether a
// lifecycle policy moves data to cheaper storage classes
func (c *EFSClient) GetFileSystems() ([]models.FileSystemInfo, error) {
	result, err := c.client.DescribeFileSystems(context.TODO(), &efs.DescribeFileSystemsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying EFS file systems: %w", err)
	}

	fileSystems := []models.FileSystemInfo{}

	for _, fs := range result.FileSystems {
		fsID := utils.SafeDeref(fs.FileSystemId)

		var sizeBytes int64
		if fs.SizeInBytes != nil {
			sizeBytes = fs.SizeInBytes.Value
		}

		info := models.FileSystemInfo{
			FileSystemID:         fsID,
			Name:                 utils.SafeDeref(fs.Name),
			State:                string(fs.LifeCycleState),
			SizeBytes:            sizeBytes,
			PerformanceMode:      string(fs.PerformanceMode),
			MountTargetCount:     int(fs.NumberOfMountTargets),
			Region:               c.region,
			EstimatedMonthlyCost: pricing.CalculateEFSMonthlyCost(sizeBytes),
		}
		if info.Name == "" {
			info.Name = "Unnamed"
		}
		if fs.CreationTime != nil {
			info.CreationTime = *fs.CreationTime
		}

		if lifecycle, err := c.client.DescribeLifecycleConfiguration(context.TODO(), &efs.DescribeLifecycleConfigurationInput{
			FileSystemId: aws.String(fsID),
		}); err == nil {
			info.HasLifecyclePolicy = len(lifecycle.LifecyclePolicies) > 0
		}

		fileSystems = append(fileSystems, info)
	}

	return fileSystems, nil
}
