package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// EBSClient struct for EBS client
type EBSClient struct {
	client *ec2.Client
	region string
}

// NewEBSClient creates a new EBSClient
func NewEBSClient(region string) (*EBSClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &EBSClient{
		client: client,
		region: region,
	}, nil
}

// GetAvailableVolumes returns a list of all EBS volumes in Available state
func (c *EBSClient) GetAvailableVolumes() ([]models.VolumeInfo, error) {
	// Only volumes in 'available' state are unattached
	filter := types.Filter{
		Name:   aws.String("status"),
		Values: []string{"available"},
	}

	input := &ec2.DescribeVolumesInput{
		Filters: []types.Filter{filter},
	}

	result, err := c.client.DescribeVolumes(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying EBS volumes: %w", err)
	}

	volumes := []models.VolumeInfo{}

	for _, volume := range result.Volumes {
		name := utils.GetNameOrDefault(volume.Tags)

		// Last attachment time, falling back to creation time
		var lastAttachmentTime *time.Time
		var elapsedDays int

		for _, attachment := range volume.Attachments {
			if attachment.AttachTime != nil {
				if lastAttachmentTime == nil || attachment.AttachTime.After(*lastAttachmentTime) {
					lastAttachmentTime = attachment.AttachTime
				}
			}
		}

		if lastAttachmentTime != nil {
			elapsedDays = utils.CalculateElapsedDays(*lastAttachmentTime)
		} else if volume.CreateTime != nil {
			lastAttachmentTime = volume.CreateTime
			elapsedDays = utils.CalculateElapsedDays(*volume.CreateTime)
		}

		volumeType := string(volume.VolumeType)
		volumeSizeGB := int(utils.SafeInt32(volume.Size))

		monthlyCost, pricingSource := pricing.CalculateEBSMonthlyCostWithSource(volumeType, volumeSizeGB, c.region)

		volumeInfo := models.VolumeInfo{
			VolumeID:             utils.SafeDeref(volume.VolumeId),
			Name:                 name,
			Size:                 volumeSizeGB,
			VolumeType:           volumeType,
			State:                string(volume.State),
			Region:               c.region,
			AvailabilityZone:     utils.SafeDeref(volume.AvailabilityZone),
			LastAttachmentTime:   lastAttachmentTime,
			ElapsedDaysSinceUsed: elapsedDays,
			EstimatedMonthlyCost: monthlyCost,
			PricingSource:        pricingSource,
		}
		if volume.CreateTime != nil {
			volumeInfo.CreationTime = *volume.CreateTime
		}

		volumes = append(volumes, volumeInfo)
	}

	return volumes, nil
}

// DeleteVolume deletes an unattached EBS volume
func (c *EBSClient) DeleteVolume(volumeID string) error {
	input := &ec2.DeleteVolumeInput{
		VolumeId: aws.String(volumeID),
	}

	if _, err := c.client.DeleteVolume(context.TODO(), input); err != nil {
		return fmt.Errorf("error deleting volume %s: %w", volumeID, err)
	}

	return nil
}
