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

// EC2Client struct for EC2 client
type EC2Client struct {
	client *ec2.Client
	region string
}

// NewEC2Client creates a new EC2Client
func NewEC2Client(region string) (*EC2Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &EC2Client{
		client: client,
		region: region,
	}, nil
}

// GetStoppedInstances returns all EC2 instances in Stopped state.
// Stopped instances no longer bill compute but their EBS volumes do,
// so the attached storage is priced as the ongoing cost.
func (c *EC2Client) GetStoppedInstances() ([]models.InstanceInfo, error) {
	filter := types.Filter{
		Name:   aws.String("instance-state-name"),
		Values: []string{"stopped"},
	}

	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{filter},
	}

	result, err := c.client.DescribeInstances(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying EC2 instances: %w", err)
	}

	instances := []models.InstanceInfo{}

	for _, reservation := range result.Reservations {
		for _, instance := range reservation.Instances {
			name := utils.GetNameOrDefault(instance.Tags)

			// Stop time comes from the StateTransitionReason text
			var stoppedTime *time.Time
			var elapsedDays int

			if instance.StateTransitionReason != nil && len(*instance.StateTransitionReason) > 0 {
				stoppedTime = utils.ParseStateTransitionTime(*instance.StateTransitionReason)
				if stoppedTime != nil {
					elapsedDays = utils.CalculateElapsedDays(*stoppedTime)
				}
			}

			var volumeIDs []string
			for _, bdm := range instance.BlockDeviceMappings {
				if bdm.Ebs != nil && bdm.Ebs.VolumeId != nil {
					volumeIDs = append(volumeIDs, *bdm.Ebs.VolumeId)
				}
			}

			storageGB, storageCost, pricingSource := c.describeAttachedStorage(volumeIDs)

			info := models.InstanceInfo{
				InstanceID:           utils.SafeDeref(instance.InstanceId),
				Name:                 name,
				InstanceType:         string(instance.InstanceType),
				State:                string(instance.State.Name),
				Region:               c.region,
				StoppedTime:          stoppedTime,
				ElapsedDays:          elapsedDays,
				VolumeIDs:            volumeIDs,
				AttachedStorageGB:    storageGB,
				EstimatedMonthlyCost: storageCost,
				PricingSource:        pricingSource,
			}
			if instance.Placement != nil {
				info.AvailabilityZone = utils.SafeDeref(instance.Placement.AvailabilityZone)
			}
			if instance.LaunchTime != nil {
				info.LaunchTime = *instance.LaunchTime
			}

			instances = append(instances, info)
		}
	}

	return instances, nil
}

// describeAttachedStorage sums the size and monthly storage cost of the
// given volumes. Lookup failures blank the cost rather than fail the scan.
func (c *EC2Client) describeAttachedStorage(volumeIDs []string) (int, float64, string) {
	if len(volumeIDs) == 0 {
		return 0, 0, string(pricing.PricingSourceNA)
	}

	result, err := c.client.DescribeVolumes(context.TODO(), &ec2.DescribeVolumesInput{
		VolumeIds: volumeIDs,
	})
	if err != nil {
		return 0, 0, string(pricing.PricingSourceNA)
	}

	totalGB := 0
	var totalCost float64
	source := string(pricing.PricingSourceNA)

	for _, volume := range result.Volumes {
		sizeGB := int(utils.SafeInt32(volume.Size))
		totalGB += sizeGB

		cost, src := pricing.CalculateEBSMonthlyCostWithSource(string(volume.VolumeType), sizeGB, c.region)
		totalCost += cost
		source = src
	}

	return totalGB, totalCost, source
}

// TerminateInstance terminates a stopped EC2 instance
func (c *EC2Client) TerminateInstance(instanceID string) (string, error) {
	input := &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	}

	result, err := c.client.TerminateInstances(context.TODO(), input)
	if err != nil {
		return "", fmt.Errorf("error terminating instance %s: %w", instanceID, err)
	}

	if len(result.TerminatingInstances) == 0 {
		return "", fmt.Errorf("no state change returned for instance %s", instanceID)
	}

	return string(result.TerminatingInstances[0].CurrentState.Name), nil
}
