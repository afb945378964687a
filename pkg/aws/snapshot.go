package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// SnapshotClient struct for EBS snapshot client
type SnapshotClient struct {
	client *ec2.Client
	region string
}

// NewSnapshotClient creates a new SnapshotClient
func NewSnapshotClient(region string) (*SnapshotClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &SnapshotClient{
		client: client,
		region: region,
	}, nil
}

// GetOldSnapshots returns snapshots owned by this account older than
// thresholdDays, paginating through the full result set
func (c *SnapshotClient) GetOldSnapshots(thresholdDays int) ([]models.SnapshotInfo, error) {
	input := &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{"self"},
	}

	snapshots := []models.SnapshotInfo{}
	now := time.Now()

	paginator := ec2.NewDescribeSnapshotsPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("error querying EBS snapshots: %w", err)
		}

		for _, snapshot := range page.Snapshots {
			if snapshot.StartTime == nil {
				continue
			}

			ageDays := utils.AgeDays(*snapshot.StartTime, now)

			sizeGB := int(utils.SafeInt32(snapshot.VolumeSize))

			info := models.SnapshotInfo{
				SnapshotID:           utils.SafeDeref(snapshot.SnapshotId),
				Description:          utils.SafeDeref(snapshot.Description),
				VolumeID:             utils.SafeDeref(snapshot.VolumeId),
				SizeGB:               sizeGB,
				State:                string(snapshot.State),
				Region:               c.region,
				StartTime:            *snapshot.StartTime,
				AgeDays:              ageDays,
				Encrypted:            utils.SafeBool(snapshot.Encrypted),
				EstimatedMonthlyCost: pricing.CalculateSnapshotMonthlyCost(sizeGB),
			}

			if info.IsOld(thresholdDays) {
				snapshots = append(snapshots, info)
			}
		}
	}

	return snapshots, nil
}

// DeleteSnapshot deletes a single EBS snapshot
func (c *SnapshotClient) DeleteSnapshot(snapshotID string) error {
	input := &ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshotID),
	}

	if _, err := c.client.DeleteSnapshot(context.TODO(), input); err != nil {
		return fmt.Errorf("error deleting snapshot %s: %w", snapshotID, err)
	}

	return nil
}
