package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// RDSClient struct for RDS client
type RDSClient struct {
	client *rds.Client
	region string
}

// NewRDSClient creates a new RDSClient
func NewRDSClient(region string) (*RDSClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &RDSClient{
		client: rds.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetDBInstances returns all RDS instances in the region with a rough
// monthly cost estimate (instance class note plus storage at gp3 rates)
func (c *RDSClient) GetDBInstances() ([]models.DBInstanceInfo, error) {
	result, err := c.client.DescribeDBInstances(context.TODO(), &rds.DescribeDBInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying RDS instances: %w", err)
	}

	instances := []models.DBInstanceInfo{}

	for _, instance := range result.DBInstances {
		storageGB := int(utils.SafeInt32(instance.AllocatedStorage))
		instanceClass := utils.SafeDeref(instance.DBInstanceClass)

		var monthlyCost float64
		if strings.Contains(instanceClass, "t3.micro") {
			monthlyCost = pricing.DBMicroInstanceMonthlyCost
		}
		monthlyCost += pricing.FallbackEBSMonthlyCost("gp3", storageGB, c.region)

		info := models.DBInstanceInfo{
			Identifier:           utils.SafeDeref(instance.DBInstanceIdentifier),
			Engine:               utils.SafeDeref(instance.Engine),
			EngineVersion:        utils.SafeDeref(instance.EngineVersion),
			InstanceClass:        instanceClass,
			Status:               utils.SafeDeref(instance.DBInstanceStatus),
			StorageGB:            storageGB,
			StorageType:          utils.SafeDeref(instance.StorageType),
			MultiAZ:              utils.SafeBool(instance.MultiAZ),
			PubliclyAccessible:   utils.SafeBool(instance.PubliclyAccessible),
			ClusterIdentifier:    utils.SafeDeref(instance.DBClusterIdentifier),
			Region:               c.region,
			CreateTime:           instance.InstanceCreateTime,
			EstimatedMonthlyCost: monthlyCost,
		}

		instances = append(instances, info)
	}

	return instances, nil
}

// GetDBClusters returns all Aurora clusters in the region
func (c *RDSClient) GetDBClusters() ([]models.DBClusterInfo, error) {
	result, err := c.client.DescribeDBClusters(context.TODO(), &rds.DescribeDBClustersInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying RDS clusters: %w", err)
	}

	clusters := []models.DBClusterInfo{}

	for _, cluster := range result.DBClusters {
		info := models.DBClusterInfo{
			Identifier:       utils.SafeDeref(cluster.DBClusterIdentifier),
			Engine:           utils.SafeDeref(cluster.Engine),
			EngineVersion:    utils.SafeDeref(cluster.EngineVersion),
			Status:           utils.SafeDeref(cluster.Status),
			EngineMode:       utils.SafeDeref(cluster.EngineMode),
			MemberCount:      len(cluster.DBClusterMembers),
			StorageEncrypted: utils.SafeBool(cluster.StorageEncrypted),
			Region:           c.region,
			CreateTime:       cluster.ClusterCreateTime,
		}

		if cluster.ServerlessV2ScalingConfiguration != nil {
			info.EngineMode = "serverless-v2"
			if cluster.ServerlessV2ScalingConfiguration.MinCapacity != nil {
				info.MinCapacityACU = *cluster.ServerlessV2ScalingConfiguration.MinCapacity
			}
			if cluster.ServerlessV2ScalingConfiguration.MaxCapacity != nil {
				info.MaxCapacityACU = *cluster.ServerlessV2ScalingConfiguration.MaxCapacity
			}
		}

		clusters = append(clusters, info)
	}

	return clusters, nil
}
