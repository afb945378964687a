package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// VPCClient struct for VPC audit client
type VPCClient struct {
	client     *ec2.Client
	logsClient *cloudwatchlogs.Client
	region     string
}

// NewVPCClient creates a new VPCClient
func NewVPCClient(region string) (*VPCClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &VPCClient{
		client:     ec2.NewFromConfig(cfg),
		logsClient: cloudwatchlogs.NewFromConfig(cfg),
		region:     region,
	}, nil
}

// AuditRegion gathers the billable and orphaned VPC resources in the region
func (c *VPCClient) AuditRegion() (*models.VPCAuditResult, error) {
	result := &models.VPCAuditResult{Region: c.region}

	natGateways, err := c.getNATGateways()
	if err != nil {
		return nil, err
	}
	result.NATGateways = natGateways

	endpoints, err := c.getVPCEndpoints()
	if err != nil {
		return nil, err
	}
	result.Endpoints = endpoints

	unusedGroups, err := c.getUnusedSecurityGroups()
	if err != nil {
		return nil, err
	}
	result.UnusedGroups = unusedGroups

	flowLogs, err := c.getFlowLogs()
	if err != nil {
		return nil, err
	}
	result.FlowLogs = flowLogs

	return result, nil
}

// getNATGateways returns NAT gateways that are still provisioned
func (c *VPCClient) getNATGateways() ([]models.NATGatewayInfo, error) {
	input := &ec2.DescribeNatGatewaysInput{
		Filter: []types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available", "pending"},
			},
		},
	}

	result, err := c.client.DescribeNatGateways(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying NAT gateways: %w", err)
	}

	gateways := []models.NATGatewayInfo{}
	for _, gw := range result.NatGateways {
		info := models.NATGatewayInfo{
			NatGatewayID:         utils.SafeDeref(gw.NatGatewayId),
			Name:                 utils.GetNameOrDefault(gw.Tags),
			State:                string(gw.State),
			VpcID:                utils.SafeDeref(gw.VpcId),
			SubnetID:             utils.SafeDeref(gw.SubnetId),
			Region:               c.region,
			EstimatedMonthlyCost: pricing.NATGatewayMonthlyCost,
		}
		if gw.CreateTime != nil {
			info.CreateTime = *gw.CreateTime
		}
		gateways = append(gateways, info)
	}

	return gateways, nil
}

// getVPCEndpoints returns all VPC endpoints; interface endpoints carry an
// hourly charge, gateway endpoints are free
func (c *VPCClient) getVPCEndpoints() ([]models.VPCEndpointInfo, error) {
	result, err := c.client.DescribeVpcEndpoints(context.TODO(), &ec2.DescribeVpcEndpointsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying VPC endpoints: %w", err)
	}

	endpoints := []models.VPCEndpointInfo{}
	for _, ep := range result.VpcEndpoints {
		var monthlyCost float64
		if ep.VpcEndpointType == types.VpcEndpointTypeInterface {
			monthlyCost = pricing.InterfaceEndpointMonthlyCost
		}

		endpoints = append(endpoints, models.VPCEndpointInfo{
			EndpointID:           utils.SafeDeref(ep.VpcEndpointId),
			ServiceName:          utils.SafeDeref(ep.ServiceName),
			EndpointType:         string(ep.VpcEndpointType),
			State:                string(ep.State),
			VpcID:                utils.SafeDeref(ep.VpcId),
			Region:               c.region,
			EstimatedMonthlyCost: monthlyCost,
		})
	}

	return endpoints, nil
}

// getUnusedSecurityGroups returns non-default security groups not referenced
// by any network interface
func (c *VPCClient) getUnusedSecurityGroups() ([]models.SecurityGroupInfo, error) {
	groupsResult, err := c.client.DescribeSecurityGroups(context.TODO(), &ec2.DescribeSecurityGroupsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying security groups: %w", err)
	}

	enisResult, err := c.client.DescribeNetworkInterfaces(context.TODO(), &ec2.DescribeNetworkInterfacesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying network interfaces: %w", err)
	}

	inUse := make(map[string]bool)
	for _, eni := range enisResult.NetworkInterfaces {
		for _, group := range eni.Groups {
			if group.GroupId != nil {
				inUse[*group.GroupId] = true
			}
		}
	}

	unused := []models.SecurityGroupInfo{}
	for _, group := range groupsResult.SecurityGroups {
		groupID := utils.SafeDeref(group.GroupId)
		groupName := utils.SafeDeref(group.GroupName)

		if groupName == "default" || inUse[groupID] {
			continue
		}

		unused = append(unused, models.SecurityGroupInfo{
			GroupID:     groupID,
			GroupName:   groupName,
			Description: utils.SafeDeref(group.Description),
			VpcID:       utils.SafeDeref(group.VpcId),
			Region:      c.region,
		})
	}

	return unused, nil
}

// getFlowLogs returns flow logs, checking whether CloudWatch Logs
// destinations still exist
func (c *VPCClient) getFlowLogs() ([]models.FlowLogInfo, error) {
	result, err := c.client.DescribeFlowLogs(context.TODO(), &ec2.DescribeFlowLogsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying flow logs: %w", err)
	}

	flowLogs := []models.FlowLogInfo{}
	for _, fl := range result.FlowLogs {
		info := models.FlowLogInfo{
			FlowLogID:       utils.SafeDeref(fl.FlowLogId),
			ResourceID:      utils.SafeDeref(fl.ResourceId),
			Status:          utils.SafeDeref(fl.FlowLogStatus),
			DestinationType: string(fl.LogDestinationType),
			LogGroupName:    utils.SafeDeref(fl.LogGroupName),
			Region:          c.region,
		}

		if info.LogGroupName != "" {
			info.LogGroupExists = c.logGroupExists(info.LogGroupName)
		}

		flowLogs = append(flowLogs, info)
	}

	return flowLogs, nil
}

// logGroupExists checks for an exact-name CloudWatch Logs group match
func (c *VPCClient) logGroupExists(name string) bool {
	result, err := c.logsClient.DescribeLogGroups(context.TODO(), &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(name),
	})
	if err != nil {
		return false
	}

	for _, group := range result.LogGroups {
		if group.LogGroupName != nil && strings.EqualFold(*group.LogGroupName, name) {
			return true
		}
	}
	return false
}
