package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/synthetics"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// FreeDashboardCount is the number of CloudWatch dashboards in the free tier
const FreeDashboardCount = 3

// CloudWatchClient struct for CloudWatch and Synthetics
type CloudWatchClient struct {
	cwClient    *cloudwatch.Client
	synthClient *synthetics.Client
	region      string
}

// NewCloudWatchClient creates a new CloudWatchClient
func NewCloudWatchClient(region string) (*CloudWatchClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &CloudWatchClient{
		cwClient:    cloudwatch.NewFromConfig(cfg),
		synthClient: synthetics.NewFromConfig(cfg),
		region:      region,
	}, nil
}

// GetAlarms returns all CloudWatch alarms in the region
func (c *CloudWatchClient) GetAlarms() ([]models.AlarmInfo, error) {
	result, err := c.cwClient.DescribeAlarms(context.TODO(), &cloudwatch.DescribeAlarmsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying CloudWatch alarms: %w", err)
	}

	alarms := []models.AlarmInfo{}
	for _, alarm := range result.MetricAlarms {
		alarms = append(alarms, models.AlarmInfo{
			AlarmName:      utils.SafeDeref(alarm.AlarmName),
			State:          string(alarm.StateValue),
			ActionsEnabled: utils.SafeBool(alarm.ActionsEnabled),
			Namespace:      utils.SafeDeref(alarm.Namespace),
			MetricName:     utils.SafeDeref(alarm.MetricName),
			Region:         c.region,
		})
	}

	return alarms, nil
}

// GetDashboards returns CloudWatch dashboards; everything past the free
// tier is priced at the per-dashboard rate
func (c *CloudWatchClient) GetDashboards() ([]models.DashboardInfo, error) {
	result, err := c.cwClient.ListDashboards(context.TODO(), &cloudwatch.ListDashboardsInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying CloudWatch dashboards: %w", err)
	}

	dashboards := []models.DashboardInfo{}
	for i, dashboard := range result.DashboardEntries {
		var monthlyCost float64
		if i >= FreeDashboardCount {
			monthlyCost = pricing.DashboardMonthlyCost
		}

		dashboards = append(dashboards, models.DashboardInfo{
			DashboardName:        utils.SafeDeref(dashboard.DashboardName),
			Region:               c.region,
			EstimatedMonthlyCost: monthlyCost,
		})
	}

	return dashboards, nil
}

// GetCanaries returns CloudWatch Synthetics canaries. Running canaries
// bill per execution, so stopped ones are the cheap ones.
func (c *CloudWatchClient) GetCanaries() ([]models.CanaryInfo, error) {
	result, err := c.synthClient.DescribeCanaries(context.TODO(), &synthetics.DescribeCanariesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying Synthetics canaries: %w", err)
	}

	canaries := []models.CanaryInfo{}
	for _, canary := range result.Canaries {
		info := models.CanaryInfo{
			CanaryName: utils.SafeDeref(canary.Name),
			Region:     c.region,
		}
		if canary.Status != nil {
			info.State = string(canary.Status.State)
		}
		if canary.Schedule != nil {
			info.Schedule = utils.SafeDeref(canary.Schedule.Expression)
		}

		canaries = append(canaries, info)
	}

	return canaries, nil
}
