package aws

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/costctl/costctl/internal/models"
)

// CostExplorerClient struct for Cost Explorer client.
// Cost Explorer is a global API served out of us-east-1.
type CostExplorerClient struct {
	client *costexplorer.Client
}

// NewCostExplorerClient creates a new CostExplorerClient
func NewCostExplorerClient() (*CostExplorerClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &CostExplorerClient{
		client: costexplorer.NewFromConfig(cfg),
	}, nil
}

// GetTodayCostByService returns today's unblended cost grouped by service,
// sorted descending by amount
func (c *CostExplorerClient) GetTodayCostByService() ([]models.ServiceCostInfo, error) {
	now := time.Now().UTC()
	start := now.Format("2006-01-02")
	end := now.AddDate(0, 0, 1).Format("2006-01-02")

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
		Granularity: types.GranularityDaily,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []types.GroupDefinition{
			{
				Type: types.GroupDefinitionTypeDimension,
				Key:  aws.String("SERVICE"),
			},
		},
	}

	result, err := c.client.GetCostAndUsage(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying Cost Explorer: %w", err)
	}

	costs := []models.ServiceCostInfo{}

	for _, period := range result.ResultsByTime {
		for _, group := range period.Groups {
			if len(group.Keys) == 0 {
				continue
			}

			metric, ok := group.Metrics["UnblendedCost"]
			if !ok || metric.Amount == nil {
				continue
			}

			amount, err := strconv.ParseFloat(*metric.Amount, 64)
			if err != nil {
				continue
			}

			unit := "USD"
			if metric.Unit != nil {
				unit = *metric.Unit
			}

			costs = append(costs, models.ServiceCostInfo{
				ServiceName: group.Keys[0],
				Amount:      amount,
				Unit:        unit,
			})
		}
	}

	sort.Slice(costs, func(i, j int) bool {
		return costs[i].Amount > costs[j].Amount
	})

	return costs, nil
}
