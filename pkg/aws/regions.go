package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/costctl/costctl/pkg/utils"
)

// GetAllRegions resolves the live list of enabled regions.
// On error it falls back to the common-region list so a permissions gap
// never blanks an entire run.
func GetAllRegions() ([]string, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion("us-east-1"))
	if err != nil {
		return utils.FallbackRegions, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	result, err := client.DescribeRegions(context.TODO(), &ec2.DescribeRegionsInput{})
	if err != nil {
		return utils.FallbackRegions, fmt.Errorf("error querying regions: %w", err)
	}

	regions := []string{}
	for _, region := range result.Regions {
		if region.RegionName != nil {
			regions = append(regions, *region.RegionName)
		}
	}

	if len(regions) == 0 {
		return utils.FallbackRegions, nil
	}

	return regions, nil
}
