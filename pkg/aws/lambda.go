package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/utils"
)

// LambdaClient struct for Lambda client
type LambdaClient struct {
	client *lambda.Client
	region string
}

// NewLambdaClient creates a new LambdaClient
func NewLambdaClient(region string) (*LambdaClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &LambdaClient{
		client: lambda.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetFunctions returns the Lambda function inventory for the region
func (c *LambdaClient) GetFunctions() ([]models.FunctionInfo, error) {
	functions := []models.FunctionInfo{}

	paginator := lambda.NewListFunctionsPaginator(c.client, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("error querying Lambda functions: %w", err)
		}

		for _, fn := range page.Functions {
			functions = append(functions, models.FunctionInfo{
				FunctionName: utils.SafeDeref(fn.FunctionName),
				Runtime:      string(fn.Runtime),
				MemoryMB:     utils.SafeInt32(fn.MemorySize),
				CodeSize:     fn.CodeSize,
				LastModified: utils.SafeDeref(fn.LastModified),
				Region:       c.region,
			})
		}
	}

	return functions, nil
}
