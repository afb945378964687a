package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// KMSClient struct for KMS client
type KMSClient struct {
	client *kms.Client
	region string
}

// NewKMSClient creates a new KMSClient
func NewKMSClient(region string) (*KMSClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &KMSClient{
		client: kms.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetCustomerManagedKeys returns customer-managed keys in the region.
// AWS-managed keys are free and skipped. Keys pending deletion are
// reported but no longer bill.
func (c *KMSClient) GetCustomerManagedKeys() ([]models.KeyInfo, error) {
	result, err := c.client.ListKeys(context.TODO(), &kms.ListKeysInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying KMS keys: %w", err)
	}

	keys := []models.KeyInfo{}

	for _, key := range result.Keys {
		keyID := utils.SafeDeref(key.KeyId)

		details, err := c.client.DescribeKey(context.TODO(), &kms.DescribeKeyInput{
			KeyId: aws.String(keyID),
		})
		if err != nil {
			// AccessDenied on individual keys is common with scoped policies
			continue
		}

		metadata := details.KeyMetadata
		if metadata == nil || metadata.KeyManager != types.KeyManagerTypeCustomer {
			continue
		}

		info := models.KeyInfo{
			KeyID:       keyID,
			Description: utils.SafeDeref(metadata.Description),
			KeyState:    string(metadata.KeyState),
			Region:      c.region,
		}
		if metadata.CreationDate != nil {
			info.CreationDate = *metadata.CreationDate
		}

		if info.IsBillable() {
			info.EstimatedMonthlyCost = pricing.CustomerKeyMonthlyCost
		}

		if aliases, err := c.client.ListAliases(context.TODO(), &kms.ListAliasesInput{
			KeyId: aws.String(keyID),
		}); err == nil {
			for _, alias := range aliases.Aliases {
				info.Aliases = append(info.Aliases, utils.SafeDeref(alias.AliasName))
			}
		}

		if grants, err := c.client.ListGrants(context.TODO(), &kms.ListGrantsInput{
			KeyId: aws.String(keyID),
		}); err == nil {
			info.GrantCount = len(grants.Grants)
		}

		keys = append(keys, info)
	}

	return keys, nil
}
