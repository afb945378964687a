package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

// Route53Client struct for Route 53 client.
// Route 53 is a global service; the region only scopes the config.
type Route53Client struct {
	client *route53.Client
}

// NewRoute53Client creates a new Route53Client
func NewRoute53Client(region string) (*Route53Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &Route53Client{
		client: route53.NewFromConfig(cfg),
	}, nil
}

// ParseHostedZoneID strips the /hostedzone/ prefix from a zone ID
func ParseHostedZoneID(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}

// GetHostedZones returns all hosted zones with their per-zone cost and
// the count of records beyond the default NS/SOA pair
func (c *Route53Client) GetHostedZones() ([]models.ZoneInfo, error) {
	result, err := c.client.ListHostedZones(context.TODO(), &route53.ListHostedZonesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying hosted zones: %w", err)
	}

	zones := []models.ZoneInfo{}

	for _, zone := range result.HostedZones {
		info := models.ZoneInfo{
			ZoneID:               ParseHostedZoneID(utils.SafeDeref(zone.Id)),
			Name:                 utils.SafeDeref(zone.Name),
			RecordCount:          utils.SafeInt64(zone.ResourceRecordSetCount),
			EstimatedMonthlyCost: pricing.HostedZoneMonthlyCost,
		}
		if zone.Config != nil {
			info.Private = zone.Config.PrivateZone
		}

		records, err := c.GetRecords(info.ZoneID)
		if err == nil {
			info.NonDefaultRecords = len(records)
		}

		zones = append(zones, info)
	}

	return zones, nil
}

// GetRecords returns the record sets of a zone excluding the default
// NS and SOA records
func (c *Route53Client) GetRecords(zoneID string) ([]models.RecordInfo, error) {
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
	}

	result, err := c.client.ListResourceRecordSets(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying records for zone %s: %w", zoneID, err)
	}

	records := []models.RecordInfo{}
	for _, record := range result.ResourceRecordSets {
		recordType := string(record.Type)
		if recordType == "NS" || recordType == "SOA" {
			continue
		}

		info := models.RecordInfo{
			Name: utils.SafeDeref(record.Name),
			Type: recordType,
			TTL:  utils.SafeInt64(record.TTL),
		}

		for _, rr := range record.ResourceRecords {
			info.Values = append(info.Values, utils.SafeDeref(rr.Value))
		}
		if record.AliasTarget != nil {
			info.Alias = utils.SafeDeref(record.AliasTarget.DNSName)
		}

		records = append(records, info)
	}

	return records, nil
}

// GetHealthChecks returns all Route 53 health checks
func (c *Route53Client) GetHealthChecks() ([]models.HealthCheckInfo, error) {
	result, err := c.client.ListHealthChecks(context.TODO(), &route53.ListHealthChecksInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying health checks: %w", err)
	}

	checks := []models.HealthCheckInfo{}
	for _, check := range result.HealthChecks {
		info := models.HealthCheckInfo{
			HealthCheckID:        utils.SafeDeref(check.Id),
			EstimatedMonthlyCost: pricing.HealthCheckMonthlyCost,
		}

		if check.HealthCheckConfig != nil {
			info.Type = string(check.HealthCheckConfig.Type)
			target := utils.SafeDeref(check.HealthCheckConfig.FullyQualifiedDomainName)
			if target == "" {
				target = utils.SafeDeref(check.HealthCheckConfig.IPAddress)
			}
			info.Target = target
		}

		checks = append(checks, info)
	}

	return checks, nil
}

// DeleteHealthCheck deletes a Route 53 health check
func (c *Route53Client) DeleteHealthCheck(healthCheckID string) error {
	input := &route53.DeleteHealthCheckInput{
		HealthCheckId: aws.String(healthCheckID),
	}

	if _, err := c.client.DeleteHealthCheck(context.TODO(), input); err != nil {
		return fmt.Errorf("error deleting health check %s: %w", healthCheckID, err)
	}

	return nil
}

// DeleteHostedZone deletes a hosted zone. AWS refuses the call while
// non-default records remain, so we check first and report what blocks it.
func (c *Route53Client) DeleteHostedZone(zoneID string) error {
	records, err := c.GetRecords(zoneID)
	if err != nil {
		return err
	}

	if len(records) > 0 {
		return fmt.Errorf("hosted zone %s still has %d non-default records; delete them first", zoneID, len(records))
	}

	input := &route53.DeleteHostedZoneInput{
		Id: aws.String(zoneID),
	}

	if _, err := c.client.DeleteHostedZone(context.TODO(), input); err != nil {
		return fmt.Errorf("error deleting hosted zone %s: %w", zoneID, err)
	}

	return nil
}
