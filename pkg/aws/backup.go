package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	"github.com/aws/aws-sdk-go-v2/service/dlm"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/utils"
)

// BackupClient bundles the services that schedule automated snapshots:
// AWS Backup, Data Lifecycle Manager and EventBridge
type BackupClient struct {
	backupClient *backup.Client
	dlmClient    *dlm.Client
	eventsClient *eventbridge.Client
	region       string
}

// NewBackupClient creates a new BackupClient
func NewBackupClient(region string) (*BackupClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &BackupClient{
		backupClient: backup.NewFromConfig(cfg),
		dlmClient:    dlm.NewFromConfig(cfg),
		eventsClient: eventbridge.NewFromConfig(cfg),
		region:       region,
	}, nil
}

// GetBackupPlans returns AWS Backup plans with their rules resolved
func (c *BackupClient) GetBackupPlans() ([]models.BackupPlanInfo, error) {
	result, err := c.backupClient.ListBackupPlans(context.TODO(), &backup.ListBackupPlansInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying backup plans: %w", err)
	}

	plans := []models.BackupPlanInfo{}

	for _, plan := range result.BackupPlansList {
		info := models.BackupPlanInfo{
			PlanID:   utils.SafeDeref(plan.BackupPlanId),
			PlanName: utils.SafeDeref(plan.BackupPlanName),
			Region:   c.region,
		}
		if plan.CreationDate != nil {
			info.CreationDate = *plan.CreationDate
		}

		details, err := c.backupClient.GetBackupPlan(context.TODO(), &backup.GetBackupPlanInput{
			BackupPlanId: aws.String(info.PlanID),
		})
		if err == nil && details.BackupPlan != nil {
			for _, rule := range details.BackupPlan.Rules {
				ruleInfo := models.BackupRuleInfo{
					RuleName:           utils.SafeDeref(rule.RuleName),
					ScheduleExpression: utils.SafeDeref(rule.ScheduleExpression),
					TargetVaultName:    utils.SafeDeref(rule.TargetBackupVaultName),
				}
				if rule.Lifecycle != nil {
					ruleInfo.DeleteAfterDays = utils.SafeInt64(rule.Lifecycle.DeleteAfterDays)
				}
				info.Rules = append(info.Rules, ruleInfo)
			}
		}

		plans = append(plans, info)
	}

	return plans, nil
}

// GetDLMPolicies returns Data Lifecycle Manager snapshot policies
func (c *BackupClient) GetDLMPolicies() ([]models.DLMPolicyInfo, error) {
	result, err := c.dlmClient.GetLifecyclePolicies(context.TODO(), &dlm.GetLifecyclePoliciesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying DLM policies: %w", err)
	}

	policies := []models.DLMPolicyInfo{}
	for _, policy := range result.Policies {
		policies = append(policies, models.DLMPolicyInfo{
			PolicyID:    utils.SafeDeref(policy.PolicyId),
			Description: utils.SafeDeref(policy.Description),
			State:       string(policy.State),
			Region:      c.region,
		})
	}

	return policies, nil
}

// GetScheduledRules returns EventBridge rules that fire on a schedule,
// flagging the ones whose name suggests snapshot or backup automation
func (c *BackupClient) GetScheduledRules() ([]models.ScheduledRuleInfo, error) {
	result, err := c.eventsClient.ListRules(context.TODO(), &eventbridge.ListRulesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying EventBridge rules: %w", err)
	}

	rules := []models.ScheduledRuleInfo{}
	for _, rule := range result.Rules {
		schedule := utils.SafeDeref(rule.ScheduleExpression)
		if schedule == "" {
			continue
		}

		name := utils.SafeDeref(rule.Name)
		rules = append(rules, models.ScheduledRuleInfo{
			RuleName:           name,
			ScheduleExpression: schedule,
			State:              string(rule.State),
			BackupRelated:      IsBackupRelatedRule(name),
			Region:             c.region,
		})
	}

	return rules, nil
}

// IsBackupRelatedRule reports whether a rule name looks like snapshot
// or backup automation
func IsBackupRelatedRule(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range []string{"backup", "snapshot", "ami", "dlm"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
