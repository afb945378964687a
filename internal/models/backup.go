package models

import "time"

// BackupPlanInfo represents an AWS Backup plan and its rules
type BackupPlanInfo struct {
	PlanID       string
	PlanName     string
	Region       string
	CreationDate time.Time
	Rules        []BackupRuleInfo
}

// BackupRuleInfo represents a single rule inside a backup plan
type BackupRuleInfo struct {
	RuleName           string
	ScheduleExpression string
	TargetVaultName    string
	DeleteAfterDays    int64
}

// DLMPolicyInfo represents a Data Lifecycle Manager snapshot policy
type DLMPolicyInfo struct {
	PolicyID    string
	Description string
	State       string
	Region      string
}

// ScheduledRuleInfo represents an EventBridge rule with a schedule expression
type ScheduledRuleInfo struct {
	RuleName           string
	ScheduleExpression string
	State              string
	BackupRelated      bool
	Region             string
}
