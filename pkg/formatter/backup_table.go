package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintBackupPlansTable prints AWS Backup plans and their rules
func PrintBackupPlansTable(w io.Writer, plans []models.BackupPlanInfo) {
	fmt.Fprintln(w, "\n## AWS Backup Plans")

	if len(plans) == 0 {
		fmt.Fprintln(w, "No backup plans found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "PLAN NAME\tRULE\tSCHEDULE\tVAULT\tRETENTION\tREGION")

	for _, plan := range plans {
		if len(plan.Rules) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", plan.PlanName, plan.Region)
			continue
		}
		for _, rule := range plan.Rules {
			retention := "forever"
			if rule.DeleteAfterDays > 0 {
				retention = fmt.Sprintf("%d days", rule.DeleteAfterDays)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				plan.PlanName,
				rule.RuleName,
				rule.ScheduleExpression,
				rule.TargetVaultName,
				retention,
				plan.Region,
			)
		}
	}

	tw.Flush()
}

// PrintDLMPoliciesTable prints Data Lifecycle Manager policies
func PrintDLMPoliciesTable(w io.Writer, policies []models.DLMPolicyInfo) {
	fmt.Fprintln(w, "\n## DLM Lifecycle Policies")

	if len(policies) == 0 {
		fmt.Fprintln(w, "No DLM policies found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "POLICY ID\tSTATE\tREGION\tDESCRIPTION")

	for _, policy := range policies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			policy.PolicyID,
			policy.State,
			policy.Region,
			TruncateToWidth(policy.Description, 50),
		)
	}

	tw.Flush()
}

// PrintScheduledRulesTable prints EventBridge scheduled rules, flagging
// the ones whose name suggests a backup or snapshot job
func PrintScheduledRulesTable(w io.Writer, rules []models.ScheduledRuleInfo) {
	fmt.Fprintln(w, "\n## EventBridge Scheduled Rules")

	if len(rules) == 0 {
		fmt.Fprintln(w, "No scheduled rules found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "RULE NAME\tSCHEDULE\tSTATE\tBACKUP-RELATED\tREGION")

	for _, rule := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			TruncateToWidth(rule.RuleName, 40),
			rule.ScheduleExpression,
			rule.State,
			rule.BackupRelated,
			rule.Region,
		)
	}

	tw.Flush()
}
