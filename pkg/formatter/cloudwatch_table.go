package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintAlarmsTable prints CloudWatch alarms
func PrintAlarmsTable(w io.Writer, alarms []models.AlarmInfo) {
	fmt.Fprintln(w, "\n## CloudWatch Alarms")

	if len(alarms) == 0 {
		fmt.Fprintln(w, "No CloudWatch alarms found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "ALARM NAME\tSTATE\tACTIONS\tNAMESPACE\tMETRIC\tREGION")

	for _, alarm := range alarms {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\n",
			TruncateToWidth(alarm.AlarmName, 40),
			alarm.State,
			alarm.ActionsEnabled,
			alarm.Namespace,
			alarm.MetricName,
			alarm.Region,
		)
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%d alarms\n", len(alarms))
	tw.Flush()
}

// PrintDashboardsTable prints CloudWatch dashboards. Only dashboards past
// the free tier carry a monthly cost.
func PrintDashboardsTable(w io.Writer, dashboards []models.DashboardInfo) {
	fmt.Fprintln(w, "\n## CloudWatch Dashboards")

	if len(dashboards) == 0 {
		fmt.Fprintln(w, "No CloudWatch dashboards found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "DASHBOARD NAME\tREGION\tMONTHLY COST")

	var totalCost float64
	for _, dashboard := range dashboards {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			TruncateToWidth(dashboard.DashboardName, 40),
			dashboard.Region,
			money(dashboard.EstimatedMonthlyCost),
		)
		totalCost += dashboard.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t%s (%d dashboards)\n", money(totalCost), len(dashboards))
	tw.Flush()
}

// PrintCanariesTable prints CloudWatch Synthetics canaries
func PrintCanariesTable(w io.Writer, canaries []models.CanaryInfo) {
	fmt.Fprintln(w, "\n## Synthetics Canaries")

	if len(canaries) == 0 {
		fmt.Fprintln(w, "No Synthetics canaries found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "CANARY NAME\tSTATE\tSCHEDULE\tREGION")

	runningCount := 0
	for _, canary := range canaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			canary.CanaryName,
			canary.State,
			canary.Schedule,
			canary.Region,
		)
		if canary.IsRunning() {
			runningCount++
		}
	}

	fmt.Fprintf(tw, "Total:\t\t\t%d canaries (%d running)\n", len(canaries), runningCount)
	tw.Flush()
}
