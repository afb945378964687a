package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintHostedZonesTable prints Route 53 hosted zones
func PrintHostedZonesTable(w io.Writer, zones []models.ZoneInfo) {
	if len(zones) == 0 {
		fmt.Fprintln(w, "No hosted zones found.")
		return
	}

	sort.Slice(zones, func(i, j int) bool {
		return zones[i].Name < zones[j].Name
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "ZONE NAME\tZONE ID\tTYPE\tRECORDS\tEXTRA RECORDS\tMONTHLY COST")

	var totalCost float64
	for _, zone := range zones {
		zoneType := "Public"
		if zone.Private {
			zoneType = "Private"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			zone.Name,
			zone.ZoneID,
			zoneType,
			zone.RecordCount,
			zone.NonDefaultRecords,
			money(zone.EstimatedMonthlyCost),
		)
		totalCost += zone.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%s (%d zones)\n", money(totalCost), len(zones))

	tw.Flush()
}

// PrintHealthChecksTable prints Route 53 health checks
func PrintHealthChecksTable(w io.Writer, healthChecks []models.HealthCheckInfo) {
	fmt.Fprintln(w, "\n## Route 53 Health Checks")

	if len(healthChecks) == 0 {
		fmt.Fprintln(w, "No health checks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "HEALTH CHECK ID\tTYPE\tTARGET\tMONTHLY COST")

	var totalCost float64
	for _, healthCheck := range healthChecks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			healthCheck.HealthCheckID,
			healthCheck.Type,
			TruncateToWidth(healthCheck.Target, 45),
			money(healthCheck.EstimatedMonthlyCost),
		)
		totalCost += healthCheck.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t%s (%d health checks)\n", money(totalCost), len(healthChecks))

	tw.Flush()
}

// PrintRecordsTable prints the record sets of a hosted zone
func PrintRecordsTable(w io.Writer, zoneName string, records []models.RecordInfo) {
	fmt.Fprintf(w, "\n## Records in %s\n", zoneName)

	if len(records) == 0 {
		fmt.Fprintln(w, "No records beyond the default NS and SOA records.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tTYPE\tTTL\tVALUE")

	for _, record := range records {
		value := record.Alias
		if value == "" {
			value = strings.Join(record.Values, ", ")
		} else {
			value = "ALIAS " + value
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			record.Name,
			record.Type,
			record.TTL,
			TruncateToWidth(value, 60),
		)
	}

	tw.Flush()
}
