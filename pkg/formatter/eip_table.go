package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintEIPsTable prints a formatted table of unassociated Elastic IPs
func PrintEIPsTable(w io.Writer, eips []models.EIPInfo) {
	if len(eips) == 0 {
		fmt.Fprintln(w, "No unassociated Elastic IPs found.")
		return
	}

	sort.Slice(eips, func(i, j int) bool {
		if eips[i].Region == eips[j].Region {
			return eips[i].PublicIP < eips[j].PublicIP
		}
		return eips[i].Region < eips[j].Region
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "ALLOCATION ID\tPUBLIC IP\tREGION\tSTATUS\tCOST/MO")

	for _, eip := range eips {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			eip.AllocationID,
			eip.PublicIP,
			eip.Region,
			eip.AssociationState,
			money(eip.EstimatedMonthlyCost),
		)
	}

	var totalMonthlyCost float64
	for _, eip := range eips {
		totalMonthlyCost += eip.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t%s (%d EIPs)\n",
		money(totalMonthlyCost),
		len(eips),
	)

	tw.Flush()
}

// PrintEIPsSummary displays unassociated Elastic IP counts by region
func PrintEIPsSummary(w io.Writer, eips []models.EIPInfo) {
	if len(eips) == 0 {
		return
	}

	regionCounts := make(map[string]int)
	for _, eip := range eips {
		regionCounts[eip.Region]++
	}

	var regions []string
	for region := range regionCounts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	fmt.Fprintln(w, "\n## Unassociated Elastic IPs by Region")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tCOUNT")
	for _, region := range regions {
		fmt.Fprintf(tw, "%s\t%d\n", region, regionCounts[region])
	}
	tw.Flush()
}
