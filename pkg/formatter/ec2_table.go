package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintInstancesTable prints a formatted table of stopped EC2 instances
func PrintInstancesTable(w io.Writer, instances []models.InstanceInfo) {
	if len(instances) == 0 {
		fmt.Fprintln(w, "No stopped EC2 instances found.")
		return
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].ElapsedDays > instances[j].ElapsedDays
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tINSTANCE ID\tTYPE\tREGION\tSTOPPED DAYS\tSTORAGE\tSTORAGE COST/MO\tPRICING")

	for _, instance := range instances {
		name := PadToWidth(TruncateToWidth(instance.Name, maxNameWidth), maxNameWidth)

		stoppedDays := "unknown"
		if instance.StoppedTime != nil {
			stoppedDays = fmt.Sprintf("%d", instance.ElapsedDays)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d GB\t%s\t%s\n",
			name,
			instance.InstanceID,
			instance.InstanceType,
			instance.Region,
			stoppedDays,
			instance.AttachedStorageGB,
			money(instance.EstimatedMonthlyCost),
			instance.PricingSource,
		)
	}

	var totalCost float64
	totalStorage := 0
	for _, instance := range instances {
		totalCost += instance.EstimatedMonthlyCost
		totalStorage += instance.AttachedStorageGB
	}
	fmt.Fprintf(tw, "Total:\t\t\t\t\t%d GB\t%s\t(%d instances)\n",
		totalStorage, money(totalCost), len(instances))

	tw.Flush()
}

// PrintInstancesSummary groups stopped instances by region
func PrintInstancesSummary(w io.Writer, instances []models.InstanceInfo) {
	if len(instances) == 0 {
		return
	}

	regionCounts := make(map[string]int)
	for _, instance := range instances {
		regionCounts[instance.Region]++
	}

	var regions []string
	for region := range regionCounts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	fmt.Fprintln(w, "\n## Stopped EC2 Instances by Region")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tCOUNT")
	for _, region := range regions {
		fmt.Fprintf(tw, "%s\t%d\n", region, regionCounts[region])
	}
	tw.Flush()
}
