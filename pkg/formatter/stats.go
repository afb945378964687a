package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/pkg/pricing"
)

// PrintPricingAPIStats prints a summary of Pricing API call statistics
func PrintPricingAPIStats(w io.Writer) {
	stats := pricing.GetAPIStats()
	if len(stats) == 0 {
		return
	}

	fmt.Fprintln(w, "\n## Pricing API Statistics")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "SERVICE\tREGION\tSUCCESS\tFAILURE\tCACHE HITS")

	var services []string
	for service := range stats {
		services = append(services, service)
	}
	sort.Strings(services)

	for _, service := range services {
		var regions []string
		for region := range stats[service] {
			regions = append(regions, region)
		}
		sort.Strings(regions)

		for _, region := range regions {
			counts := stats[service][region]
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
				service,
				region,
				counts["success"],
				counts["failure"],
				counts["cache"],
			)
		}
	}

	tw.Flush()
}
