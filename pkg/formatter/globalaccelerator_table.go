package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintAcceleratorsTable prints Global Accelerator accelerators.
// Disabled accelerators keep billing until deleted, so the table
// surfaces the Enabled flag prominently.
func PrintAcceleratorsTable(w io.Writer, accelerators []models.AcceleratorInfo) {
	if len(accelerators) == 0 {
		fmt.Fprintln(w, "No Global Accelerator accelerators found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tSTATUS\tENABLED\tIP ADDRESSES\tMONTHLY COST")

	var totalCost float64
	for _, accelerator := range accelerators {
		ips := strings.Join(accelerator.IPAddresses, ", ")
		if ips == "" {
			ips = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
			PadToWidth(TruncateToWidth(accelerator.Name, maxNameWidth), maxNameWidth),
			accelerator.Status,
			accelerator.Enabled,
			ips,
			money(accelerator.EstimatedMonthlyCost),
		)
		totalCost += accelerator.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t%s (%d accelerators)\n", money(totalCost), len(accelerators))

	tw.Flush()
}
