package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintServiceCostsTable prints today's cost per service, as returned by
// Cost Explorer. Entries arrive sorted by amount descending.
func PrintServiceCostsTable(w io.Writer, costs []models.ServiceCostInfo) {
	if len(costs) == 0 {
		fmt.Fprintln(w, "No cost data returned for today.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "SERVICE\tCOST TODAY")

	var total float64
	for _, cost := range costs {
		fmt.Fprintf(tw, "%s\t%.4f %s\n",
			TruncateToWidth(cost.ServiceName, 50),
			cost.Amount,
			cost.Unit,
		)
		total += cost.Amount
	}

	fmt.Fprintf(tw, "Total:\t%.4f USD\n", total)

	tw.Flush()
}
