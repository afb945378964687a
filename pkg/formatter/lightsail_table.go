package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintLightsailInstancesTable prints Lightsail instances
func PrintLightsailInstancesTable(w io.Writer, instances []models.LightsailInstanceInfo) {
	fmt.Fprintln(w, "\n## Lightsail Instances")

	if len(instances) == 0 {
		fmt.Fprintln(w, "No Lightsail instances found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tSTATE\tBUNDLE\tBLUEPRINT\tREGION\tEST. COST/MO")

	var totalCost float64
	for _, instance := range instances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			PadToWidth(TruncateToWidth(instance.Name, maxNameWidth), maxNameWidth),
			instance.State,
			instance.BundleID,
			instance.BlueprintName,
			instance.Region,
			money(instance.EstimatedMonthlyCost),
		)
		totalCost += instance.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%s (%d instances)\n", money(totalCost), len(instances))
	tw.Flush()
}

// PrintLightsailDatabasesTable prints Lightsail managed databases
func PrintLightsailDatabasesTable(w io.Writer, databases []models.LightsailDatabaseInfo) {
	fmt.Fprintln(w, "\n## Lightsail Databases")

	if len(databases) == 0 {
		fmt.Fprintln(w, "No Lightsail databases found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tSTATE\tBUNDLE\tENGINE\tREGION")

	for _, database := range databases {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			PadToWidth(TruncateToWidth(database.Name, maxNameWidth), maxNameWidth),
			database.State,
			database.BundleID,
			database.Engine,
			database.Region,
		)
	}

	tw.Flush()
}
