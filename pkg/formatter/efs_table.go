package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/costctl/costctl/internal/models"
)

// PrintFileSystemsTable prints EFS file systems, largest first
func PrintFileSystemsTable(w io.Writer, fileSystems []models.FileSystemInfo) {
	if len(fileSystems) == 0 {
		fmt.Fprintln(w, "No EFS file systems found.")
		return
	}

	sort.Slice(fileSystems, func(i, j int) bool {
		return fileSystems[i].SizeBytes > fileSystems[j].SizeBytes
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tFILE SYSTEM ID\tSTATE\tSIZE\tMODE\tLIFECYCLE\tMOUNT TARGETS\tREGION\tEST. COST/MO")

	var totalCost float64
	var totalBytes int64
	for _, fileSystem := range fileSystems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%d\t%s\t%s\n",
			PadToWidth(TruncateToWidth(fileSystem.Name, maxNameWidth), maxNameWidth),
			fileSystem.FileSystemID,
			fileSystem.State,
			humanize.IBytes(uint64(fileSystem.SizeBytes)),
			fileSystem.PerformanceMode,
			fileSystem.HasLifecyclePolicy,
			fileSystem.MountTargetCount,
			fileSystem.Region,
			money(fileSystem.EstimatedMonthlyCost),
		)
		totalCost += fileSystem.EstimatedMonthlyCost
		totalBytes += fileSystem.SizeBytes
	}

	fmt.Fprintf(tw, "Total:\t\t\t%s\t\t\t\t\t%s (%d file systems)\n",
		humanize.IBytes(uint64(totalBytes)), money(totalCost), len(fileSystems))

	tw.Flush()
}
