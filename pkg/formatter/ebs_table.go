package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// maxNameWidth defines the maximum width for the Name column
const maxNameWidth = 20

// PrintVolumesTable prints a formatted table of available EBS volumes
func PrintVolumesTable(w io.Writer, volumes []models.VolumeInfo) {
	if len(volumes) == 0 {
		fmt.Fprintln(w, "No available EBS volumes found.")
		return
	}

	// Highest cost first
	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].EstimatedMonthlyCost > volumes[j].EstimatedMonthlyCost
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tVOLUME ID\tTYPE\tSIZE\tREGION\tUNUSED DAYS\tMONTHLY COST\tPRICING")

	for _, volume := range volumes {
		name := PadToWidth(TruncateToWidth(volume.Name, maxNameWidth), maxNameWidth)

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d GB\t%s\t%d\t%s\t%s\n",
			name,
			volume.VolumeID,
			volume.VolumeType,
			volume.Size,
			volume.Region,
			volume.ElapsedDaysSinceUsed,
			money(volume.EstimatedMonthlyCost),
			volume.PricingSource,
		)
	}

	printVolumeTotals(tw, volumes)

	tw.Flush()
}

// printVolumeTotals prints the summary information at the bottom of the table
func printVolumeTotals(tw *tabwriter.Writer, volumes []models.VolumeInfo) {
	totalSize := 0
	var totalCost float64

	for _, volume := range volumes {
		totalCost += volume.EstimatedMonthlyCost
		totalSize += volume.Size
	}

	fmt.Fprintf(tw, "Total:\t\t\t%d GB\t\t\t%s\n",
		totalSize,
		money(totalCost),
	)
}

// PrintVolumesSummary displays a per-type summary of the unattached volumes
func PrintVolumesSummary(w io.Writer, volumes []models.VolumeInfo) {
	if len(volumes) == 0 {
		return
	}

	volumeTypes := make(map[string]struct {
		count int
		size  int
		cost  float64
	})

	for _, volume := range volumes {
		typeInfo := volumeTypes[volume.VolumeType]
		typeInfo.count++
		typeInfo.size += volume.Size
		typeInfo.cost += volume.EstimatedMonthlyCost
		volumeTypes[volume.VolumeType] = typeInfo
	}

	fmt.Fprintln(w, "\n## Available EBS Volumes Summary")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "VOLUME TYPE\tCOUNT\tTOTAL SIZE\tPOTENTIAL MONTHLY SAVINGS")

	types := make([]string, 0, len(volumeTypes))
	for volumeType := range volumeTypes {
		types = append(types, volumeType)
	}
	sort.Strings(types)

	for _, volumeType := range types {
		info := volumeTypes[volumeType]
		fmt.Fprintf(tw, "%s\t%d\t%d GB\t%s\n",
			volumeType,
			info.count,
			info.size,
			money(info.cost),
		)
	}

	tw.Flush()
}
