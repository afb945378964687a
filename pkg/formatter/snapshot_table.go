package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintSnapshotsTable prints old snapshots, oldest first
func PrintSnapshotsTable(w io.Writer, snapshots []models.SnapshotInfo) {
	if len(snapshots) == 0 {
		fmt.Fprintln(w, "No old EBS snapshots found.")
		return
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].AgeDays > snapshots[j].AgeDays
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "SNAPSHOT ID\tSIZE\tREGION\tAGE (DAYS)\tENCRYPTED\tMONTHLY COST\tDESCRIPTION")

	for _, snapshot := range snapshots {
		description := TruncateToWidth(snapshot.Description, 40)

		fmt.Fprintf(tw, "%s\t%d GB\t%s\t%d\t%t\t%s\t%s\n",
			snapshot.SnapshotID,
			snapshot.SizeGB,
			snapshot.Region,
			snapshot.AgeDays,
			snapshot.Encrypted,
			money(snapshot.EstimatedMonthlyCost),
			description,
		)
	}

	printSnapshotTotals(tw, snapshots)

	tw.Flush()
}

func printSnapshotTotals(tw *tabwriter.Writer, snapshots []models.SnapshotInfo) {
	totalSize := 0
	var totalCost float64

	for _, snapshot := range snapshots {
		totalSize += snapshot.SizeGB
		totalCost += snapshot.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t%d GB\t\t\t\t%s\t(%d snapshots)\n",
		totalSize,
		money(totalCost),
		len(snapshots),
	)
}

// PrintSnapshotsSummary groups old snapshots by region
func PrintSnapshotsSummary(w io.Writer, snapshots []models.SnapshotInfo) {
	if len(snapshots) == 0 {
		return
	}

	regionStats := make(map[string]struct {
		count int
		cost  float64
	})

	for _, snapshot := range snapshots {
		stats := regionStats[snapshot.Region]
		stats.count++
		stats.cost += snapshot.EstimatedMonthlyCost
		regionStats[snapshot.Region] = stats
	}

	var regions []string
	for region := range regionStats {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	fmt.Fprintln(w, "\n## Old EBS Snapshots by Region")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tCOUNT\tPOTENTIAL MONTHLY SAVINGS")

	for _, region := range regions {
		stats := regionStats[region]
		fmt.Fprintf(tw, "%s\t%d\t%s\n", region, stats.count, money(stats.cost))
	}

	tw.Flush()
}
