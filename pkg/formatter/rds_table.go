package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintDBInstancesTable prints RDS database instances
func PrintDBInstancesTable(w io.Writer, instances []models.DBInstanceInfo) {
	if len(instances) == 0 {
		fmt.Fprintln(w, "No RDS instances found.")
		return
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].EstimatedMonthlyCost > instances[j].EstimatedMonthlyCost
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "IDENTIFIER\tENGINE\tCLASS\tSTATUS\tSTORAGE\tMULTI-AZ\tPUBLIC\tREGION\tEST. COST/MO")

	var totalCost float64
	for _, instance := range instances {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%d GB %s\t%t\t%t\t%s\t%s\n",
			TruncateToWidth(instance.Identifier, 30),
			instance.Engine,
			instance.EngineVersion,
			instance.InstanceClass,
			instance.Status,
			instance.StorageGB,
			instance.StorageType,
			instance.MultiAZ,
			instance.PubliclyAccessible,
			instance.Region,
			money(instance.EstimatedMonthlyCost),
		)
		totalCost += instance.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t\t\t\t%s (%d instances)\n", money(totalCost), len(instances))

	tw.Flush()
}

// PrintDBClustersTable prints Aurora clusters
func PrintDBClustersTable(w io.Writer, clusters []models.DBClusterInfo) {
	fmt.Fprintln(w, "\n## Aurora Clusters")

	if len(clusters) == 0 {
		fmt.Fprintln(w, "No Aurora clusters found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "IDENTIFIER\tENGINE\tMODE\tSTATUS\tMEMBERS\tACU (MIN-MAX)\tENCRYPTED\tREGION")

	for _, cluster := range clusters {
		acuRange := "-"
		if cluster.MaxCapacityACU > 0 {
			acuRange = fmt.Sprintf("%.1f-%.1f", cluster.MinCapacityACU, cluster.MaxCapacityACU)
		}

		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%d\t%s\t%t\t%s\n",
			TruncateToWidth(cluster.Identifier, 30),
			cluster.Engine,
			cluster.EngineVersion,
			cluster.EngineMode,
			cluster.Status,
			cluster.MemberCount,
			acuRange,
			cluster.StorageEncrypted,
			cluster.Region,
		)
	}

	tw.Flush()
}
