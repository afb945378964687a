package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintENIsTable prints detached network interfaces
func PrintENIsTable(w io.Writer, enis []models.ENIInfo) {
	if len(enis) == 0 {
		fmt.Fprintln(w, "No unused network interfaces found.")
		return
	}

	sort.Slice(enis, func(i, j int) bool {
		if enis[i].Region == enis[j].Region {
			return enis[i].InterfaceID < enis[j].InterfaceID
		}
		return enis[i].Region < enis[j].Region
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "INTERFACE ID\tNAME\tTYPE\tVPC\tSUBNET\tPRIVATE IP\tREGION\tDESCRIPTION")

	for _, eni := range enis {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			eni.InterfaceID,
			PadToWidth(TruncateToWidth(eni.Name, maxNameWidth), maxNameWidth),
			eni.InterfaceType,
			eni.VpcID,
			eni.SubnetID,
			eni.PrivateIP,
			eni.Region,
			TruncateToWidth(eni.Description, 40),
		)
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t\t\t%d interfaces\n", len(enis))

	tw.Flush()
}
