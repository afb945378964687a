package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintKMSKeysTable prints customer-managed KMS keys
func PrintKMSKeysTable(w io.Writer, keys []models.KeyInfo) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "No customer-managed KMS keys found.")
		return
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Region == keys[j].Region {
			return keys[i].KeyID < keys[j].KeyID
		}
		return keys[i].Region < keys[j].Region
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "KEY ID\tALIASES\tSTATE\tGRANTS\tREGION\tMONTHLY COST\tDESCRIPTION")

	var totalCost float64
	billableCount := 0
	for _, key := range keys {
		aliases := strings.Join(key.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			key.KeyID,
			TruncateToWidth(aliases, 30),
			key.KeyState,
			key.GrantCount,
			key.Region,
			money(key.EstimatedMonthlyCost),
			TruncateToWidth(key.Description, 40),
		)
		totalCost += key.EstimatedMonthlyCost
		if key.IsBillable() {
			billableCount++
		}
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%s\t(%d keys, %d billable)\n",
		money(totalCost), len(keys), billableCount)

	tw.Flush()
}
