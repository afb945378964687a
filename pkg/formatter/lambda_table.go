package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/costctl/costctl/internal/models"
)

// PrintFunctionsTable prints Lambda functions
func PrintFunctionsTable(w io.Writer, functions []models.FunctionInfo) {
	if len(functions) == 0 {
		fmt.Fprintln(w, "No Lambda functions found.")
		return
	}

	sort.Slice(functions, func(i, j int) bool {
		if functions[i].Region == functions[j].Region {
			return functions[i].FunctionName < functions[j].FunctionName
		}
		return functions[i].Region < functions[j].Region
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "FUNCTION NAME\tRUNTIME\tMEMORY\tCODE SIZE\tLAST MODIFIED\tREGION")

	var totalCodeSize int64
	for _, function := range functions {
		fmt.Fprintf(tw, "%s\t%s\t%d MB\t%s\t%s\t%s\n",
			TruncateToWidth(function.FunctionName, 40),
			function.Runtime,
			function.MemoryMB,
			humanize.IBytes(uint64(function.CodeSize)),
			function.LastModified,
			function.Region,
		)
		totalCodeSize += function.CodeSize
	}

	fmt.Fprintf(tw, "Total:\t\t\t%s\t\t%d functions\n",
		humanize.IBytes(uint64(totalCodeSize)), len(functions))

	tw.Flush()
}
