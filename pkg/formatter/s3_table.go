package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/costctl/costctl/internal/models"
)

// PrintBucketsTable prints S3 buckets inspected for emptiness
func PrintBucketsTable(w io.Writer, buckets []models.BucketInfo) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "No S3 buckets found.")
		return
	}

	// Empty buckets first, then by name
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Empty != buckets[j].Empty {
			return buckets[i].Empty
		}
		return buckets[i].BucketName < buckets[j].BucketName
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "BUCKET NAME\tREGION\tCREATED\tOBJECTS\tSIZE\tEMPTY")

	emptyCount := 0
	for _, bucket := range buckets {
		objectCount := fmt.Sprintf("%d", bucket.ObjectCount)
		if bucket.ObjectCount >= 1000 {
			objectCount = "1000+"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			TruncateToWidth(bucket.BucketName, 50),
			bucket.Region,
			bucket.CreationDate.Format("2006-01-02"),
			objectCount,
			humanize.IBytes(uint64(bucket.TotalSize)),
			bucket.Empty,
		)
		if bucket.Empty {
			emptyCount++
		}
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%d buckets (%d empty)\n", len(buckets), emptyCount)

	tw.Flush()
}
