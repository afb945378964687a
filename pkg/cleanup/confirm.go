// Package cleanup holds the interactive confirmation used before any
// destructive operation.
package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks the user to approve a destructive action. It keeps asking
// until it reads yes/y or no/n, and returns false if input runs out.
func Confirm(r io.Reader, w io.Writer, prompt string) bool {
	reader := bufio.NewReader(r)

	for {
		fmt.Fprintf(w, "%s [yes/no]: ", prompt)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		default:
			fmt.Fprintln(w, "Please answer yes or no.")
		}

		if err != nil {
			return false
		}
	}
}
