// Dedup command removes duplicate lines from a file or stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/dedup"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup [file]",
	Short: "Remove duplicate lines, preserving order",
	Long: `Dedup prints each distinct line of the input exactly once, in the
order of first occurrence. Reads from the given file, or stdin when no
file is named.

Example:
  roster dedup emails.txt
  sort unsorted.txt | roster dedup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDedup,
}

func runDedup(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines := []string{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	unique, err := dedup.Dedup(lines)
	if err != nil {
		return fmt.Errorf("dedup lines: %w", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, line := range unique {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
