// Count command prints user totals.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print total and active user counts",
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	total := store.Count()
	active := store.ActiveCount()

	if jsonOutput {
		fmt.Printf("{\"total\": %d, \"active\": %d}\n", total, active)
	} else {
		fmt.Printf("Total users:  %d\n", total)
		fmt.Printf("Active users: %d\n", active)
	}
	return nil
}
