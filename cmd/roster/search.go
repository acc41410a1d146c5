// Search command finds users by name substring.
package main

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search users by name",
	Long: `Search prints users whose name contains the given term,
compared case-insensitively. An empty term matches nothing.

Example:
  roster search alice
  roster search "Nguyễn" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return printUsers(store.SearchByName(args[0]))
}
