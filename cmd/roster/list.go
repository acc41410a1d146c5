// List command prints users, optionally filtered by age range.
package main

import (
	"github.com/spf13/cobra"
)

var (
	listMinAge int
	listMaxAge int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long: `List prints all users in store order. When --min-age and --max-age
are given, only users within the inclusive age range are printed; an
inverted range yields no users.

Example:
  roster list
  roster list --min-age 20 --max-age 35
  roster list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listMinAge, "min-age", 0, "minimum age, inclusive (requires --max-age)")
	listCmd.Flags().IntVar(&listMaxAge, "max-age", 0, "maximum age, inclusive (requires --min-age)")
	listCmd.MarkFlagsRequiredTogether("min-age", "max-age")
}

func runList(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("min-age") {
		return printUsers(store.GetByAgeRange(listMinAge, listMaxAge))
	}
	return printUsers(store.All())
}
