// Get command retrieves a single user by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getID int

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a user by id",
	Long: `Get retrieves the user with the given id.

Example:
  roster get --id 3
  roster get --id 3 --json`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().IntVar(&getID, "id", 0, "id of the user (required)")
	_ = getCmd.MarkFlagRequired("id")
}

func runGet(cmd *cobra.Command, args []string) error {
	u, found := store.GetByID(getID)
	if !found {
		return fmt.Errorf("user %d not found", getID)
	}
	return printUser(u)
}
