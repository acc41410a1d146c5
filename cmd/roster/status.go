// Status command updates a user's active flag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statusID     int
	statusActive bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Update a user's active status",
	Long: `Status sets the active flag of the user with the given id.

Example:
  roster status --id 3 --active=false
  roster status --id 3 --active=true`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusID, "id", 0, "id of the user (required)")
	statusCmd.Flags().BoolVar(&statusActive, "active", true, "new active status (required)")
	_ = statusCmd.MarkFlagRequired("id")
	_ = statusCmd.MarkFlagRequired("active")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ok, err := store.UpdateStatus(statusID, statusActive)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if !ok {
		return fmt.Errorf("user %d not found", statusID)
	}

	u, found := store.GetByID(statusID)
	if !found {
		fmt.Println("Status updated.")
		return nil
	}
	return printUser(u)
}
