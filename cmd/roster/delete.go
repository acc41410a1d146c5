// Delete command removes a user by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteID int

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user by id",
	Long: `Delete removes the user with the given id. Remaining users keep
their ids; the deleted id is never reissued.

Example:
  roster delete --id 3`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().IntVar(&deleteID, "id", 0, "id of the user (required)")
	_ = deleteCmd.MarkFlagRequired("id")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ok, err := store.Delete(deleteID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return fmt.Errorf("user %d not found", deleteID)
	}

	if jsonOutput {
		fmt.Printf("{\"deleted\": %d}\n", deleteID)
	} else {
		fmt.Printf("Deleted user %d\n", deleteID)
	}
	return nil
}
