// Clear command empties the store.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all users",
	Long: `Clear removes every user and persists the empty store. This cannot
be undone; the --force flag is required.

Example:
  roster clear --force`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "confirm clearing all users")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		return errors.New("refusing to clear all users without --force")
	}

	removed := store.Count()
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	if jsonOutput {
		fmt.Printf("{\"cleared\": %d}\n", removed)
	} else {
		fmt.Printf("Cleared %d users\n", removed)
	}
	return nil
}
