// Add command creates a new user record.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addName  string
	addEmail string
	addAge   int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new user",
	Long: `Add creates a new user record with the next sequential id.

The user is created active, with the creation timestamp set to now.
The email must be unique (case-sensitive exact match).

Example:
  roster add --name "Alice" --email alice@example.com --age 30
  roster add --name "Bob" --email bob@example.com --age 25 --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "name for the user (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email for the user (required, unique)")
	addCmd.Flags().IntVar(&addAge, "age", 0, "age for the user (non-negative)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("email")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ok, err := store.Add(addName, addEmail, addAge)
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	if !ok {
		return errors.New("user not added: name and email must be non-empty, age non-negative, and email unused")
	}

	// Fetch the created record to echo full details. Email is unique,
	// so the scan finds exactly the user just added.
	for _, u := range store.All() {
		if u.Email == addEmail {
			return printUser(u)
		}
	}
	fmt.Println("User added.")
	return nil
}
