// Shared output helpers for roster CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// printUser writes a single user in the selected output mode.
func printUser(u types.User) error {
	if jsonOutput {
		out, err := json.MarshalIndent(u, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("ID:       %d\n", u.ID)
	fmt.Printf("Name:     %s\n", u.Name)
	fmt.Printf("Email:    %s\n", u.Email)
	fmt.Printf("Age:      %d\n", u.Age)
	fmt.Printf("Created:  %s\n", u.CreatedDate.Format(time.RFC3339))
	fmt.Printf("Active:   %t\n", u.IsActive)
	return nil
}

// printUsers writes a user list in the selected output mode.
func printUsers(users []types.User) error {
	if jsonOutput {
		out, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal users: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tAGE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\n", u.ID, u.Name, u.Email, u.Age, u.IsActive)
	}
	return w.Flush()
}
