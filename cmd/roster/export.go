// Export command writes users to a CSV file.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// defaultExportFile is used when no output path is given.
const defaultExportFile = "users_export.csv"

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export users to CSV",
	Long: `Export writes all users to a CSV file: a header row of the record
field names, then one row per user. An empty store exports nothing and
creates no file.

Example:
  roster export
  roster export /tmp/users.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := defaultExportFile
	if len(args) == 1 {
		path = args[0]
	}

	ok, err := store.ExportCSV(path)
	if err != nil {
		return fmt.Errorf("export users: %w", err)
	}
	if !ok {
		return errors.New("nothing to export: store is empty")
	}

	if jsonOutput {
		fmt.Printf("{\"exported\": %d, \"path\": %q}\n", store.Count(), path)
	} else {
		fmt.Printf("Exported %d users to %s\n", store.Count(), path)
	}
	return nil
}
