// Package main provides the roster CLI, a JSON-file-backed user record
// manager with CRUD, search, filter, and CSV export commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/internal/jsonstore"
)

// Global flag values shared by all subcommands.
var (
	configDirFlag string
	dataFileFlag  string
	jsonOutput    bool
	verbose       bool
)

// store is the global Store instance, opened on startup for commands
// that touch user records.
var store *jsonstore.Store

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster is a JSON-file-backed user record manager",
	Long: `Roster manages a directory of user records persisted to a single
JSON file. It provides commands for adding, searching, updating, and
deleting users, plus CSV export and an order-preserving line
de-duplication utility.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:      true,
	PersistentPreRunE: initStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "backing JSON file (default: ./users.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(versionCmd)
}

// initStore loads config and opens the backing store. Commands that do
// not touch user records skip store initialization.
func initStore(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "dedup":
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s, err := jsonstore.Open(cfg, jsonstore.WithLogger(newLogger()))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	store = s
	return nil
}

// newLogger returns a development logger when --verbose is set, a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
