// Package cmd provides CLI commands for acc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sthwalo/acc-sub020/internal/logger"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "acc",
	Short: "Import bank statements and report on the ledger",
	Long: `acc is a CLI tool for importing bank statement text files into the
transaction store and reporting trial balances from the ledger.

It supports:
- Parsing tabular, credit transfer and service fee statement lines
- Rejecting duplicate transactions on re-import
- Dry runs against an in-memory store
- Import history with per-file checksums in SQLite

Example:
  acc ingest --company 1 --period 3 statements/march.txt
  acc trial-balance --company 1 --period 3
  acc stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if debug {
			level = "debug"
		}
		logger.Setup(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(trialBalanceCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		logger.Error(msg, err, nil)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
