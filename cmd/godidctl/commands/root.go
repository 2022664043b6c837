// Package commands implements the godidctl CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// outputFormat controls the output format for commands that print
// structured records (table or json).
var outputFormat string

// rootCmd is the top-level cobra command for godidctl.
var rootCmd = &cobra.Command{
	Use:   "godidctl",
	Short: "CLI for encoding, decoding, and scheduling Open Drone ID messages",
	Long:  "godidctl operates entirely in-process on local byte buffers and hex strings; it does not talk to a running daemon.",
	// Silence cobra's built-in usage/error printing so we control it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "output format: table, json")

	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(packCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(fleetCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(shellCmd())
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
