package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qfleet",
	Short: "qfleet - Battleship with a quantum radar",
	Long: `qfleet is a text-based Battleship variant where ship detection runs
through simulated quantum circuits instead of classical guessing.

Each row and column of the hidden board is scanned by a single
Hadamard-Oracle-Hadamard circuit; the measurement distribution becomes a
DETECT or MISS verdict, and a classical pinpointing pass probes the
intersections of flagged lines.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
