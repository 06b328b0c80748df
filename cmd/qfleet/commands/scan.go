package commands

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/qfleet/qfleet/internal/printer"
	"github.com/qfleet/qfleet/internal/scan"
	"github.com/qfleet/qfleet/pkg/quantum"
)

var (
	scanShots int
	scanSeed  int64
)

var scanCmd = &cobra.Command{
	Use:   "scan <pattern>",
	Short: "Scan a single line and show the raw measurement counts",
	Long: `Scan one line of cells given as a 0/1 pattern, where 1 marks a ship.
Draws the circuit, runs the shot batch, and prints the measurement
counts together with the DETECT/MISS verdict.

Example:
  qfleet scan 00110100`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanShots, "shots", 0, "Shots for the batch (0 = default)")
	scanCmd.Flags().Int64Var(&scanSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	line, err := parsePattern(args[0])
	if err != nil {
		return printer.Error("Invalid scan pattern", err.Error(), []string{
			"Use only the characters 0 (water) and 1 (ship), e.g. 00110100",
		})
	}

	circuit, err := scan.LineCircuit(line)
	if err != nil {
		return printer.Error("Cannot build scan circuit", err.Error(), nil)
	}
	printer.Info("Scanning a %d-cell line over %d qubit(s):\n", len(line), circuit.NumQubits)
	printer.Printf("%s\n", circuit.Draw())

	seed := scanSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scanner := scan.NewScanner(scan.Options{Shots: scanShots}, rand.New(rand.NewSource(seed)))

	result, err := scanner.ScanLine(scan.AxisRow, 0, line)
	if err != nil {
		return printer.Error("Scan failed", err.Error(), nil)
	}

	printer.Info("Counts over %d shot(s):\n", result.Shots)
	for _, state := range sortedStates(result.Counts) {
		printer.Printf("  |%s>  %d\n", state, result.Counts[state])
	}
	printer.Println()
	printer.Printf("Verdict: %s\n", printer.Verdict(string(result.Verdict)))
	return nil
}

// parsePattern converts a 0/1 string into presence flags.
func parsePattern(pattern string) ([]bool, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is empty")
	}
	line := make([]bool, len(pattern))
	for i, ch := range pattern {
		switch ch {
		case '0':
			line[i] = false
		case '1':
			line[i] = true
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return line, nil
}

// sortedStates returns the measured bitstrings in lexical order for
// stable output.
func sortedStates(counts quantum.Counts) []string {
	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}
