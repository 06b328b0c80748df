package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/qfleet/qfleet/internal/config"
	"github.com/qfleet/qfleet/internal/game"
	"github.com/qfleet/qfleet/internal/printer"
)

var (
	playConfigPath string
	playSize       int
	playShips      []int
	playShots      int
	playSeed       int64
	playShowHidden bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game of quantum Battleship",
	Long: `Play a full game: ships are placed randomly, every row and column is
scanned with a quantum circuit, and the flagged intersections are probed
classically.

Defaults match the classic setup: an 8x8 board with ships of length
4, 3, 3 and 2. A qfleet.yml can override the defaults; explicit flags
win over the config file.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playConfigPath, "config", "c", "", "Path to qfleet.yml (defaults apply when omitted)")
	playCmd.Flags().IntVar(&playSize, "size", 8, "Board width and height")
	playCmd.Flags().IntSliceVar(&playShips, "ship", []int{4, 3, 3, 2}, "Ship length (repeatable)")
	playCmd.Flags().IntVar(&playShots, "shots", 0, "Shots per line scan (0 = default)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Random seed (0 = time-based)")
	playCmd.Flags().BoolVar(&playShowHidden, "show-hidden", true, "Dump the hidden board before scanning")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePlayConfig(cmd)
	if err != nil {
		return err
	}

	g, unplaced, err := game.New(cfg, playShowHidden, os.Stdout)
	if err != nil {
		return printer.Error("Game setup failed", err.Error(), []string{
			"Reduce the fleet with fewer or shorter --ship flags",
			"Increase the board with --size or board.size in qfleet.yml",
		})
	}
	for _, length := range unplaced {
		printer.Warning("Could not place ship of length %d. The board may be too full.\n", length)
	}

	printer.Step("Scanning a %dx%d board for %d ships\n", cfg.Board.Size, cfg.Board.Size, len(cfg.Ships))
	if err := g.Run(); err != nil {
		return printer.Error("Game aborted", err.Error(), nil)
	}

	stats := g.Stats()
	if g.AllShipsFound() {
		printer.Success("Session complete: %d of %d ship cells confirmed.\n", stats.CellsConfirmed, stats.TotalShipCells)
	} else {
		printer.Warning("Session complete: only %d of %d ship cells confirmed.\n", stats.CellsConfirmed, stats.TotalShipCells)
	}
	return nil
}

// resolvePlayConfig loads qfleet.yml when given, then lets explicitly
// set flags override it, and validates the merged result.
func resolvePlayConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if playConfigPath != "" {
		loaded, err := config.Load(playConfigPath)
		if err != nil {
			return nil, printer.Error("Invalid configuration", err.Error(), []string{
				"Check the syntax of " + playConfigPath,
			})
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Board.Size = playSize
	}
	if cmd.Flags().Changed("ship") {
		cfg.Ships = playShips
	}
	if cmd.Flags().Changed("shots") {
		cfg.Scan.Shots = playShots
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = playSeed
	}

	if err := cfg.Validate(); err != nil {
		return nil, printer.Error("Invalid game setup", err.Error(), []string{
			"Run 'qfleet play --help' for the flag reference",
		})
	}
	return cfg, nil
}
