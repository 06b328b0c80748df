// Package game drives a full qfleet session: random fleet placement,
// the quantum scanning phase over every row and column, and the
// classical pinpointing phase that probes candidate intersections.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/qfleet/qfleet/internal/board"
	"github.com/qfleet/qfleet/internal/config"
	"github.com/qfleet/qfleet/internal/pinpoint"
	"github.com/qfleet/qfleet/internal/printer"
	"github.com/qfleet/qfleet/internal/scan"
)

// Phase is the game state machine position.
type Phase string

const (
	// PhaseScanning runs the quantum line scans over all rows and columns
	PhaseScanning Phase = "scanning"

	// PhasePinpointing derives and classically probes candidate cells
	PhasePinpointing Phase = "pinpointing"

	// PhaseDone means the final report has been rendered
	PhaseDone Phase = "done"
)

// Stats accumulates the session's score card.
type Stats struct {
	QuantumScans   int
	Candidates     int
	Probes         int
	CellsConfirmed int
	ShipsSunk      int
	TotalShipCells int
}

// Game holds all mutable session state. Nothing is package-level; a new
// Game is built per run.
type Game struct {
	cfg        *config.Config
	board      *board.Board
	scanner    *scan.Scanner
	out        io.Writer
	showHidden bool

	phase Phase
	rows  []scan.Result
	cols  []scan.Result
	stats Stats
}

// New builds a game from the configuration: seeds the RNG, randomly
// places the fleet, and prepares the scanner. Lengths of ships that did
// not fit after the placement retry budget are returned so the caller
// can warn about them.
func New(cfg *config.Config, showHidden bool, out io.Writer) (*Game, []int, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	b, unplaced, err := board.Place(cfg.Board.Size, cfg.Ships, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("board setup failed: %w", err)
	}

	return newWithBoard(cfg, b, rng, showHidden, out), unplaced, nil
}

// newWithBoard wires a game around an already-placed board. Scripted
// scenarios and tests use it to control the fleet layout.
func newWithBoard(cfg *config.Config, b *board.Board, rng *rand.Rand, showHidden bool, out io.Writer) *Game {
	scanner := scan.NewScanner(scan.Options{
		Shots:      cfg.Scan.Shots,
		ZeroCutoff: cfg.Scan.ZeroCutoff,
	}, rng)

	return &Game{
		cfg:        cfg,
		board:      b,
		scanner:    scanner,
		out:        out,
		showHidden: showHidden,
		phase:      PhaseScanning,
		stats:      Stats{TotalShipCells: b.ShipCellCount()},
	}
}

// Stats returns the session score card.
func (g *Game) Stats() Stats {
	return g.stats
}

// AllShipsFound reports whether the radar confirmed every ship cell.
func (g *Game) AllShipsFound() bool {
	return g.board.AllShipsFound()
}

// Run plays the session to completion: scanning, pinpointing, report.
func (g *Game) Run() error {
	g.printWelcome()

	if err := g.runScanning(); err != nil {
		return err
	}
	g.runPinpointing()
	g.report()

	g.phase = PhaseDone
	return nil
}

func (g *Game) printWelcome() {
	fmt.Fprintln(g.out, "Welcome to Quantum Battleship!")
	fmt.Fprintf(g.out, "Board size: %dx%d\n", g.board.Size, g.board.Size)
	fmt.Fprintf(g.out, "Ship cells to find: %d (from %d ships)\n", g.stats.TotalShipCells, len(g.board.Ships))

	if g.showHidden {
		g.renderHidden("HIDDEN BOARD (FOR DEBUG)")
	}
	g.renderRadar("YOUR RADAR VIEW")
}

// runScanning is Phase 1: one H-Oracle-H scan per row, then per column.
// MISS lines are marked empty on the radar immediately.
func (g *Game) runScanning() error {
	fmt.Fprintln(g.out, "\n--- Phase 1: Quantum Scanning ---")

	if circuit, err := scan.LineCircuit(g.board.Row(0)); err == nil {
		fmt.Fprintln(g.out, "Using quantum circuit:")
		fmt.Fprint(g.out, circuit.Draw())
	}

	fmt.Fprintln(g.out, "Scanning all rows...")
	g.rows = make([]scan.Result, g.board.Size)
	for r := 0; r < g.board.Size; r++ {
		result, err := g.scanner.ScanLine(scan.AxisRow, r, g.board.Row(r))
		if err != nil {
			return fmt.Errorf("quantum scan aborted: %w", err)
		}
		g.rows[r] = result
		g.stats.QuantumScans++
		fmt.Fprintf(g.out, "Row %d scan result: %s\n", r, printer.Verdict(string(result.Verdict)))

		if result.Verdict == scan.VerdictMiss {
			for c := 0; c < g.board.Size; c++ {
				g.board.MarkRadar(board.Cell{Row: r, Col: c}, board.RadarEmpty)
			}
		}
	}

	fmt.Fprintln(g.out, "\nScanning all columns...")
	g.cols = make([]scan.Result, g.board.Size)
	for c := 0; c < g.board.Size; c++ {
		result, err := g.scanner.ScanLine(scan.AxisCol, c, g.board.Col(c))
		if err != nil {
			return fmt.Errorf("quantum scan aborted: %w", err)
		}
		g.cols[c] = result
		g.stats.QuantumScans++
		fmt.Fprintf(g.out, "Col %d scan result: %s\n", c, printer.Verdict(string(result.Verdict)))

		if result.Verdict == scan.VerdictMiss {
			for r := 0; r < g.board.Size; r++ {
				g.board.MarkRadar(board.Cell{Row: r, Col: c}, board.RadarEmpty)
			}
		}
	}

	g.renderRadar("RADAR VIEW AFTER ALL SCANS")
	g.phase = PhasePinpointing
	return nil
}

// runPinpointing is Phase 2: candidates are the DETECT-row x DETECT-col
// intersections still unknown on the radar; each is classically probed
// against the hidden truth.
func (g *Game) runPinpointing() {
	fmt.Fprintln(g.out, "\n--- Phase 2: Classical Pinpointing ---")

	candidates := pinpoint.Candidates(g.board, g.rows, g.cols)
	g.stats.Candidates = len(candidates)
	for _, cell := range candidates {
		g.board.MarkRadar(cell, board.RadarSuspected)
		fmt.Fprintf(g.out, "Found potential ship at (%d, %d)\n", cell.Row, cell.Col)
	}
	fmt.Fprintf(g.out, "Identified %d candidate(s) for classical probing.\n", len(candidates))
	g.renderRadar("CANDIDATE VIEW")

	for _, cell := range candidates {
		fmt.Fprintf(g.out, "Classically probing candidate at (%d, %d)... ", cell.Row, cell.Col)
		g.stats.Probes++
		if g.board.Probe(cell) {
			fmt.Fprintln(g.out, "SUCCESSFUL HIT!")
			g.stats.CellsConfirmed++
		} else {
			fmt.Fprintln(g.out, "Final miss.")
		}
	}

	for _, ship := range g.board.Ships {
		if g.board.Sunk(ship) {
			g.stats.ShipsSunk++
		}
	}
}
