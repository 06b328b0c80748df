package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/qfleet/qfleet/internal/board"
)

var (
	hitGlyph     = color.New(color.FgRed, color.Bold).SprintFunc()
	suspectGlyph = color.New(color.FgYellow).SprintFunc()
	emptyGlyph   = color.New(color.FgCyan).SprintFunc()
)

// radarGlyph maps a radar cell state to its display character.
func radarGlyph(state board.RadarState) string {
	switch state {
	case board.RadarEmpty:
		return emptyGlyph("O")
	case board.RadarSuspected:
		return suspectGlyph("C")
	case board.RadarConfirmed:
		return hitGlyph("X")
	default:
		return "?"
	}
}

// renderGrid prints a bordered grid with row and column headers. cell
// must return a single display character per position. Labels are two
// characters wide so boards up to MaxSize stay unambiguous.
func renderGrid(w io.Writer, title string, size int, cell func(r, c int) string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)

	headers := make([]string, size)
	for i := 0; i < size; i++ {
		headers[i] = fmt.Sprintf("%2d", i)
	}
	divider := strings.Repeat("-", size*5+4)
	fmt.Fprintf(w, "   | %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(w, " %s\n", divider)

	for r := 0; r < size; r++ {
		row := make([]string, size)
		for c := 0; c < size; c++ {
			// Pad by hand: colored glyphs carry ANSI codes that defeat %2s
			row[c] = " " + cell(r, c)
		}
		fmt.Fprintf(w, "%2d | %s |\n", r, strings.Join(row, " | "))
	}
	fmt.Fprintf(w, " %s\n", divider)
}

// renderHidden dumps the ground-truth grid (debug view).
func (g *Game) renderHidden(title string) {
	renderGrid(g.out, title, g.board.Size, func(r, c int) string {
		if g.board.Row(r)[c] {
			return "1"
		}
		return "0"
	})
}

// renderRadar dumps the player-visible radar overlay.
func (g *Game) renderRadar(title string) {
	renderGrid(g.out, title, g.board.Size, func(r, c int) string {
		return radarGlyph(g.board.RadarAt(board.Cell{Row: r, Col: c}))
	})
}

// report renders the final board, the per-ship outcome, and the score
// card, including the Elitzur-Vaidman score (probes per board cell) and
// the classical brute-force comparison.
func (g *Game) report() {
	fmt.Fprintln(g.out, "\n--- GAME OVER ---")
	g.renderRadar("FINAL BOARD")

	fmt.Fprintln(g.out, "\nFleet report:")
	for _, ship := range g.board.Ships {
		status := "still hidden"
		if g.board.Sunk(ship) {
			status = "SUNK"
		}
		fmt.Fprintf(g.out, "  Ship %s (length %d): %s\n", shortID(ship.ID), ship.Length, status)
	}

	cells := g.board.Size * g.board.Size
	evScore := float64(g.stats.Probes) / float64(cells)

	fmt.Fprintln(g.out, "\n--- STATISTICS ---")
	table := tablewriter.NewWriter(g.out)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total quantum scans", strconv.Itoa(g.stats.QuantumScans)})
	table.Append([]string{"Probe candidates", strconv.Itoa(g.stats.Candidates)})
	table.Append([]string{"Classical probes", strconv.Itoa(g.stats.Probes)})
	table.Append([]string{"Ship cells confirmed", fmt.Sprintf("%d / %d", g.stats.CellsConfirmed, g.stats.TotalShipCells)})
	table.Append([]string{"Ships sunk", fmt.Sprintf("%d / %d", g.stats.ShipsSunk, len(g.board.Ships))})
	table.Append([]string{"Elitzur-Vaidman score", fmt.Sprintf("%.3f", evScore)})
	table.Render()

	fmt.Fprintln(g.out, "\nClassical comparison:")
	fmt.Fprintf(g.out, "  - Quantum strategy probes: %d\n", g.stats.Probes)
	fmt.Fprintf(g.out, "  - Classical brute force (worst case): %d\n", cells)
	fmt.Fprintf(g.out, "  - Classical brute force (average for this board): ~%d\n", cells/2)

	if g.board.AllShipsFound() {
		fmt.Fprintln(g.out, "\nAll ships found! Your quantum radar was a success!")
	} else {
		fmt.Fprintln(g.out, "\nNot every ship was found. Some ships evaded the radar.")
	}
}

// shortID truncates a ship UUID to its first 8 characters for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
