// Package pinpoint derives classical probe candidates from the line-scan
// verdicts. A candidate is any still-unknown cell sitting at the
// intersection of a DETECT row and a DETECT column. Multi-ship boards
// can produce false-positive intersections; the classical probe in
// Phase 2 settles those.
package pinpoint

import (
	"github.com/qfleet/qfleet/internal/board"
	"github.com/qfleet/qfleet/internal/scan"
)

// Candidates returns the probe candidates in row-major order. rows and
// cols must be indexed by board position, one result per line.
func Candidates(b *board.Board, rows, cols []scan.Result) []board.Cell {
	var candidates []board.Cell
	for r := 0; r < b.Size; r++ {
		if rows[r].Verdict != scan.VerdictDetect {
			continue
		}
		for c := 0; c < b.Size; c++ {
			if cols[c].Verdict != scan.VerdictDetect {
				continue
			}
			cell := board.Cell{Row: r, Col: c}
			if b.RadarAt(cell) == board.RadarUnknown {
				candidates = append(candidates, cell)
			}
		}
	}
	return candidates
}
