package pinpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfleet/qfleet/internal/board"
	"github.com/qfleet/qfleet/internal/scan"
)

func verdicts(axis scan.Axis, vs ...scan.Verdict) []scan.Result {
	results := make([]scan.Result, len(vs))
	for i, v := range vs {
		results[i] = scan.Result{Axis: axis, Index: i, Verdict: v}
	}
	return results
}

// The candidate set is exactly the cartesian product of DETECT rows and
// DETECT columns when the radar has no prior knowledge.
func TestCandidates_CartesianProduct(t *testing.T) {
	b, err := board.New(4)
	require.NoError(t, err)

	rows := verdicts(scan.AxisRow,
		scan.VerdictMiss, scan.VerdictDetect, scan.VerdictMiss, scan.VerdictDetect)
	cols := verdicts(scan.AxisCol,
		scan.VerdictDetect, scan.VerdictMiss, scan.VerdictDetect, scan.VerdictMiss)

	got := Candidates(b, rows, cols)
	want := []board.Cell{
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 3, Col: 0}, {Row: 3, Col: 2},
	}
	assert.Equal(t, want, got)
}

func TestCandidates_NoDetections(t *testing.T) {
	b, err := board.New(4)
	require.NoError(t, err)

	rows := verdicts(scan.AxisRow,
		scan.VerdictMiss, scan.VerdictMiss, scan.VerdictMiss, scan.VerdictMiss)
	cols := verdicts(scan.AxisCol,
		scan.VerdictDetect, scan.VerdictDetect, scan.VerdictDetect, scan.VerdictDetect)

	assert.Empty(t, Candidates(b, rows, cols))
	assert.Empty(t, Candidates(b, cols, rows))
}

// Cells the radar has already settled are skipped even at a DETECT
// intersection.
func TestCandidates_SkipsKnownCells(t *testing.T) {
	b, err := board.New(3)
	require.NoError(t, err)
	b.MarkRadar(board.Cell{Row: 0, Col: 0}, board.RadarEmpty)
	b.MarkRadar(board.Cell{Row: 0, Col: 2}, board.RadarConfirmed)

	rows := verdicts(scan.AxisRow,
		scan.VerdictDetect, scan.VerdictMiss, scan.VerdictMiss)
	cols := verdicts(scan.AxisCol,
		scan.VerdictDetect, scan.VerdictDetect, scan.VerdictDetect)

	got := Candidates(b, rows, cols)
	assert.Equal(t, []board.Cell{{Row: 0, Col: 1}}, got)
}

func TestCandidates_Deterministic(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)

	rows := verdicts(scan.AxisRow,
		scan.VerdictDetect, scan.VerdictMiss, scan.VerdictDetect, scan.VerdictMiss, scan.VerdictMiss)
	cols := verdicts(scan.AxisCol,
		scan.VerdictMiss, scan.VerdictDetect, scan.VerdictMiss, scan.VerdictMiss, scan.VerdictDetect)

	first := Candidates(b, rows, cols)
	second := Candidates(b, rows, cols)
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}
