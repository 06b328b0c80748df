package board

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const (
	// MinSize is the smallest playable board.
	MinSize = 2

	// MaxSize keeps row/column labels to a single character pair.
	MaxSize = 26

	// placementRetries bounds the random placement loop per ship.
	placementRetries = 100
)

// RadarState is the player-visible knowledge about a single cell. Radar
// cells are written only from scan, pinpoint, and probe outcomes, never
// copied from the hidden truth grid.
type RadarState string

const (
	// RadarUnknown means nothing has been learned about the cell yet
	RadarUnknown RadarState = "unknown"

	// RadarEmpty means a scan or probe ruled the cell out
	RadarEmpty RadarState = "empty"

	// RadarSuspected means the pinpointing pass flagged the cell as a candidate
	RadarSuspected RadarState = "suspected"

	// RadarConfirmed means a classical probe verified a ship cell
	RadarConfirmed RadarState = "confirmed"
)

// Cell addresses one board square.
type Cell struct {
	Row int
	Col int
}

// Ship is a contiguous run of occupied cells.
type Ship struct {
	ID     string // UUID assigned at placement
	Length int
	Cells  []Cell
}

// Board holds the hidden ground truth and the player's radar overlay.
type Board struct {
	Size  int
	Ships []Ship

	truth [][]bool
	radar [][]RadarState
}

// New creates an empty board with no ships.
func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("invalid board size %d (must be %d-%d)", size, MinSize, MaxSize)
	}

	b := &Board{Size: size}
	b.truth = make([][]bool, size)
	b.radar = make([][]RadarState, size)
	for i := 0; i < size; i++ {
		b.truth[i] = make([]bool, size)
		b.radar[i] = make([]RadarState, size)
		for j := 0; j < size; j++ {
			b.radar[i][j] = RadarUnknown
		}
	}
	return b, nil
}

// NewWithShips creates a board with explicitly placed ships, validating
// bounds and overlap. Used by fixtures and by scripted scenarios.
func NewWithShips(size int, ships [][]Cell) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	for _, cells := range ships {
		if err := b.addShip(cells); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// addShip validates and commits one ship's cells to the truth grid.
func (b *Board) addShip(cells []Cell) error {
	if len(cells) == 0 {
		return fmt.Errorf("ship has no cells")
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= b.Size || c.Col < 0 || c.Col >= b.Size {
			return fmt.Errorf("ship cell (%d, %d) out of bounds for %dx%d board", c.Row, c.Col, b.Size, b.Size)
		}
		if b.truth[c.Row][c.Col] {
			return fmt.Errorf("ship cell (%d, %d) overlaps an existing ship", c.Row, c.Col)
		}
	}
	for _, c := range cells {
		b.truth[c.Row][c.Col] = true
	}
	b.Ships = append(b.Ships, Ship{
		ID:     uuid.New().String(),
		Length: len(cells),
		Cells:  append([]Cell(nil), cells...),
	})
	return nil
}

// Place creates a board and randomly places ships of the given lengths
// without overlap. Each ship gets up to 100 placement attempts; lengths
// that could not be placed are returned so the caller can warn about
// them. Fails if no ship at all could be placed.
func Place(size int, lengths []int, rng *rand.Rand) (*Board, []int, error) {
	b, err := New(size)
	if err != nil {
		return nil, nil, err
	}

	var unplaced []int
	for _, length := range lengths {
		if length < 1 || length > size {
			return nil, nil, fmt.Errorf("invalid ship length %d for %dx%d board", length, size, size)
		}

		placed := false
		for attempt := 0; attempt < placementRetries; attempt++ {
			cells := randomRun(size, length, rng)
			if b.fits(cells) {
				if err := b.addShip(cells); err != nil {
					return nil, nil, err
				}
				placed = true
				break
			}
		}
		if !placed {
			unplaced = append(unplaced, length)
		}
	}

	if len(b.Ships) == 0 {
		return nil, nil, fmt.Errorf("no ships could be placed on a %dx%d board", size, size)
	}
	return b, unplaced, nil
}

// randomRun picks a random horizontal or vertical run of the given
// length that stays on the board.
func randomRun(size, length int, rng *rand.Rand) []Cell {
	cells := make([]Cell, length)
	if rng.Intn(2) == 0 { // horizontal
		r := rng.Intn(size)
		c := rng.Intn(size - length + 1)
		for i := 0; i < length; i++ {
			cells[i] = Cell{Row: r, Col: c + i}
		}
	} else { // vertical
		r := rng.Intn(size - length + 1)
		c := rng.Intn(size)
		for i := 0; i < length; i++ {
			cells[i] = Cell{Row: r + i, Col: c}
		}
	}
	return cells
}

// fits reports whether none of the cells collide with an existing ship.
func (b *Board) fits(cells []Cell) bool {
	for _, c := range cells {
		if b.truth[c.Row][c.Col] {
			return false
		}
	}
	return true
}

// Row returns the presence flags of one row, left to right.
func (b *Board) Row(r int) []bool {
	return append([]bool(nil), b.truth[r]...)
}

// Col returns the presence flags of one column, top to bottom.
func (b *Board) Col(c int) []bool {
	col := make([]bool, b.Size)
	for r := 0; r < b.Size; r++ {
		col[r] = b.truth[r][c]
	}
	return col
}

// Probe classically checks a single cell against the hidden truth and
// updates the radar with the outcome. This is the Phase 2 "shot".
func (b *Board) Probe(c Cell) bool {
	hit := b.truth[c.Row][c.Col]
	if hit {
		b.radar[c.Row][c.Col] = RadarConfirmed
	} else {
		b.radar[c.Row][c.Col] = RadarEmpty
	}
	return hit
}

// RadarAt returns the player-visible state of a cell.
func (b *Board) RadarAt(c Cell) RadarState {
	return b.radar[c.Row][c.Col]
}

// MarkRadar records scan/pinpoint knowledge about a cell. Cells already
// confirmed are never downgraded.
func (b *Board) MarkRadar(c Cell, state RadarState) {
	if b.radar[c.Row][c.Col] == RadarConfirmed {
		return
	}
	b.radar[c.Row][c.Col] = state
}

// ShipCellCount returns the total number of occupied cells.
func (b *Board) ShipCellCount() int {
	count := 0
	for _, s := range b.Ships {
		count += len(s.Cells)
	}
	return count
}

// ConfirmedCount returns how many ship cells the radar has confirmed.
func (b *Board) ConfirmedCount() int {
	count := 0
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.radar[r][c] == RadarConfirmed {
				count++
			}
		}
	}
	return count
}

// Sunk reports whether every cell of the ship has been confirmed.
func (b *Board) Sunk(s Ship) bool {
	for _, c := range s.Cells {
		if b.radar[c.Row][c.Col] != RadarConfirmed {
			return false
		}
	}
	return true
}

// AllShipsFound reports whether every ship cell has been confirmed.
func (b *Board) AllShipsFound() bool {
	for _, s := range b.Ships {
		if !b.Sunk(s) {
			return false
		}
	}
	return true
}
