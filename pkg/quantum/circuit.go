package quantum

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

const (
	// MaxQubits bounds circuit width. 2^12 amplitudes is already far more
	// than any board line needs.
	MaxQubits = 12
)

// QubitsFor returns the number of qubits needed to index width cells,
// ceil(log2(width)) with a minimum of one qubit.
func QubitsFor(width int) int {
	if width <= 2 {
		return 1
	}
	return bits.Len(uint(width - 1))
}

// opKind identifies a circuit stage.
type opKind int

const (
	opHadamardLayer opKind = iota
	opOracle
	opMeasure
)

// operation is one stage applied across the whole register.
type operation struct {
	kind   opKind
	phases []complex128 // opOracle only
}

// Circuit is an n-qubit circuit built from full-register stages.
type Circuit struct {
	NumQubits int
	ops       []operation
}

// NewCircuit creates an empty circuit over n qubits.
func NewCircuit(n int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("circuit needs at least 1 qubit, got %d", n)
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("circuit too wide: %d qubits (max: %d)", n, MaxQubits)
	}
	return &Circuit{NumQubits: n}, nil
}

// HadamardLayer appends a Hadamard gate on every qubit.
func (c *Circuit) HadamardLayer() {
	c.ops = append(c.ops, operation{kind: opHadamardLayer})
}

// Oracle appends a diagonal phase stage. phases must have one entry per
// basis state (2^n).
func (c *Circuit) Oracle(phases []complex128) error {
	if len(phases) != 1<<c.NumQubits {
		return fmt.Errorf("oracle diagonal has %d entries, want %d", len(phases), 1<<c.NumQubits)
	}
	diag := make([]complex128, len(phases))
	copy(diag, phases)
	c.ops = append(c.ops, operation{kind: opOracle, phases: diag})
	return nil
}

// Measure appends terminal measurement of all qubits.
func (c *Circuit) Measure() {
	c.ops = append(c.ops, operation{kind: opMeasure})
}

// Counts maps measured bitstrings (most significant qubit first) to the
// number of shots that produced them.
type Counts map[string]int

// Total returns the number of shots recorded.
func (k Counts) Total() int {
	total := 0
	for _, n := range k {
		total += n
	}
	return total
}

// Fraction returns the share of shots that produced the given bitstring.
// Returns 0 when no shots were recorded.
func (k Counts) Fraction(state string) float64 {
	total := k.Total()
	if total == 0 {
		return 0
	}
	return float64(k[state]) / float64(total)
}

// ZeroState returns the all-zeros bitstring for n qubits.
func ZeroState(n int) string {
	return strings.Repeat("0", n)
}

// Run simulates the circuit and samples the measurement distribution.
// The circuit must end with a Measure stage.
func (c *Circuit) Run(shots int, rng *rand.Rand) (Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shots must be >= 1, got %d", shots)
	}
	if len(c.ops) == 0 || c.ops[len(c.ops)-1].kind != opMeasure {
		return nil, fmt.Errorf("circuit has no terminal measurement")
	}

	state := newStatevector(c.NumQubits)
	for _, op := range c.ops {
		switch op.kind {
		case opHadamardLayer:
			for q := 0; q < c.NumQubits; q++ {
				state.hadamard(q)
			}
		case opOracle:
			state.applyDiagonal(op.phases)
		case opMeasure:
			// terminal stage, handled below
		}
	}

	counts := make(Counts)
	for index, n := range sample(state.probabilities(), shots, rng) {
		counts[fmt.Sprintf("%0*b", c.NumQubits, index)] += n
	}
	return counts, nil
}

// Draw renders the circuit as one ASCII wire per qubit.
func (c *Circuit) Draw() string {
	var sb strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		fmt.Fprintf(&sb, "q%d: ──", q)
		for _, op := range c.ops {
			switch op.kind {
			case opHadamardLayer:
				sb.WriteString("H──")
			case opOracle:
				sb.WriteString("O──")
			case opMeasure:
				sb.WriteString("M──")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
