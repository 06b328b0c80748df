package quantum

import (
	"math"
	"math/rand"
)

// statevector holds the complex amplitudes of an n-qubit register in
// basis-state order. Qubit 0 is the least significant bit of the index.
type statevector []complex128

// newStatevector returns the |0...0> state over n qubits.
func newStatevector(n int) statevector {
	s := make(statevector, 1<<n)
	s[0] = 1
	return s
}

// hadamard applies the Hadamard gate to a single qubit.
//
//	H = 1/sqrt(2) * [1  1]
//	                [1 -1]
func (s statevector) hadamard(qubit int) {
	invRoot2 := complex(1/math.Sqrt2, 0)
	mask := 1 << qubit
	for i := range s {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a, b := s[i], s[j]
		s[i] = (a + b) * invRoot2
		s[j] = (a - b) * invRoot2
	}
}

// applyDiagonal multiplies each amplitude by the matching diagonal phase.
func (s statevector) applyDiagonal(phases []complex128) {
	for i := range s {
		s[i] *= phases[i]
	}
}

// probabilities returns the measurement probability of each basis state.
func (s statevector) probabilities() []float64 {
	probs := make([]float64, len(s))
	for i, amp := range s {
		re, im := real(amp), imag(amp)
		probs[i] = re*re + im*im
	}
	return probs
}

// sample draws shots basis-state indices from the distribution by
// cumulative-probability collapse.
func sample(probs []float64, shots int, rng *rand.Rand) map[int]int {
	outcomes := make(map[int]int)
	for s := 0; s < shots; s++ {
		r := rng.Float64()
		cumulative := 0.0
		selected := len(probs) - 1
		for i, p := range probs {
			cumulative += p
			if r <= cumulative {
				selected = i
				break
			}
		}
		outcomes[selected]++
	}
	return outcomes
}
