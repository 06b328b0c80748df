package quantum

// PhaseFlips builds the diagonal for a phase-flip oracle over the marked
// cells: -1 on every marked index, +1 elsewhere. The diagonal is padded
// with +1 up to the 2^n basis states of the register that indexes the
// cells.
func PhaseFlips(marked []bool) []complex128 {
	n := QubitsFor(len(marked))
	phases := make([]complex128, 1<<n)
	for i := range phases {
		phases[i] = 1
	}
	for i, hit := range marked {
		if hit {
			phases[i] = -1
		}
	}
	return phases
}
