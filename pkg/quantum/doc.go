// Package quantum provides a small statevector simulator for the circuits
// qfleet uses to scan board lines. It supports exactly what the scanner
// needs: a Hadamard layer across all qubits, a diagonal phase oracle, and
// terminal measurement of a shot batch.
//
// The simulator is exact and local. All randomness comes from the
// *rand.Rand passed to Run, so a fixed seed reproduces the same counts.
package quantum
