package code

import "github.com/katalvlaran/qec/pauli"

// steaneSupports are the rows of the [7,4] Hamming parity-check matrix:
// column q is the binary spelling of q+1, so qubit q sits in check row b
// exactly when bit b of q+1 is set.
var steaneSupports = [][]int{
	{3, 4, 5, 6}, // bit 4
	{1, 2, 5, 6}, // bit 2
	{0, 2, 4, 6}, // bit 1
}

// Steane returns the [[7,1,3]] Steane code, the CSS construction that uses
// the Hamming supports twice: as Z checks against bit flips and as X checks
// against phase flips. Reading the three same-type syndrome bits as a
// binary number yields q+1 for an error on qubit q, so the syndrome is its
// own decoder.
func Steane() *Code {
	const n = 7
	checks := make([]Check, 0, 2*len(steaneSupports))
	for _, sup := range steaneSupports {
		checks = append(checks, mustSupport(n, pauli.Z, CheckZ, sup...))
	}
	for _, sup := range steaneSupports {
		checks = append(checks, mustSupport(n, pauli.X, CheckX, sup...))
	}

	return &Code{
		Name:        "steane",
		Description: "seven-qubit Steane code built from the [7,4] Hamming checks",
		N:           n,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustLogical(n, pauli.X, 0, 1, 2, 3, 4, 5, 6)},
		LogicalZ:    []pauli.Operator{mustLogical(n, pauli.Z, 0, 1, 2, 3, 4, 5, 6)},
		Readout:     BasisZ,
		Decoder:     HintTable,
	}
}
