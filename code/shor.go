package code

import "github.com/katalvlaran/qec/pauli"

// Shor returns the nine-qubit Shor code, the concatenation of a bit-flip
// repetition code inside each of three blocks with a phase-flip repetition
// code across them. Six Z-pair checks compare neighbours within blocks and
// two weight-6 X checks compare block signs.
//
// The X half of the syndrome only resolves phase errors down to their
// block: Z0, Z1 and Z2 share a syndrome, which is fine because they differ
// by the stabilizer Z0Z1 or Z1Z2. Decoding is exact only up to such
// stabilizer factors, the defining behaviour of a degenerate code.
func Shor() *Code {
	const n = 9
	checks := []Check{
		mustSupport(n, pauli.Z, CheckZ, 0, 1),
		mustSupport(n, pauli.Z, CheckZ, 1, 2),
		mustSupport(n, pauli.Z, CheckZ, 3, 4),
		mustSupport(n, pauli.Z, CheckZ, 4, 5),
		mustSupport(n, pauli.Z, CheckZ, 6, 7),
		mustSupport(n, pauli.Z, CheckZ, 7, 8),
		mustSupport(n, pauli.X, CheckX, 0, 1, 2, 3, 4, 5),
		mustSupport(n, pauli.X, CheckX, 3, 4, 5, 6, 7, 8),
	}

	return &Code{
		Name:        "shor",
		Description: "nine-qubit Shor code correcting any single-qubit error",
		N:           n,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustLogical(n, pauli.X, 0, 1, 2, 3, 4, 5, 6, 7, 8)},
		LogicalZ:    []pauli.Operator{mustLogical(n, pauli.Z, 0, 1, 2, 3, 4, 5, 6, 7, 8)},
		Readout:     BasisZ,
		Decoder:     HintTable,
	}
}
