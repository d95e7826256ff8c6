package code

import "github.com/katalvlaran/qec/pauli"

// BaconShor returns the [[9,1]] Bacon-Shor subsystem code on a 3×3 qubit
// grid (qubit index 3·row+col). Only weight-2 gauge operators are ever
// measured: ZZ on horizontal neighbours and XX on vertical neighbours. The
// gauge operators do not commute with each other; the abelian stabilizers
// are their products, Z on two adjacent columns and X on two adjacent rows,
// and StabilizerFold records which gauge outcomes multiply into which
// stabilizer parity.
//
// Corrections are exact only up to the gauge group. An X error anywhere in
// a column is repaired by X on that column's top qubit; the leftover
// vertical XX pairs are gauge operators and act trivially on the logical
// qubit. Verification must therefore test residuals against the folded
// stabilizers, never against the raw gauge checks.
func BaconShor() *Code {
	const n = 9
	checks := []Check{
		// ZZ gauge on horizontal neighbour pairs, row-major.
		mustSupport(n, pauli.Z, CheckZ, 0, 1),
		mustSupport(n, pauli.Z, CheckZ, 1, 2),
		mustSupport(n, pauli.Z, CheckZ, 3, 4),
		mustSupport(n, pauli.Z, CheckZ, 4, 5),
		mustSupport(n, pauli.Z, CheckZ, 6, 7),
		mustSupport(n, pauli.Z, CheckZ, 7, 8),
		// XX gauge on vertical neighbour pairs, column-major.
		mustSupport(n, pauli.X, CheckX, 0, 3),
		mustSupport(n, pauli.X, CheckX, 3, 6),
		mustSupport(n, pauli.X, CheckX, 1, 4),
		mustSupport(n, pauli.X, CheckX, 4, 7),
		mustSupport(n, pauli.X, CheckX, 2, 5),
		mustSupport(n, pauli.X, CheckX, 5, 8),
	}
	stabilizers := []pauli.Operator{
		mustLogical(n, pauli.Z, 0, 1, 3, 4, 6, 7), // Z on columns 0,1
		mustLogical(n, pauli.Z, 1, 2, 4, 5, 7, 8), // Z on columns 1,2
		mustLogical(n, pauli.X, 0, 1, 2, 3, 4, 5), // X on rows 0,1
		mustLogical(n, pauli.X, 3, 4, 5, 6, 7, 8), // X on rows 1,2
	}

	return &Code{
		Name:        "baconshor",
		Description: "nine-qubit Bacon-Shor subsystem code with weight-2 gauge checks",
		N:           n,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: stabilizers,
		StabilizerFold: [][]int{
			{0, 2, 4},  // Z pairs touching columns 0,1
			{1, 3, 5},  // Z pairs touching columns 1,2
			{6, 8, 10}, // X pairs inside rows 0,1
			{7, 9, 11}, // X pairs inside rows 1,2
		},
		LogicalX: []pauli.Operator{mustLogical(n, pauli.X, 0, 1, 2)}, // top row
		LogicalZ: []pauli.Operator{mustLogical(n, pauli.Z, 0, 3, 6)}, // left column
		Readout:  BasisZ,
		Decoder:  HintTable,
		Layout:   &Lattice{Periodic: false, Size: 3},
	}
}
