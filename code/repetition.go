package code

import "github.com/katalvlaran/qec/pauli"

// BitFlip returns the three-qubit repetition code. Two Z-pair checks locate
// any single bit flip by majority logic. The code leaves phases unprotected:
// a Z error commutes with both checks and silently attacks the logical
// phase, which is the classic motivation for the full distance-3 codes.
func BitFlip() *Code {
	const n = 3
	checks := []Check{
		mustSupport(n, pauli.Z, CheckZ, 0, 1),
		mustSupport(n, pauli.Z, CheckZ, 1, 2),
	}

	return &Code{
		Name:        "bitflip",
		Description: "three-qubit repetition code correcting a single bit flip",
		N:           n,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustLogical(n, pauli.X, 0, 1, 2)},
		LogicalZ:    []pauli.Operator{mustLogical(n, pauli.Z, 0, 1, 2)},
		Readout:     BasisZ,
		Decoder:     HintTable,
	}
}

// PhaseFlip returns the dual three-qubit repetition code: X-pair checks on a
// plus/minus encoding locate a single phase flip. The logical value lives in
// the X basis, where |+++⟩ and |---⟩ are the two codewords. That swaps the
// logical roles relative to the bit-flip code: ZZZ toggles between the
// codewords and so acts as logical X, while XXX is diagonal on them and
// acts as logical Z. Bit flips are the unprotected direction here.
func PhaseFlip() *Code {
	const n = 3
	checks := []Check{
		mustSupport(n, pauli.X, CheckX, 0, 1),
		mustSupport(n, pauli.X, CheckX, 1, 2),
	}

	return &Code{
		Name:        "phaseflip",
		Description: "three-qubit repetition code correcting a single phase flip",
		N:           n,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustLogical(n, pauli.Z, 0, 1, 2)},
		LogicalZ:    []pauli.Operator{mustLogical(n, pauli.X, 0, 1, 2)},
		Readout:     BasisX,
		Decoder:     HintTable,
	}
}
