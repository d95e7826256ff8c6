package code

import "github.com/katalvlaran/qec/pauli"

// fiveQubitGenerators are the four cyclic shifts of XZZXI. The code is not
// CSS: every generator mixes X and Z letters.
var fiveQubitGenerators = []string{
	"XZZXI",
	"IXZZX",
	"XIXZZ",
	"ZXIXZ",
}

// FiveQubit returns the [[5,1,3]] perfect code, the smallest code correcting
// an arbitrary single-qubit error. Perfection means the sixteen syndromes
// split exactly into the identity plus the fifteen weight-1 errors, so
// table decoding of single faults is unambiguous with no degeneracy at all.
func FiveQubit() *Code {
	checks := make([]Check, len(fiveQubitGenerators))
	for i, spelling := range fiveQubitGenerators {
		checks[i] = Check{Name: spelling, Op: mustOperator(spelling), Kind: CheckMixed}
	}

	return &Code{
		Name:        "fivequbit",
		Description: "five-qubit perfect code, the smallest correcting any single-qubit error",
		N:           5,
		K:           1,
		D:           3,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustOperator("XXXXX")},
		LogicalZ:    []pauli.Operator{mustOperator("ZZZZZ")},
		Readout:     BasisZ,
		Decoder:     HintTable,
	}
}
