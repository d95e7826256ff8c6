// Package code catalogues stabilizer and subsystem quantum error-correcting
// codes as plain data. Every code is a set of Pauli check operators plus
// logical operator representatives; no code owns behaviour beyond syndrome
// arithmetic, so decoders and simulators stay fully data-driven.
package code

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qec/pauli"
)

// String renders the code in the usual [[n,k,d]] notation, e.g.
// "steane [[7,1,3]]".
func (c *Code) String() string {
	return fmt.Sprintf("%s [[%d,%d,%d]]", c.Name, c.N, c.K, c.D)
}

// SyndromeOf measures err against every check and returns one bit per
// check: 1 where the error anticommutes with the check, 0 where it
// commutes. This is the raw measured syndrome before any gauge folding.
// Returns pauli.ErrLengthMismatch if err spans a different qubit count.
// Complexity: O(len(Checks)·N).
func (c *Code) SyndromeOf(err pauli.Operator) ([]uint8, error) {
	syn := make([]uint8, len(c.Checks))
	for i, chk := range c.Checks {
		ok, cerr := chk.Op.CommutesWith(err)
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			syn[i] = 1
		}
	}

	return syn, nil
}

// FoldSyndrome maps a raw measured syndrome onto the stabilizer syndrome
// the decoder consumes. For ordinary stabilizer codes this is a copy of
// the input; for subsystem codes each stabilizer bit is the parity of the
// gauge check bits listed in StabilizerFold.
// Complexity: O(len(Stabilizers)·fold width).
func (c *Code) FoldSyndrome(raw []uint8) []uint8 {
	if c.StabilizerFold == nil {
		out := make([]uint8, len(raw))
		copy(out, raw)

		return out
	}
	out := make([]uint8, len(c.Stabilizers))
	for i, group := range c.StabilizerFold {
		var parity uint8
		for _, idx := range group {
			parity ^= raw[idx]
		}
		out[i] = parity
	}

	return out
}

// DecodeOps returns the operators whose anticommutation pattern forms the
// decoder-facing syndrome: the stabilizer generators, in the same order as
// the bits produced by FoldSyndrome.
func (c *Code) DecodeOps() []pauli.Operator {
	return c.Stabilizers
}

// ChecksOfKind returns the indices of checks with the given kind, in
// syndrome order.
func (c *Code) ChecksOfKind(k CheckKind) []int {
	var idx []int
	for i, chk := range c.Checks {
		if chk.Kind == k {
			idx = append(idx, i)
		}
	}

	return idx
}

// checkOps extracts the operator column from a check list.
func checkOps(checks []Check) []pauli.Operator {
	ops := make([]pauli.Operator, len(checks))
	for i, chk := range checks {
		ops[i] = chk.Op
	}

	return ops
}

// checkName renders labels like "Z0Z1" or "X3X4X5X6" for support-style checks.
func checkName(letter string, qubits []int) string {
	var sb strings.Builder
	for _, q := range qubits {
		fmt.Fprintf(&sb, "%s%d", letter, q)
	}

	return sb.String()
}

// supportCheck builds a same-letter check over the listed qubits. It is the
// shared workhorse of every CSS constructor in this package; construction
// errors escalate to ErrInvalidCodeSpec because they mean the hard-coded
// tables themselves are broken.
func supportCheck(n int, sym pauli.Symbol, kind CheckKind, qubits ...int) (Check, error) {
	op, err := pauli.FromSupport(n, sym, qubits...)
	if err != nil {
		return Check{}, fmt.Errorf("%w: check on qubits %v: %v", ErrInvalidCodeSpec, qubits, err)
	}

	return Check{Name: checkName(sym.String(), qubits), Op: op, Kind: kind}, nil
}

// mustSupport is supportCheck for the fixed built-in tables, where a
// construction error is unreachable.
func mustSupport(n int, sym pauli.Symbol, kind CheckKind, qubits ...int) Check {
	chk, err := supportCheck(n, sym, kind, qubits...)
	if err != nil {
		panic(err)
	}

	return chk
}

// mustOperator parses a fixed dense spelling; unreachable errors panic.
func mustOperator(s string) pauli.Operator {
	op, err := pauli.Parse(s)
	if err != nil {
		panic(err)
	}

	return op
}

// mustLogical builds a same-letter logical representative over the listed
// qubits; unreachable errors panic.
func mustLogical(n int, sym pauli.Symbol, qubits ...int) pauli.Operator {
	op, err := pauli.FromSupport(n, sym, qubits...)
	if err != nil {
		panic(err)
	}

	return op
}
