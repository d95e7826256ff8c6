// Package protocol wires the correction pipeline end to end: encode a
// logical value, inject an error, extract the syndrome through the
// backend, decode, correct, and verify recovery. The Runner aggregates
// the whole loop over many shots; the free functions below are its
// individually testable phases.
package protocol

import (
	"fmt"

	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// Encode builds the preparation instructions for the given logical input:
// load the all-zero codeword in the code's readout basis, then apply the
// logical X representative of every logical qubit set to 1. The returned
// sequence is purely functional in its inputs.
// Returns ErrNilCode or ErrInvalidLogicalValue on bad arguments.
func Encode(c *code.Code, input []int) (*backend.GateSequence, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if len(input) != c.K {
		return nil, fmt.Errorf("%w: got %d values for %d logical qubits", ErrInvalidLogicalValue, len(input), c.K)
	}
	seq, err := backend.NewSequence(c.N)
	if err != nil {
		return nil, err
	}
	seq.SetWord(make([]uint8, c.N), c.Readout == code.BasisX)
	prep, err := pauli.Identity(c.N)
	if err != nil {
		return nil, err
	}
	for i, v := range input {
		switch v {
		case 0:
		case 1:
			if prep, err = prep.Mul(c.LogicalX[i]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: value %d at logical qubit %d", ErrInvalidLogicalValue, v, i)
		}
	}
	if !prep.IsIdentity() {
		seq.ApplyPauli(prep)
	}

	return seq, nil
}

// LogicalValues reads the logical bits out of measured data bits: logical
// qubit i is the parity of the data bits under its logical Z support (its
// logical X support for X-basis readout codes, where LogicalZ already
// holds the basis-diagonal representative).
// Returns ErrNilCode or ErrDataLength on bad arguments.
func LogicalValues(c *code.Code, data []uint8) ([]int, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if len(data) != c.N {
		return nil, fmt.Errorf("%w: got %d bits for %d qubits", ErrDataLength, len(data), c.N)
	}
	vals := make([]int, c.K)
	for i, op := range c.LogicalZ {
		parity := 0
		for _, q := range op.Support() {
			parity ^= int(data[q])
		}
		vals[i] = parity
	}

	return vals, nil
}

// CorrectedValues applies the correction's readout effect to measured
// data bits and decodes the logical values. A correction letter flips a
// bit exactly when it anticommutes with the readout basis: X and Y flip
// Z-basis bits, Z and Y flip X-basis bits.
func CorrectedValues(c *code.Code, data []uint8, corr pauli.Operator) ([]int, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if len(data) != c.N || corr.Len() != c.N {
		return nil, fmt.Errorf("%w: data %d and correction %d bits for %d qubits", ErrDataLength, len(data), corr.Len(), c.N)
	}
	fixed := make([]uint8, c.N)
	phase := c.Readout == code.BasisX
	for q := 0; q < c.N; q++ {
		fixed[q] = data[q]
		s := corr.At(q)
		if (phase && (s == pauli.Z || s == pauli.Y)) || (!phase && (s == pauli.X || s == pauli.Y)) {
			fixed[q] ^= 1
		}
	}

	return LogicalValues(c, fixed)
}
