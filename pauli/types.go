// Package pauli defines core types, sentinel errors, and the canonical
// ordering used by the pauli subpackage of github.com/katalvlaran/qec.
package pauli

import "errors"

// Sentinel errors for Pauli algebra operations.
var (
	// ErrLengthMismatch indicates two operators act on different qubit counts.
	ErrLengthMismatch = errors.New("pauli: operators act on different qubit counts")
	// ErrInvalidSymbol indicates a letter outside the {I, X, Y, Z} alphabet.
	ErrInvalidSymbol = errors.New("pauli: symbol must be one of I, X, Y, Z")
	// ErrQubitIndex indicates a qubit index outside [0, n).
	ErrQubitIndex = errors.New("pauli: qubit index out of range")
	// ErrDuplicateQubit indicates the same qubit listed twice in one support.
	ErrDuplicateQubit = errors.New("pauli: duplicate qubit in support")
	// ErrEmptyOperator indicates a zero-qubit operator where qubits are required.
	ErrEmptyOperator = errors.New("pauli: operator must span at least one qubit")
)

// Symbol is a single-qubit Pauli letter. The zero value is I.
type Symbol uint8

const (
	// I is the single-qubit identity.
	I Symbol = iota
	// X is the bit-flip Pauli.
	X
	// Y is the combined bit- and phase-flip Pauli.
	Y
	// Z is the phase-flip Pauli.
	Z
)

// symbolNames maps Symbol values to their one-letter spelling.
const symbolNames = "IXYZ"

// String returns the one-letter spelling of s, or "?" for invalid values.
func (s Symbol) String() string {
	if !s.Valid() {
		return "?"
	}

	return symbolNames[s : s+1]
}

// Valid reports whether s is one of the four defined Pauli letters.
func (s Symbol) Valid() bool {
	return s <= Z
}

// ParseSymbol converts a byte ('I', 'X', 'Y' or 'Z') into a Symbol.
// Returns ErrInvalidSymbol for any other byte.
func ParseSymbol(b byte) (Symbol, error) {
	switch b {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return I, ErrInvalidSymbol
	}
}

// Operator is an n-qubit Pauli operator with its global phase discarded.
// Index q holds the letter acting on qubit q. Operators are plain slices;
// use Clone before mutating a shared value.
type Operator []Symbol

// mulTable is the phase-free single-qubit product: mulTable[a][b] = a·b up
// to a factor of ±1 or ±i. Any letter squares to I, and the product of two
// distinct non-identity letters is the third.
var mulTable = [4][4]Symbol{
	I: {I: I, X: X, Y: Y, Z: Z},
	X: {I: X, X: I, Y: Z, Z: Y},
	Y: {I: Y, X: Z, Y: I, Z: X},
	Z: {I: Z, X: Y, Y: X, Z: I},
}
