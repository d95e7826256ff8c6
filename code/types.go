// Package code defines core types, sentinel errors, and construction
// parameters for the code subpackage of github.com/katalvlaran/qec.
package code

import (
	"errors"

	"github.com/katalvlaran/qec/pauli"
)

// Sentinel errors for code construction and validation.
var (
	// ErrInvalidCodeSpec indicates a malformed code definition: wrong check
	// lengths, non-commuting stabilizers, broken logical pairing, or
	// out-of-range construction parameters.
	ErrInvalidCodeSpec = errors.New("code: invalid code specification")
	// ErrUnknownCode indicates a registry lookup for a name not in the catalogue.
	ErrUnknownCode = errors.New("code: unknown code name")
)

// CheckKind classifies the measurement basis of a check operator.
type CheckKind uint8

const (
	// CheckZ marks a Z-type check; it detects X-type errors.
	CheckZ CheckKind = iota
	// CheckX marks an X-type check; it detects Z-type errors.
	CheckX
	// CheckMixed marks a check mixing X and Z letters (non-CSS codes).
	CheckMixed
)

// String returns "Z", "X" or "XZ" for the three check kinds.
func (k CheckKind) String() string {
	switch k {
	case CheckZ:
		return "Z"
	case CheckX:
		return "X"
	default:
		return "XZ"
	}
}

// Basis selects the measurement basis in which a code's logical value is
// read out. Repetition codes protecting phases read out in X.
type Basis uint8

const (
	// BasisZ reads logical values as Z-basis bits.
	BasisZ Basis = iota
	// BasisX reads logical values as X-basis signs.
	BasisX
)

// DecoderHint names the decoding strategy a code was designed for.
type DecoderHint string

const (
	// HintTable selects exhaustive syndrome-table lookup.
	HintTable DecoderHint = "table"
	// HintMatching selects minimum-weight perfect matching on the check graph.
	HintMatching DecoderHint = "matching"
)

// Check is one measured parity check: a Pauli operator with a short human
// label and its measurement basis.
type Check struct {
	// Name is a short label such as "Z0Z1" or "star(1,2)".
	Name string
	// Op is the measured Pauli operator.
	Op pauli.Operator
	// Kind classifies the measurement basis of Op.
	Kind CheckKind
}

// Lattice describes the qubit layout of a topological code. It drives
// rendering only; decoding derives everything from the checks themselves.
type Lattice struct {
	// Periodic is true for toric layouts, false for planar ones.
	Periodic bool
	// Size is the code distance d for planar layouts and the linear
	// lattice size L for periodic ones.
	Size int
}

// Params carries the tunable construction parameters accepted by the
// registry. Zero values select the documented defaults.
type Params struct {
	// Distance is the planar surface code distance (odd, ≥ 3). 0 means 3.
	Distance int
	// Lattice is the toric linear size (≥ 2). 0 means 3.
	Lattice int
}

// Code is a stabilizer (or subsystem) error-correcting code described
// entirely as data: measured checks, the abelian stabilizer generators,
// logical operator representatives, and layout metadata. Constructors in
// this package return validated values; hand-built codes should be passed
// through Validate before use.
type Code struct {
	// Name is the registry key, e.g. "steane".
	Name string
	// Description is a one-line summary for the catalogue.
	Description string

	// N, K and D are the physical qubit count, logical qubit count, and
	// code distance. D is declared metadata; Validate does not recompute it.
	N, K, D int

	// Checks are the measured parity checks in syndrome bit order. For
	// subsystem codes these are gauge operators and need not commute with
	// each other.
	Checks []Check

	// Stabilizers generate the abelian stabilizer group used by
	// verification. For most codes they coincide with the check operators;
	// subsystem codes list the gauge products here instead.
	Stabilizers []pauli.Operator

	// StabilizerFold lists, per stabilizer, the indices of the measured
	// checks whose outcome bits multiply into that stabilizer's parity.
	// nil means checks and stabilizers coincide one-to-one.
	StabilizerFold [][]int

	// LogicalX and LogicalZ hold one anticommuting representative pair per
	// logical qubit. Index i addresses logical qubit i.
	LogicalX []pauli.Operator
	LogicalZ []pauli.Operator

	// Readout selects the basis in which logical values are reported.
	Readout Basis

	// Decoder names the decoding strategy this code was designed for.
	Decoder DecoderHint

	// Layout is non-nil for topological codes and drives lattice rendering.
	Layout *Lattice
}
