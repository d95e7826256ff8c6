// Package decoder defines core types and sentinel errors for the decoder
// subpackage of github.com/katalvlaran/qec.
package decoder

import (
	"errors"
	"strings"

	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// Sentinel errors for decoder construction and decoding.
var (
	// ErrNilCode indicates a decoder constructed over a nil code.
	ErrNilCode = errors.New("decoder: nil code")
	// ErrSyndromeLength indicates a syndrome with the wrong number of bits
	// for the decoder's code.
	ErrSyndromeLength = errors.New("decoder: syndrome length does not match the code")
	// ErrInvalidSyndromeParity indicates an odd excitation count on a
	// periodic lattice. The torus has no boundary to absorb a lone
	// excitation, so an odd count means the syndrome itself is inconsistent
	// and decoding must not proceed.
	ErrInvalidSyndromeParity = errors.New("decoder: odd excitation count on a periodic lattice")
	// ErrNotMatchable indicates a matching decoder built over a code whose
	// checks do not split into pure X and Z types.
	ErrNotMatchable = errors.New("decoder: matching requires CSS-type checks")
	// ErrUnknownStrategy indicates a code whose decoder hint names no
	// implemented strategy.
	ErrUnknownStrategy = errors.New("decoder: unknown decoding strategy")
)

// Syndrome is one measured syndrome: one bit per check (or per stabilizer,
// after gauge folding), in the code's declared order. Syndromes are
// transient per-shot values and are never mutated after creation.
type Syndrome []uint8

// Key renders the syndrome as a bit string, e.g. "0110". Keys index
// lookup tables and histogram maps.
func (s Syndrome) Key() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		sb.WriteByte('0' + b)
	}

	return sb.String()
}

// Weight counts the fired bits.
func (s Syndrome) Weight() int {
	w := 0
	for _, b := range s {
		if b != 0 {
			w++
		}
	}

	return w
}

// Decoder maps a syndrome to a corrective Pauli operator. Implementations
// are immutable after construction and safe for concurrent shots.
type Decoder interface {
	// Decode returns the correction for s. A returned correction is always
	// well defined, even for syndromes outside the code's correction
	// capability; only structurally invalid syndromes produce errors.
	Decode(s Syndrome) (pauli.Operator, error)
	// Code returns the code the decoder was built for.
	Code() *code.Code
}

// New builds the decoding strategy the code was designed for: table lookup
// for the small block codes, minimum-weight matching for the topological
// families.
// Returns ErrNilCode or ErrUnknownStrategy on bad input and passes through
// strategy construction errors.
func New(c *code.Code) (Decoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	switch c.Decoder {
	case code.HintTable:
		return NewTable(c)
	case code.HintMatching:
		return NewMatching(c)
	default:
		return nil, ErrUnknownStrategy
	}
}
