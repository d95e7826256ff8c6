// Package backend defines the execution seam between protocol logic and
// whatever carries the quantum state: core types, sentinel errors, the
// instruction set, and the Backend interface itself.
package backend

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/qec/pauli"
)

// Sentinel errors for backend operations.
var (
	// ErrRegisterSize indicates a register request for fewer than one qubit.
	ErrRegisterSize = errors.New("backend: register must hold at least one qubit")
	// ErrNilRegister indicates a nil register passed to Apply or Measure.
	ErrNilRegister = errors.New("backend: nil register")
	// ErrNilSequence indicates a nil gate sequence passed to Apply.
	ErrNilSequence = errors.New("backend: nil gate sequence")
	// ErrSequenceSpan indicates a sequence built for a different qubit count
	// than the register it is applied to.
	ErrSequenceSpan = errors.New("backend: gate sequence spans a different qubit count")
	// ErrShots indicates a non-positive shot request.
	ErrShots = errors.New("backend: shot count must be positive")
	// ErrReadoutProbability indicates a readout flip probability outside [0,1].
	ErrReadoutProbability = errors.New("backend: readout error probability must lie in [0,1]")
	// ErrMalformedOutcome indicates an outcome key that does not split into
	// binary data and syndrome groups.
	ErrMalformedOutcome = errors.New("backend: malformed outcome key")
)

// OpKind tags the three instruction types a GateSequence may carry.
type OpKind uint8

const (
	// OpSetWord loads the clean codeword bits and the readout basis.
	OpSetWord OpKind = iota
	// OpPauli composes a Pauli operator into the error frame.
	OpPauli
	// OpMeasureChecks declares the check operators to read out alongside
	// the data qubits.
	OpMeasureChecks
)

// Op is a single instruction. Exactly one payload field is meaningful,
// selected by Kind.
type Op struct {
	Kind OpKind
	// Word holds the codeword bits for OpSetWord.
	Word []uint8
	// PhaseBasis marks X-basis readout for OpSetWord.
	PhaseBasis bool
	// Frame holds the operator for OpPauli.
	Frame pauli.Operator
	// Checks holds the operators for OpMeasureChecks.
	Checks []pauli.Operator
}

// GateSequence is an ordered instruction list over a fixed qubit count.
// Build it fluently; validation happens when a backend applies it.
type GateSequence struct {
	n   int
	ops []Op
}

// NewSequence returns an empty sequence over n qubits.
// Returns ErrRegisterSize if n < 1.
func NewSequence(n int) (*GateSequence, error) {
	if n < 1 {
		return nil, ErrRegisterSize
	}

	return &GateSequence{n: n}, nil
}

// SetWord appends an instruction loading the clean codeword bits; phase
// selects X-basis readout. Returns the sequence for chaining.
func (s *GateSequence) SetWord(word []uint8, phase bool) *GateSequence {
	w := make([]uint8, len(word))
	copy(w, word)
	s.ops = append(s.ops, Op{Kind: OpSetWord, Word: w, PhaseBasis: phase})

	return s
}

// ApplyPauli appends an instruction composing op into the error frame.
// Returns the sequence for chaining.
func (s *GateSequence) ApplyPauli(op pauli.Operator) *GateSequence {
	s.ops = append(s.ops, Op{Kind: OpPauli, Frame: op.Clone()})

	return s
}

// MeasureChecks appends an instruction declaring the checks to read out.
// Returns the sequence for chaining.
func (s *GateSequence) MeasureChecks(checks []pauli.Operator) *GateSequence {
	cloned := make([]pauli.Operator, len(checks))
	for i, c := range checks {
		cloned[i] = c.Clone()
	}
	s.ops = append(s.ops, Op{Kind: OpMeasureChecks, Checks: cloned})

	return s
}

// N returns the qubit count the sequence was built for.
func (s *GateSequence) N() int { return s.n }

// Len returns the number of instructions.
func (s *GateSequence) Len() int { return len(s.ops) }

// Register is an immutable snapshot of prepared quantum state: the clean
// codeword, the accumulated Pauli error frame, the declared checks, and
// the readout basis. Backends return fresh registers instead of mutating.
type Register struct {
	n          int
	word       []uint8
	phaseBasis bool
	frame      pauli.Operator
	checks     []pauli.Operator
}

// N returns the register's qubit count.
func (r *Register) N() int { return r.n }

// Frame returns a copy of the accumulated error frame.
func (r *Register) Frame() pauli.Operator { return r.frame.Clone() }

// Word returns a copy of the clean codeword bits.
func (r *Register) Word() []uint8 {
	out := make([]uint8, len(r.word))
	copy(out, r.word)

	return out
}

// PhaseBasis reports whether readout happens in the X basis.
func (r *Register) PhaseBasis() bool { return r.phaseBasis }

// Checks returns copies of the declared check operators.
func (r *Register) Checks() []pauli.Operator {
	out := make([]pauli.Operator, len(r.checks))
	for i, c := range r.checks {
		out[i] = c.Clone()
	}

	return out
}

// clone returns a deep copy ready for further instructions.
func (r *Register) clone() *Register {
	out := &Register{
		n:          r.n,
		word:       make([]uint8, len(r.word)),
		phaseBasis: r.phaseBasis,
		frame:      r.frame.Clone(),
		checks:     make([]pauli.Operator, len(r.checks)),
	}
	copy(out.word, r.word)
	for i, c := range r.checks {
		out.checks[i] = c.Clone()
	}

	return out
}

// Counts histograms measurement outcomes by their outcome key.
type Counts map[string]int

// Total returns the number of shots recorded.
func (c Counts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}

	return t
}

// Merge adds every entry of o into c.
func (c Counts) Merge(o Counts) {
	for k, n := range o {
		c[k] += n
	}
}

// Keys returns the outcome keys sorted by count descending, ties broken by
// key ascending. This is the histogram presentation order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c[keys[i]] != c[keys[j]] {
			return c[keys[i]] > c[keys[j]]
		}

		return keys[i] < keys[j]
	})

	return keys
}

// Backend executes prepared state. Implementations must keep Apply pure:
// the input register is never mutated and the returned register is
// independent of it.
type Backend interface {
	// Prepare allocates a register of n qubits with an all-zero codeword,
	// an identity frame, and no checks.
	Prepare(n int) (*Register, error)
	// Apply returns a new register with seq's instructions applied.
	Apply(reg *Register, seq *GateSequence) (*Register, error)
	// Measure samples the register shots times and histograms the outcomes.
	Measure(reg *Register, shots int) (Counts, error)
}

// FormatOutcome renders an outcome key: the data bits, then one space and
// the syndrome bits when checks are present. Bit i of each group is qubit
// or check i, leftmost first.
func FormatOutcome(data, syndrome []uint8) string {
	var sb strings.Builder
	sb.Grow(len(data) + 1 + len(syndrome))
	writeBits(&sb, data)
	if len(syndrome) > 0 {
		sb.WriteByte(' ')
		writeBits(&sb, syndrome)
	}

	return sb.String()
}

// ParseOutcome splits an outcome key back into data and syndrome bits.
// The syndrome group is empty for keys without one.
// Returns ErrMalformedOutcome for anything else.
func ParseOutcome(key string) (data, syndrome []uint8, err error) {
	fields := strings.Fields(key)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, nil, ErrMalformedOutcome
	}
	if data, err = parseBits(fields[0]); err != nil {
		return nil, nil, err
	}
	if len(fields) == 2 {
		if syndrome, err = parseBits(fields[1]); err != nil {
			return nil, nil, err
		}
	}

	return data, syndrome, nil
}

// writeBits renders bits as '0'/'1' characters.
func writeBits(sb *strings.Builder, bits []uint8) {
	for _, b := range bits {
		sb.WriteByte('0' + b)
	}
}

// parseBits inverts writeBits.
func parseBits(s string) ([]uint8, error) {
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, ErrMalformedOutcome
		}
	}

	return out, nil
}
