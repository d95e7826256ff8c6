// Package backend - FrameSimulator, the shipped Backend implementation.
//
// FrameSimulator is a classical Pauli-frame emulator, not a statevector
// simulator. It tracks the net Pauli operator accumulated against a clean
// codeword and derives every measurement outcome from that frame alone:
// data bits are the codeword bits flipped wherever the frame anticommutes
// with the readout basis, and syndrome bits are the anticommutation parity
// of the frame against each declared check. This reproduces exactly the
// statistics a stabilizer-state simulator would produce for Pauli noise,
// which is all the correction protocol ever injects.
package backend

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/qec/pauli"
)

// defaultSimSeed seeds the readout-noise stream when callers pass seed 0.
const defaultSimSeed int64 = 1

// SimOption customises a FrameSimulator at construction time.
type SimOption func(*FrameSimulator) error

// WithReadoutError makes every measured bit flip independently with
// probability p, modelling classical readout noise on top of the frame.
// Returns ErrReadoutProbability if p lies outside [0,1].
func WithReadoutError(p float64) SimOption {
	return func(s *FrameSimulator) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: got %v", ErrReadoutProbability, p)
		}
		s.readoutErr = p

		return nil
	}
}

// WithSeed fixes the readout-noise stream. Seed 0 selects the stable
// default, so runs are reproducible unless a caller opts out.
func WithSeed(seed int64) SimOption {
	return func(s *FrameSimulator) error {
		s.seed = seed

		return nil
	}
}

// FrameSimulator implements Backend by classical Pauli-frame bookkeeping.
// Apply is pure; Measure is deterministic unless a readout error was
// configured, in which case the internal noise stream is guarded by a
// mutex so concurrent shots stay safe.
type FrameSimulator struct {
	readoutErr float64
	seed       int64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFrameSimulator builds a noiseless simulator and applies the options.
func NewFrameSimulator(opts ...SimOption) (*FrameSimulator, error) {
	s := &FrameSimulator{seed: defaultSimSeed}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.seed == 0 {
		s.seed = defaultSimSeed
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	return s, nil
}

// Prepare allocates an n-qubit register with an all-zero codeword, an
// identity frame, Z-basis readout, and no declared checks.
// Returns ErrRegisterSize if n < 1.
func (s *FrameSimulator) Prepare(n int) (*Register, error) {
	if n < 1 {
		return nil, ErrRegisterSize
	}
	frame, err := pauli.Identity(n)
	if err != nil {
		return nil, err
	}

	return &Register{n: n, word: make([]uint8, n), frame: frame}, nil
}

// Apply executes seq against a copy of reg and returns the copy; reg is
// never touched. Instructions are validated as they run: every operator
// and word must span the register's qubit count.
// Returns ErrNilRegister, ErrNilSequence or ErrSequenceSpan accordingly.
func (s *FrameSimulator) Apply(reg *Register, seq *GateSequence) (*Register, error) {
	if reg == nil {
		return nil, ErrNilRegister
	}
	if seq == nil {
		return nil, ErrNilSequence
	}
	if seq.n != reg.n {
		return nil, fmt.Errorf("%w: sequence spans %d qubits, register holds %d", ErrSequenceSpan, seq.n, reg.n)
	}
	out := reg.clone()
	for _, op := range seq.ops {
		switch op.Kind {
		case OpSetWord:
			if len(op.Word) != out.n {
				return nil, fmt.Errorf("%w: word spans %d bits, register holds %d qubits", ErrSequenceSpan, len(op.Word), out.n)
			}
			copy(out.word, op.Word)
			out.phaseBasis = op.PhaseBasis
		case OpPauli:
			next, err := out.frame.Mul(op.Frame)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSequenceSpan, err)
			}
			out.frame = next
		case OpMeasureChecks:
			for i, chk := range op.Checks {
				if chk.Len() != out.n {
					return nil, fmt.Errorf("%w: check %d spans %d qubits, register holds %d", ErrSequenceSpan, i, chk.Len(), out.n)
				}
			}
			out.checks = cloneOps(op.Checks)
		}
	}

	return out, nil
}

// Measure samples reg shots times and histograms the outcome keys. With no
// readout noise every shot is identical, so the histogram is a single key
// carrying the full count; with readout noise each bit flips independently
// per shot.
// Returns ErrNilRegister or ErrShots on bad arguments.
func (s *FrameSimulator) Measure(reg *Register, shots int) (Counts, error) {
	if reg == nil {
		return nil, ErrNilRegister
	}
	if shots < 1 {
		return nil, ErrShots
	}
	data, syndrome, err := s.readout(reg)
	if err != nil {
		return nil, err
	}
	counts := make(Counts, 1)
	if s.readoutErr == 0 {
		counts[FormatOutcome(data, syndrome)] = shots

		return counts, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := make([]uint8, len(data))
	syn := make([]uint8, len(syndrome))
	for i := 0; i < shots; i++ {
		flipBits(d, data, s.readoutErr, s.rng)
		flipBits(syn, syndrome, s.readoutErr, s.rng)
		counts[FormatOutcome(d, syn)]++
	}

	return counts, nil
}

// readout derives the noiseless data and syndrome bits from the frame.
func (s *FrameSimulator) readout(reg *Register) (data, syndrome []uint8, err error) {
	data = make([]uint8, reg.n)
	for q := 0; q < reg.n; q++ {
		data[q] = reg.word[q]
		if flipsReadout(reg.frame.At(q), reg.phaseBasis) {
			data[q] ^= 1
		}
	}
	syndrome = make([]uint8, len(reg.checks))
	for i, chk := range reg.checks {
		ok, cerr := chk.CommutesWith(reg.frame)
		if cerr != nil {
			return nil, nil, cerr
		}
		if !ok {
			syndrome[i] = 1
		}
	}

	return data, syndrome, nil
}

// flipsReadout reports whether the frame letter s flips a measured bit in
// the selected basis: X and Y flip Z-basis bits, Z and Y flip X-basis bits.
func flipsReadout(s pauli.Symbol, phaseBasis bool) bool {
	if phaseBasis {
		return s == pauli.Z || s == pauli.Y
	}

	return s == pauli.X || s == pauli.Y
}

// flipBits copies src into dst, flipping each bit with probability p.
func flipBits(dst, src []uint8, p float64, rng *rand.Rand) {
	for i, b := range src {
		if rng.Float64() < p {
			b ^= 1
		}
		dst[i] = b
	}
}

// cloneOps deep-copies a check list.
func cloneOps(ops []pauli.Operator) []pauli.Operator {
	out := make([]pauli.Operator, len(ops))
	for i, op := range ops {
		out[i] = op.Clone()
	}

	return out
}
