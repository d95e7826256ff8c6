package protocol

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// SingleFault builds the deterministic error pattern of one fault: the
// requested Pauli letter on the target qubit, identity elsewhere.
// Returns ErrInvalidQubitIndex or ErrInvalidErrorType with the offending
// value.
func SingleFault(c *code.Code, f Fault) (pauli.Operator, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if f.Qubit < 0 || f.Qubit >= c.N {
		return nil, fmt.Errorf("%w: qubit %d on a %d-qubit code", ErrInvalidQubitIndex, f.Qubit, c.N)
	}
	if f.Type != pauli.X && f.Type != pauli.Y && f.Type != pauli.Z {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidErrorType, f.Type)
	}

	return pauli.Single(c.N, f.Qubit, f.Type)
}

// SampleChannel draws one error pattern from the noise model: an
// independent sample per qubit when target is TargetAll, otherwise a
// single sample on the target qubit. Each call consumes rng, so per-shot
// streams must be derived upstream.
// Returns ErrInvalidQubitIndex for a target outside TargetAll ∪ [0, n).
func SampleChannel(c *code.Code, m channel.Model, target int, rng *rand.Rand) (pauli.Operator, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if target != TargetAll && (target < 0 || target >= c.N) {
		return nil, fmt.Errorf("%w: noise target %d on a %d-qubit code", ErrInvalidQubitIndex, target, c.N)
	}
	op := make(pauli.Operator, c.N)
	if target == TargetAll {
		for q := range op {
			op[q] = m.Sample(rng)
		}

		return op, nil
	}
	op[target] = m.Sample(rng)

	return op, nil
}
