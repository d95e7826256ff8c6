package protocol

import (
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// Outcome classifies one corrected trial at the operator level.
type Outcome uint8

const (
	// Recovered means the residual lies in the stabilizer (or gauge)
	// group: the logical state survives exactly.
	Recovered Outcome = iota
	// LogicalFault means the residual acts as a logical operator: decoding
	// completed mechanically but flipped the encoded information. This is
	// a modelled failure outcome, not an error.
	LogicalFault
)

// String returns "recovered" or "logical-fault".
func (o Outcome) String() string {
	if o == Recovered {
		return "recovered"
	}

	return "logical-fault"
}

// Verify composes the correction with the injected error and classifies
// the residual: recovery iff it commutes with every stabilizer generator
// and every logical representative. Anything else acted on the logical
// subspace and counts as a logical fault. Pauli operators are self-inverse,
// so applying the correction is the same composition as undoing it.
func Verify(c *code.Code, errOp, corr pauli.Operator) (Outcome, error) {
	if c == nil {
		return LogicalFault, ErrNilCode
	}
	residual, err := corr.Mul(errOp)
	if err != nil {
		return LogicalFault, err
	}
	probes := make([]pauli.Operator, 0, len(c.Stabilizers)+2*c.K)
	probes = append(probes, c.Stabilizers...)
	probes = append(probes, c.LogicalX...)
	probes = append(probes, c.LogicalZ...)
	for _, op := range probes {
		ok, cerr := residual.CommutesWith(op)
		if cerr != nil {
			return LogicalFault, cerr
		}
		if !ok {
			return LogicalFault, nil
		}
	}

	return Recovered, nil
}
