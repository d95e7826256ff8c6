// Package pauli implements the phase-free n-qubit Pauli algebra: construction,
// composition, commutation tests, weights, and the canonical operator ordering
// that every deterministic tie-break in this module relies on.
package pauli

import "strings"

// Identity returns the n-qubit identity operator.
// Returns ErrEmptyOperator if n < 1.
// Complexity: O(n).
func Identity(n int) (Operator, error) {
	if n < 1 {
		return nil, ErrEmptyOperator
	}

	return make(Operator, n), nil
}

// Single returns the n-qubit operator that applies s on qubit q and I elsewhere.
// Returns ErrEmptyOperator if n < 1, ErrQubitIndex if q is outside [0, n),
// ErrInvalidSymbol if s is not a Pauli letter.
// Complexity: O(n).
func Single(n, q int, s Symbol) (Operator, error) {
	if n < 1 {
		return nil, ErrEmptyOperator
	}
	if q < 0 || q >= n {
		return nil, ErrQubitIndex
	}
	if !s.Valid() {
		return nil, ErrInvalidSymbol
	}
	op := make(Operator, n)
	op[q] = s

	return op, nil
}

// FromSupport returns the n-qubit operator that applies the same letter s on
// every listed qubit. Stabilizer generators such as Z0Z1 are built this way.
// Returns ErrQubitIndex for an out-of-range qubit, ErrDuplicateQubit if a
// qubit is listed twice, ErrInvalidSymbol for a non-Pauli letter.
// Complexity: O(n + len(qubits)).
func FromSupport(n int, s Symbol, qubits ...int) (Operator, error) {
	if n < 1 {
		return nil, ErrEmptyOperator
	}
	if !s.Valid() {
		return nil, ErrInvalidSymbol
	}
	op := make(Operator, n)
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, ErrQubitIndex
		}
		if op[q] != I {
			return nil, ErrDuplicateQubit
		}
		op[q] = s
	}

	return op, nil
}

// Parse builds an Operator from its dense spelling, e.g. "XZZXI".
// Returns ErrEmptyOperator for an empty string, ErrInvalidSymbol for any
// letter outside {I, X, Y, Z}.
// Complexity: O(n).
func Parse(s string) (Operator, error) {
	if len(s) == 0 {
		return nil, ErrEmptyOperator
	}
	op := make(Operator, len(s))
	for i := 0; i < len(s); i++ {
		sym, err := ParseSymbol(s[i])
		if err != nil {
			return nil, err
		}
		op[i] = sym
	}

	return op, nil
}

// Len returns the number of qubits the operator acts on.
// Complexity: O(1).
func (p Operator) Len() int { return len(p) }

// At returns the letter acting on qubit q, or I when q is out of range.
// Complexity: O(1).
func (p Operator) At(q int) Symbol {
	if q < 0 || q >= len(p) {
		return I
	}

	return p[q]
}

// Clone returns a deep copy of p.
// Complexity: O(n).
func (p Operator) Clone() Operator {
	out := make(Operator, len(p))
	copy(out, p)

	return out
}

// String returns the dense spelling of p, e.g. "XZZXI".
func (p Operator) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, s := range p {
		sb.WriteString(s.String())
	}

	return sb.String()
}

// IsIdentity reports whether every qubit carries I.
// Complexity: O(n).
func (p Operator) IsIdentity() bool {
	for _, s := range p {
		if s != I {
			return false
		}
	}

	return true
}

// Weight counts the qubits on which p acts non-trivially.
// Complexity: O(n).
func (p Operator) Weight() int {
	w := 0
	for _, s := range p {
		if s != I {
			w++
		}
	}

	return w
}

// Support returns the qubit indices on which p acts non-trivially,
// in ascending order.
// Complexity: O(n).
func (p Operator) Support() []int {
	sup := make([]int, 0, p.Weight())
	for q, s := range p {
		if s != I {
			sup = append(sup, q)
		}
	}

	return sup
}

// Mul composes two operators qubit-wise with the global phase discarded:
// every letter squares to I and the product of two distinct non-identity
// letters is the third. Composition order is irrelevant up to phase, so
// Mul is commutative here.
// Returns ErrLengthMismatch if the operators span different qubit counts.
// Complexity: O(n).
func (p Operator) Mul(o Operator) (Operator, error) {
	if len(p) != len(o) {
		return nil, ErrLengthMismatch
	}
	out := make(Operator, len(p))
	for q := range p {
		out[q] = mulTable[p[q]][o[q]]
	}

	return out, nil
}

// CommutesWith reports whether p and o commute. Two Pauli operators commute
// exactly when the number of qubits carrying distinct non-identity letters
// is even (the symplectic criterion).
// Returns ErrLengthMismatch if the operators span different qubit counts.
// Complexity: O(n).
func (p Operator) CommutesWith(o Operator) (bool, error) {
	if len(p) != len(o) {
		return false, ErrLengthMismatch
	}
	anti := 0
	for q := range p {
		a, b := p[q], o[q]
		if a != I && b != I && a != b {
			anti++
		}
	}

	return anti%2 == 0, nil
}

// Equal reports whether p and o are the same operator (same length and
// letters; phases are already discarded).
// Complexity: O(n).
func (p Operator) Equal(o Operator) bool {
	if len(p) != len(o) {
		return false
	}
	for q := range p {
		if p[q] != o[q] {
			return false
		}
	}

	return true
}

// Less imposes the canonical ordering used for deterministic tie-breaks:
// lower weight first, then the operator acting on the earliest qubit, then
// X before Y before Z at the first differing qubit. Operators of different
// lengths never reach a Less comparison in this module; length is compared
// last for completeness.
// Complexity: O(n).
func (p Operator) Less(o Operator) bool {
	pw, ow := p.Weight(), o.Weight()
	if pw != ow {
		return pw < ow
	}
	limit := len(p)
	if len(o) < limit {
		limit = len(o)
	}
	for q := 0; q < limit; q++ {
		a, b := p[q], o[q]
		if a == b {
			continue
		}
		// Acting on an earlier qubit wins; on a shared qubit X < Y < Z.
		if b == I {
			return true
		}
		if a == I {
			return false
		}

		return a < b
	}

	return len(p) < len(o)
}
