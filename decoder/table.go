// Package decoder implements the two decoding strategies of the qec module:
// exhaustive syndrome-table lookup for the small block codes and
// minimum-weight perfect matching for the topological families. Both are
// built once per code, are immutable afterwards, and share the same
// Decode contract.
package decoder

import (
	"fmt"

	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// tableEntry is one syndrome row kept in canonical build order, so that
// the fallback scan is deterministic without re-sorting.
type tableEntry struct {
	syndrome Syndrome
	corr     pauli.Operator
}

// Table is the lookup decoder. Construction enumerates every error pattern
// up to the code's correction radius t = ⌊(d-1)/2⌋ in canonical order
// (weight ascending, then qubit indices ascending, then X before Y before
// Z) and records the first pattern producing each syndrome - which is by
// construction the lowest-weight, canonically-smallest correction.
type Table struct {
	c       *code.Code
	bits    int
	rows    map[string]pauli.Operator
	entries []tableEntry
}

// NewTable builds the decoding table for c. The enumeration runs over the
// folded stabilizer syndrome, so subsystem codes decode against their
// stabilizer group rather than the raw gauge outcomes.
// Complexity: O(Σ_{w≤t} C(n,w)·3^w · m·n) for m stabilizers; the catalogue
// codes all have t = 1, costing 3·n syndrome evaluations.
func NewTable(c *code.Code) (*Table, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	t := &Table{
		c:    c,
		bits: len(c.DecodeOps()),
		rows: make(map[string]pauli.Operator),
	}
	radius := (c.D - 1) / 2
	if radius < 1 {
		radius = 1
	}
	id, err := pauli.Identity(c.N)
	if err != nil {
		return nil, err
	}
	if err = t.record(id); err != nil {
		return nil, err
	}
	for w := 1; w <= radius; w++ {
		if err = t.enumerate(make(pauli.Operator, c.N), 0, w); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// enumerate walks every operator with exactly `left` more non-identity
// letters placed on qubits ≥ from, in canonical order, recording each.
func (t *Table) enumerate(buf pauli.Operator, from, left int) error {
	if left == 0 {
		return t.record(buf.Clone())
	}
	for q := from; q <= len(buf)-left; q++ {
		for _, s := range []pauli.Symbol{pauli.X, pauli.Y, pauli.Z} {
			buf[q] = s
			if err := t.enumerate(buf, q+1, left-1); err != nil {
				return err
			}
		}
		buf[q] = pauli.I
	}

	return nil
}

// record computes the stabilizer syndrome of err and stores the first
// pattern seen per syndrome.
func (t *Table) record(errOp pauli.Operator) error {
	syn := make(Syndrome, t.bits)
	for i, st := range t.c.DecodeOps() {
		ok, cerr := st.CommutesWith(errOp)
		if cerr != nil {
			return cerr
		}
		if !ok {
			syn[i] = 1
		}
	}
	key := syn.Key()
	if _, seen := t.rows[key]; seen {
		return nil
	}
	t.rows[key] = errOp
	t.entries = append(t.entries, tableEntry{syndrome: syn, corr: errOp})

	return nil
}

// Code returns the code the table was built for.
func (t *Table) Code() *code.Code { return t.c }

// Len returns the number of distinct syndromes the table covers.
func (t *Table) Len() int { return len(t.entries) }

// Decode looks the syndrome up in O(1). A syndrome outside the table can
// only come from an error beyond the correction radius; the decoder then
// falls back to the covered syndrome at minimum Hamming distance - the
// build order makes the tie-break the canonical one - and returns that
// row's correction. The fallback is degraded-but-defined behaviour: it may
// leave a logical error, which the verifier counts as a modelled failure.
// Returns ErrSyndromeLength if s has the wrong number of bits.
func (t *Table) Decode(s Syndrome) (pauli.Operator, error) {
	if len(s) != t.bits {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrSyndromeLength, len(s), t.bits)
	}
	if corr, ok := t.rows[s.Key()]; ok {
		return corr.Clone(), nil
	}
	best, bestDist := 0, t.bits+1
	for i, e := range t.entries {
		d := hamming(s, e.syndrome)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return t.entries[best].corr.Clone(), nil
}

// hamming counts differing bits between two equal-length syndromes.
func hamming(a, b Syndrome) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
