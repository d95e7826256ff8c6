package code

import (
	"fmt"

	"github.com/katalvlaran/qec/pauli"
)

// Validate checks every structural invariant a Code must satisfy before
// simulation: check spans and kinds, stabilizer commutativity, gauge fold
// consistency, logical pairing, and GF(2) rank bookkeeping. Constructors in
// this package return pre-validated codes; call Validate on hand-built ones.
// All failures wrap ErrInvalidCodeSpec.
// Complexity: O(m²·n) for m checks on n qubits, dominated by the pairwise
// commutation sweep.
func (c *Code) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil code", ErrInvalidCodeSpec)
	}
	if c.N < 1 || c.K < 1 || c.D < 1 {
		return fmt.Errorf("%w: dimensions [[%d,%d,%d]] must be positive", ErrInvalidCodeSpec, c.N, c.K, c.D)
	}
	if len(c.Checks) == 0 {
		return fmt.Errorf("%w: no checks declared", ErrInvalidCodeSpec)
	}
	if err := c.validateChecks(); err != nil {
		return err
	}
	if err := c.validateStabilizers(); err != nil {
		return err
	}
	if err := c.validateLogicals(); err != nil {
		return err
	}
	if err := c.validateRanks(); err != nil {
		return err
	}
	if c.Readout > BasisX {
		return fmt.Errorf("%w: unknown readout basis %d", ErrInvalidCodeSpec, c.Readout)
	}
	if c.Decoder != HintTable && c.Decoder != HintMatching {
		return fmt.Errorf("%w: unknown decoder hint %q", ErrInvalidCodeSpec, c.Decoder)
	}
	if c.Layout != nil && c.Layout.Size < 2 {
		return fmt.Errorf("%w: lattice size %d below minimum 2", ErrInvalidCodeSpec, c.Layout.Size)
	}

	return nil
}

// validateChecks verifies span, non-triviality, and kind purity of every
// measured check.
func (c *Code) validateChecks() error {
	for i, chk := range c.Checks {
		if chk.Op.Len() != c.N {
			return fmt.Errorf("%w: check %d (%s) spans %d qubits, want %d", ErrInvalidCodeSpec, i, chk.Name, chk.Op.Len(), c.N)
		}
		if chk.Op.Weight() == 0 {
			return fmt.Errorf("%w: check %d (%s) is the identity", ErrInvalidCodeSpec, i, chk.Name)
		}
		for q := 0; q < c.N; q++ {
			s := chk.Op.At(q)
			if s == pauli.I {
				continue
			}
			if (chk.Kind == CheckZ && s != pauli.Z) || (chk.Kind == CheckX && s != pauli.X) {
				return fmt.Errorf("%w: check %d (%s) carries %s outside its %s kind", ErrInvalidCodeSpec, i, chk.Name, s, chk.Kind)
			}
		}
	}

	return nil
}

// validateStabilizers verifies the abelian generator set: spans, pairwise
// commutation, the check/stabilizer mirror when no fold is declared, and
// gauge-product consistency when one is.
func (c *Code) validateStabilizers() error {
	if len(c.Stabilizers) == 0 {
		return fmt.Errorf("%w: no stabilizer generators declared", ErrInvalidCodeSpec)
	}
	for i, st := range c.Stabilizers {
		if st.Len() != c.N {
			return fmt.Errorf("%w: stabilizer %d spans %d qubits, want %d", ErrInvalidCodeSpec, i, st.Len(), c.N)
		}
		if st.Weight() == 0 {
			return fmt.Errorf("%w: stabilizer %d is the identity", ErrInvalidCodeSpec, i)
		}
	}
	for i := 0; i < len(c.Stabilizers); i++ {
		for j := i + 1; j < len(c.Stabilizers); j++ {
			ok, err := c.Stabilizers[i].CommutesWith(c.Stabilizers[j])
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
			}
			if !ok {
				return fmt.Errorf("%w: stabilizers %d and %d anticommute", ErrInvalidCodeSpec, i, j)
			}
		}
	}
	// Every stabilizer must commute with every measured check; for subsystem
	// codes this is the statement that stabilizers sit in the gauge centre.
	for i, st := range c.Stabilizers {
		for j, chk := range c.Checks {
			ok, err := st.CommutesWith(chk.Op)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
			}
			if !ok {
				return fmt.Errorf("%w: stabilizer %d anticommutes with check %d (%s)", ErrInvalidCodeSpec, i, j, chk.Name)
			}
		}
	}
	if c.StabilizerFold == nil {
		if len(c.Stabilizers) != len(c.Checks) {
			return fmt.Errorf("%w: %d stabilizers must mirror %d checks when no fold is declared", ErrInvalidCodeSpec, len(c.Stabilizers), len(c.Checks))
		}
		for i := range c.Stabilizers {
			if !c.Stabilizers[i].Equal(c.Checks[i].Op) {
				return fmt.Errorf("%w: stabilizer %d differs from check %d (%s)", ErrInvalidCodeSpec, i, i, c.Checks[i].Name)
			}
		}

		return nil
	}
	if len(c.StabilizerFold) != len(c.Stabilizers) {
		return fmt.Errorf("%w: fold lists %d groups for %d stabilizers", ErrInvalidCodeSpec, len(c.StabilizerFold), len(c.Stabilizers))
	}
	for i, group := range c.StabilizerFold {
		prod, err := pauli.Identity(c.N)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
		}
		for _, idx := range group {
			if idx < 0 || idx >= len(c.Checks) {
				return fmt.Errorf("%w: fold group %d references check %d of %d", ErrInvalidCodeSpec, i, idx, len(c.Checks))
			}
			if prod, err = prod.Mul(c.Checks[idx].Op); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
			}
		}
		if !prod.Equal(c.Stabilizers[i]) {
			return fmt.Errorf("%w: fold group %d does not multiply to stabilizer %d", ErrInvalidCodeSpec, i, i)
		}
	}

	return nil
}

// validateLogicals verifies spans, distance floors, commutation with every
// check, and the symplectic pairing between logical X and Z representatives.
func (c *Code) validateLogicals() error {
	if len(c.LogicalX) != c.K || len(c.LogicalZ) != c.K {
		return fmt.Errorf("%w: want %d logical pairs, have %d X and %d Z", ErrInvalidCodeSpec, c.K, len(c.LogicalX), len(c.LogicalZ))
	}
	sides := []struct {
		basis string
		ops   []pauli.Operator
	}{{"X", c.LogicalX}, {"Z", c.LogicalZ}}
	for _, s := range sides {
		basis := s.basis
		for i, op := range s.ops {
			if op.Len() != c.N {
				return fmt.Errorf("%w: logical %s_%d spans %d qubits, want %d", ErrInvalidCodeSpec, basis, i, op.Len(), c.N)
			}
			if w := op.Weight(); w < c.D {
				return fmt.Errorf("%w: logical %s_%d has weight %d below distance %d", ErrInvalidCodeSpec, basis, i, w, c.D)
			}
			for j, chk := range c.Checks {
				ok, err := op.CommutesWith(chk.Op)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
				}
				if !ok {
					return fmt.Errorf("%w: logical %s_%d anticommutes with check %d (%s)", ErrInvalidCodeSpec, basis, i, j, chk.Name)
				}
			}
		}
	}
	for i := range c.LogicalX {
		for j := range c.LogicalZ {
			ok, err := c.LogicalX[i].CommutesWith(c.LogicalZ[j])
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
			}
			if (i == j) == ok {
				return fmt.Errorf("%w: logical X_%d and Z_%d break the symplectic pairing", ErrInvalidCodeSpec, i, j)
			}
		}
	}
	for _, side := range [][]pauli.Operator{c.LogicalX, c.LogicalZ} {
		for i := 0; i < len(side); i++ {
			for j := i + 1; j < len(side); j++ {
				ok, err := side[i].CommutesWith(side[j])
				if err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidCodeSpec, err)
				}
				if !ok {
					return fmt.Errorf("%w: same-basis logicals %d and %d anticommute", ErrInvalidCodeSpec, i, j)
				}
			}
		}
	}

	return nil
}

// validateRanks ties qubit counts together over GF(2): the stabilizer rank
// fixes the gauge qubit count g = n-k-rank(S), which must be zero for plain
// stabilizer codes, and the measured checks must then span rank n-k+g.
func (c *Code) validateRanks() error {
	rs := symplecticRank(c.Stabilizers, c.N)
	gauge := c.N - c.K - rs
	if gauge < 0 {
		return fmt.Errorf("%w: stabilizer rank %d exceeds n-k=%d", ErrInvalidCodeSpec, rs, c.N-c.K)
	}
	if c.StabilizerFold == nil && gauge != 0 {
		return fmt.Errorf("%w: stabilizer rank %d must equal n-k=%d", ErrInvalidCodeSpec, rs, c.N-c.K)
	}
	if c.StabilizerFold != nil {
		rc := symplecticRank(checkOps(c.Checks), c.N)
		if rc != c.N-c.K+gauge {
			return fmt.Errorf("%w: gauge checks have rank %d, want %d", ErrInvalidCodeSpec, rc, c.N-c.K+gauge)
		}
	}

	return nil
}

// symplecticRank packs the operators into GF(2) row vectors (X half
// followed by Z half, Y setting both) and returns the rank of the matrix.
// Complexity: O(m²·n/64) for m operators on n qubits.
func symplecticRank(ops []pauli.Operator, n int) int {
	words := (n + 63) / 64
	rows := make([][]uint64, len(ops))
	for i, op := range ops {
		row := make([]uint64, 2*words)
		for q := 0; q < n; q++ {
			switch op.At(q) {
			case pauli.X:
				row[q/64] |= 1 << uint(q%64)
			case pauli.Z:
				row[words+q/64] |= 1 << uint(q%64)
			case pauli.Y:
				row[q/64] |= 1 << uint(q%64)
				row[words+q/64] |= 1 << uint(q%64)
			case pauli.I:
			}
		}
		rows[i] = row
	}

	return gf2Rank(rows, 2*words*64)
}

// gf2Rank performs Gaussian elimination over GF(2) on word-packed rows and
// returns the rank. The input rows are clobbered.
func gf2Rank(rows [][]uint64, width int) int {
	rank := 0
	for col := 0; col < width && rank < len(rows); col++ {
		word, bit := col/64, uint(col%64)
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if rows[r][word]>>bit&1 == 1 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := 0; r < len(rows); r++ {
			if r != rank && rows[r][word]>>bit&1 == 1 {
				for w := range rows[r] {
					rows[r][w] ^= rows[rank][w]
				}
			}
		}
		rank++
	}

	return rank
}
