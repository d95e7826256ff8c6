package code

import (
	"fmt"

	"github.com/katalvlaran/qec/pauli"
)

// DefaultSurfaceDistance is the surface code distance used when Params
// leaves it unset.
const DefaultSurfaceDistance = 3

// Surface builds the rotated planar surface code of odd distance d ≥ 3.
// Data qubits sit on a d×d grid (index d·row+col). The (d-1)² faces between
// them are checkerboard-coloured: X checks on even row+col faces, Z checks
// on odd ones. Weight-2 boundary checks complete the pattern where a face
// of the opposite colour touches the edge: X pairs along the top and bottom
// rows, Z pairs along the left and right columns. The count works out to
// (d-1)² + 2(d-1) = d²-1 independent checks, so exactly one logical qubit
// survives.
//
// Logical X runs down the left column and logical Z across the top row;
// each crosses every opposite-type check an even number of times and they
// intersect only on qubit 0. Syndrome order is all Z checks (faces
// row-major, then left pairs, then right pairs) followed by all X checks
// (faces row-major, then top pairs, then bottom pairs).
//
// Returns ErrInvalidCodeSpec for an even or too-small distance.
func Surface(d int) (*Code, error) {
	if d < 3 || d%2 == 0 {
		return nil, fmt.Errorf("%w: surface distance must be odd and ≥ 3, got %d", ErrInvalidCodeSpec, d)
	}
	n := d * d
	idx := func(r, c int) int { return r*d + c }

	var zChecks, xChecks []Check
	// 1. Bulk faces. Face (r,c) covers the four qubits of its 2×2 cell.
	for r := 0; r < d-1; r++ {
		for c := 0; c < d-1; c++ {
			qs := []int{idx(r, c), idx(r, c+1), idx(r+1, c), idx(r+1, c+1)}
			if (r+c)%2 == 0 {
				chk, err := supportCheck(n, pauli.X, CheckX, qs...)
				if err != nil {
					return nil, err
				}
				chk.Name = fmt.Sprintf("X(%d,%d)", r, c)
				xChecks = append(xChecks, chk)
			} else {
				chk, err := supportCheck(n, pauli.Z, CheckZ, qs...)
				if err != nil {
					return nil, err
				}
				chk.Name = fmt.Sprintf("Z(%d,%d)", r, c)
				zChecks = append(zChecks, chk)
			}
		}
	}
	// 2. Left and right Z boundary pairs, where the adjacent face is X-coloured.
	for r := 0; r < d-1; r += 2 {
		chk, err := supportCheck(n, pauli.Z, CheckZ, idx(r, 0), idx(r+1, 0))
		if err != nil {
			return nil, err
		}
		chk.Name = fmt.Sprintf("Z(left,%d)", r)
		zChecks = append(zChecks, chk)
	}
	for r := 1; r < d-1; r += 2 {
		chk, err := supportCheck(n, pauli.Z, CheckZ, idx(r, d-1), idx(r+1, d-1))
		if err != nil {
			return nil, err
		}
		chk.Name = fmt.Sprintf("Z(right,%d)", r)
		zChecks = append(zChecks, chk)
	}
	// 3. Top and bottom X boundary pairs, where the adjacent face is Z-coloured.
	for c := 1; c < d-1; c += 2 {
		chk, err := supportCheck(n, pauli.X, CheckX, idx(0, c), idx(0, c+1))
		if err != nil {
			return nil, err
		}
		chk.Name = fmt.Sprintf("X(top,%d)", c)
		xChecks = append(xChecks, chk)
	}
	for c := 0; c < d-1; c += 2 {
		chk, err := supportCheck(n, pauli.X, CheckX, idx(d-1, c), idx(d-1, c+1))
		if err != nil {
			return nil, err
		}
		chk.Name = fmt.Sprintf("X(bot,%d)", c)
		xChecks = append(xChecks, chk)
	}
	checks := append(zChecks, xChecks...)

	// 4. Logical representatives: X down the left column, Z across the top row.
	logX := make([]int, d)
	logZ := make([]int, d)
	for i := 0; i < d; i++ {
		logX[i] = idx(i, 0)
		logZ[i] = idx(0, i)
	}

	c := &Code{
		Name:        "surface",
		Description: "rotated planar surface code of odd distance d on a d×d grid",
		N:           n,
		K:           1,
		D:           d,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX:    []pauli.Operator{mustLogical(n, pauli.X, logX...)},
		LogicalZ:    []pauli.Operator{mustLogical(n, pauli.Z, logZ...)},
		Readout:     BasisZ,
		Decoder:     HintMatching,
		Layout:      &Lattice{Periodic: false, Size: d},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
