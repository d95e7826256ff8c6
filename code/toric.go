package code

import (
	"fmt"

	"github.com/katalvlaran/qec/pauli"
)

// DefaultToricSize is the toric lattice size used when Params leaves it unset.
const DefaultToricSize = 3

// Toric builds the toric code on an L×L periodic lattice, L ≥ 2. Data
// qubits live on the 2L² edges: horizontal edge h(r,c) leaves vertex (r,c)
// eastwards (index L·r+c) and vertical edge v(r,c) leaves it southwards
// (index L²+L·r+c), all arithmetic mod L.
//
// Every face carries a plaquette Z check over its four surrounding edges
// and every vertex an X star over its four incident edges. The products of
// all plaquettes and of all stars are both the identity, so the 2L² checks
// have rank 2L²-2 and two logical qubits survive, matching the two
// non-contractible cycle classes of the torus.
//
// Logical representatives: logical qubit 1 uses X on the horizontal edges
// of column 0 and Z on the horizontal edges of row 0; logical qubit 2 uses
// X on the vertical edges of row 0 and Z on the vertical edges of column 0.
// Each X/Z partner pair crosses on exactly one edge. Syndrome order is all
// plaquettes row-major, then all stars row-major.
//
// Returns ErrInvalidCodeSpec if L < 2. Note L = 2 has distance 2: single
// errors are detected but their matching is ambiguous, so decoding them
// fails half the time by construction.
func Toric(l int) (*Code, error) {
	if l < 2 {
		return nil, fmt.Errorf("%w: toric lattice size must be ≥ 2, got %d", ErrInvalidCodeSpec, l)
	}
	n := 2 * l * l
	h := func(r, c int) int { return ((r+l)%l)*l + (c+l)%l }
	v := func(r, c int) int { return l*l + ((r+l)%l)*l + (c+l)%l }

	checks := make([]Check, 0, n)
	// 1. Plaquette Z checks, one per face, row-major.
	for r := 0; r < l; r++ {
		for c := 0; c < l; c++ {
			chk, err := supportCheck(n, pauli.Z, CheckZ, h(r, c), h(r+1, c), v(r, c), v(r, c+1))
			if err != nil {
				return nil, err
			}
			chk.Name = fmt.Sprintf("plaq(%d,%d)", r, c)
			checks = append(checks, chk)
		}
	}
	// 2. Vertex X stars, one per vertex, row-major.
	for r := 0; r < l; r++ {
		for c := 0; c < l; c++ {
			chk, err := supportCheck(n, pauli.X, CheckX, h(r, c), h(r, c-1), v(r, c), v(r-1, c))
			if err != nil {
				return nil, err
			}
			chk.Name = fmt.Sprintf("star(%d,%d)", r, c)
			checks = append(checks, chk)
		}
	}

	// 3. Logical loops along the two cycle classes.
	hCol0 := make([]int, l) // horizontal edges stacked in column 0
	hRow0 := make([]int, l) // horizontal edges around row 0
	vRow0 := make([]int, l) // vertical edges along row 0
	vCol0 := make([]int, l) // vertical edges stacked in column 0
	for i := 0; i < l; i++ {
		hCol0[i] = h(i, 0)
		hRow0[i] = h(0, i)
		vRow0[i] = v(0, i)
		vCol0[i] = v(i, 0)
	}

	c := &Code{
		Name:        "toric",
		Description: "toric code on an L×L periodic lattice with two logical qubits",
		N:           n,
		K:           2,
		D:           l,
		Checks:      checks,
		Stabilizers: checkOps(checks),
		LogicalX: []pauli.Operator{
			mustLogical(n, pauli.X, hCol0...),
			mustLogical(n, pauli.X, vRow0...),
		},
		LogicalZ: []pauli.Operator{
			mustLogical(n, pauli.Z, hRow0...),
			mustLogical(n, pauli.Z, vCol0...),
		},
		Readout: BasisZ,
		Decoder: HintMatching,
		Layout:  &Lattice{Periodic: true, Size: l},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
