package decoder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
)

// maxExactMatching caps the excitation count handled by the exact
// bitmask matching. Beyond it the decoder degrades to nearest-neighbour
// greedy pairing, which stays deterministic but may miss the optimum.
const maxExactMatching = 16

// unreachable marks vertex pairs with no connecting path.
const unreachable = math.MaxInt32

// Matching is the graph decoder for the topological codes. It treats each
// triggered check as an excitation on the check graph - checks are
// adjacent when a single data-qubit error fires both - and pairs the
// excitations by minimum-weight perfect matching. Edge weight is the hop
// distance between checks, which equals the weight of the smallest error
// chain connecting them; on planar codes an excitation may instead pair
// with the virtual boundary at the cost of reaching it. Every matched
// pair contributes the error chain along one shortest path, and the union
// of the chains is the correction.
//
// Two independent sides run per shot: Z-type checks detect X errors and
// X-type checks detect Z errors. The graph template below is built once
// per code and shared read-only; Decode allocates only per-shot state.
type Matching struct {
	c     *code.Code
	sides []*matchSide
}

// matchSide is the per-check-type half of the template.
type matchSide struct {
	// letter is the correction letter applied on data qubits, the
	// anticommuting partner of the check type.
	letter pauli.Symbol
	// local maps side-local vertex ids to raw check indices.
	local []int
	// adj lists neighbour vertex ids in ascending order.
	adj [][]int
	// edgeQ holds the connecting data qubit per adjacent pair (i<j); the
	// smallest shared qubit is the deterministic representative.
	edgeQ map[[2]int]int
	// dist and prev are all-pairs hop distances with path predecessors.
	dist [][]int
	prev [][]int
	// boundaryQ, bdist and bprev describe the virtual boundary on planar
	// layouts: the check's own boundary qubit (-1 if none), the hop cost
	// of reaching the nearest boundary, and the next vertex toward it.
	boundaryQ []int
	bdist     []int
	bprev     []int
	periodic  bool
}

// NewMatching builds the matching template for c.
// Returns ErrNilCode for a nil code and ErrNotMatchable when the checks do
// not split into pure X and Z types.
// Complexity: O(m²) BFS sweeps over m same-type checks, done once.
func NewMatching(c *code.Code) (*Matching, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if len(c.ChecksOfKind(code.CheckMixed)) > 0 {
		return nil, fmt.Errorf("%w: %s carries mixed checks", ErrNotMatchable, c.Name)
	}
	periodic := c.Layout != nil && c.Layout.Periodic
	m := &Matching{c: c}
	// Z checks fire on X errors, X checks on Z errors.
	for _, half := range []struct {
		kind   code.CheckKind
		letter pauli.Symbol
	}{{code.CheckZ, pauli.X}, {code.CheckX, pauli.Z}} {
		side, err := newMatchSide(c, half.kind, half.letter, periodic)
		if err != nil {
			return nil, err
		}
		m.sides = append(m.sides, side)
	}

	return m, nil
}

// newMatchSide derives one check type's graph: adjacency through shared
// data qubits, all-pairs BFS distances, and the boundary frontier.
func newMatchSide(c *code.Code, kind code.CheckKind, letter pauli.Symbol, periodic bool) (*matchSide, error) {
	s := &matchSide{
		letter:   letter,
		local:    c.ChecksOfKind(kind),
		edgeQ:    make(map[[2]int]int),
		periodic: periodic,
	}
	k := len(s.local)
	// Coverage count per data qubit decides adjacency and boundaries.
	byQubit := make(map[int][]int)
	for v, raw := range s.local {
		for _, q := range c.Checks[raw].Op.Support() {
			byQubit[q] = append(byQubit[q], v)
		}
	}
	s.adj = make([][]int, k)
	linked := make(map[[2]int]bool)
	for q := 0; q < c.N; q++ {
		owners := byQubit[q]
		switch {
		case len(owners) == 2:
			i, j := owners[0], owners[1]
			if i > j {
				i, j = j, i
			}
			pair := [2]int{i, j}
			if _, seen := s.edgeQ[pair]; !seen {
				s.edgeQ[pair] = q
			}
			if !linked[pair] {
				linked[pair] = true
				s.adj[i] = append(s.adj[i], j)
				s.adj[j] = append(s.adj[j], i)
			}
		case len(owners) > 2:
			return nil, fmt.Errorf("%w: qubit %d sits in %d same-type checks", ErrNotMatchable, q, len(owners))
		}
	}
	for v := range s.adj {
		sortInts(s.adj[v])
	}
	// All-pairs BFS with deterministic neighbour order.
	s.dist = make([][]int, k)
	s.prev = make([][]int, k)
	for v := 0; v < k; v++ {
		s.dist[v], s.prev[v] = bfsFrom(s.adj, v)
	}
	// Boundary frontier: a qubit covered by exactly one same-type check is
	// one error away from the open boundary.
	s.boundaryQ = make([]int, k)
	for v := range s.boundaryQ {
		s.boundaryQ[v] = -1
	}
	if !periodic {
		for q := 0; q < c.N; q++ {
			if owners := byQubit[q]; len(owners) == 1 {
				v := owners[0]
				if s.boundaryQ[v] < 0 || q < s.boundaryQ[v] {
					s.boundaryQ[v] = q
				}
			}
		}
	}
	s.bdist, s.bprev = boundaryBFS(s.adj, s.boundaryQ)

	return s, nil
}

// bfsFrom runs one deterministic BFS and returns hop distances plus
// predecessors; unreachable vertices keep distance `unreachable`.
func bfsFrom(adj [][]int, src int) (dist, prev []int) {
	dist = make([]int, len(adj))
	prev = make([]int, len(adj))
	for v := range dist {
		dist[v], prev[v] = unreachable, -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if dist[w] == unreachable {
				dist[w] = dist[v] + 1
				prev[w] = v
				queue = append(queue, w)
			}
		}
	}

	return dist, prev
}

// boundaryBFS runs a multi-source BFS from every boundary-adjacent check,
// seeded at cost 1 (the boundary qubit itself). bprev points one hop
// toward the boundary; -1 marks a seed vertex.
func boundaryBFS(adj [][]int, boundaryQ []int) (bdist, bprev []int) {
	bdist = make([]int, len(adj))
	bprev = make([]int, len(adj))
	var queue []int
	for v := range adj {
		bprev[v] = -1
		if boundaryQ[v] >= 0 {
			bdist[v] = 1
			queue = append(queue, v)
		} else {
			bdist[v] = unreachable
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if bdist[w] == unreachable {
				bdist[w] = bdist[v] + 1
				bprev[w] = v
				queue = append(queue, w)
			}
		}
	}

	return bdist, bprev
}

// Code returns the code the template was built for.
func (m *Matching) Code() *code.Code { return m.c }

// Decode pairs the triggered checks of each type by minimum-weight
// matching and returns the union of the implied error chains. Equal-weight
// matchings are resolved by preferring the lexicographically first
// pairing, so decoding is reproducible.
// Returns ErrSyndromeLength for a wrong-sized syndrome and
// ErrInvalidSyndromeParity for an odd excitation count on a periodic
// lattice.
func (m *Matching) Decode(s Syndrome) (pauli.Operator, error) {
	if len(s) != len(m.c.Checks) {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrSyndromeLength, len(s), len(m.c.Checks))
	}
	corr, err := pauli.Identity(m.c.N)
	if err != nil {
		return nil, err
	}
	for _, side := range m.sides {
		part, serr := side.decode(s, m.c.N)
		if serr != nil {
			return nil, serr
		}
		if corr, err = corr.Mul(part); err != nil {
			return nil, err
		}
	}

	return corr, nil
}

// decode handles one check type: collect excitations, match, trace chains.
func (s *matchSide) decode(syn Syndrome, n int) (pauli.Operator, error) {
	var exc []int
	for v, raw := range s.local {
		if syn[raw] != 0 {
			exc = append(exc, v)
		}
	}
	if s.periodic && len(exc)%2 != 0 {
		return nil, fmt.Errorf("%w: %d %s-detecting excitations", ErrInvalidSyndromeParity, len(exc), s.letter)
	}
	var pairs [][2]int // (i, j) vertex pairs; j == -1 pairs i with the boundary
	if len(exc) <= maxExactMatching {
		pairs = s.matchExact(exc)
	} else {
		pairs = s.matchGreedy(exc)
	}
	flips := make([]bool, n)
	for _, p := range pairs {
		if p[1] < 0 {
			s.traceBoundary(p[0], flips)
		} else {
			s.tracePath(p[0], p[1], flips)
		}
	}
	op := make(pauli.Operator, n)
	for q, f := range flips {
		if f {
			op[q] = s.letter
		}
	}

	return op, nil
}

// pairCost returns the matching cost of pairing vertices a and b, or of
// sending a to the boundary when b < 0.
func (s *matchSide) pairCost(a, b int) int {
	if b < 0 {
		return s.bdist[a]
	}

	return s.dist[a][b]
}

// matchExact computes a true minimum-weight matching by dynamic
// programming over excitation subsets. The lowest-indexed unmatched
// excitation is paired first, with the boundary tried before the other
// excitations in ascending order; strict improvement keeps the earliest
// option, making ties lexicographic.
// Complexity: O(2^k · k) for k excitations.
func (s *matchSide) matchExact(exc []int) [][2]int {
	k := len(exc)
	if k == 0 {
		return nil
	}
	full := 1<<uint(k) - 1
	cost := make([]int, full+1)
	choice := make([]int, full+1) // partner position, or k for the boundary
	for mask := 1; mask <= full; mask++ {
		cost[mask] = unreachable
		first := 0
		for mask>>uint(first)&1 == 0 {
			first++
		}
		rest := mask &^ (1 << uint(first))
		if !s.periodic {
			if c := s.pairCost(exc[first], -1); c < unreachable && cost[rest] < unreachable && c+cost[rest] < cost[mask] {
				cost[mask] = c + cost[rest]
				choice[mask] = k
			}
		}
		for second := first + 1; second < k; second++ {
			if mask>>uint(second)&1 == 0 {
				continue
			}
			sub := rest &^ (1 << uint(second))
			c := s.pairCost(exc[first], exc[second])
			if c < unreachable && cost[sub] < unreachable && c+cost[sub] < cost[mask] {
				cost[mask] = c + cost[sub]
				choice[mask] = second
			}
		}
	}
	var pairs [][2]int
	for mask := full; mask != 0; {
		first := 0
		for mask>>uint(first)&1 == 0 {
			first++
		}
		if ch := choice[mask]; ch == k {
			pairs = append(pairs, [2]int{exc[first], -1})
			mask &^= 1 << uint(first)
		} else {
			pairs = append(pairs, [2]int{exc[first], exc[ch]})
			mask &^= 1<<uint(first) | 1<<uint(ch)
		}
	}

	return pairs
}

// matchGreedy pairs each remaining excitation with its cheapest partner,
// boundary included on planar layouts. It is the fallback for excitation
// sets too large for the exact search and mirrors the classic greedy
// shortcut used before a full blossom matching.
// Complexity: O(k²).
func (s *matchSide) matchGreedy(exc []int) [][2]int {
	remaining := append([]int(nil), exc...)
	var pairs [][2]int
	for len(remaining) > 0 {
		u := remaining[0]
		remaining = remaining[1:]
		bestIdx, bestCost := -1, unreachable
		if !s.periodic {
			bestCost = s.pairCost(u, -1)
		}
		for i, v := range remaining {
			if c := s.pairCost(u, v); c < bestCost {
				bestCost, bestIdx = c, i
			}
		}
		if bestIdx < 0 {
			pairs = append(pairs, [2]int{u, -1})
			continue
		}
		pairs = append(pairs, [2]int{u, remaining[bestIdx]})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return pairs
}

// tracePath toggles the data qubits along the shortest a-b path.
func (s *matchSide) tracePath(a, b int, flips []bool) {
	for cur := b; cur != a; {
		p := s.prev[a][cur]
		flips[s.edgeQubit(p, cur)] = !flips[s.edgeQubit(p, cur)]
		cur = p
	}
}

// traceBoundary toggles the data qubits from v out through the boundary.
func (s *matchSide) traceBoundary(v int, flips []bool) {
	cur := v
	for s.bprev[cur] >= 0 {
		next := s.bprev[cur]
		flips[s.edgeQubit(cur, next)] = !flips[s.edgeQubit(cur, next)]
		cur = next
	}
	flips[s.boundaryQ[cur]] = !flips[s.boundaryQ[cur]]
}

// edgeQubit returns the connecting qubit of an adjacent vertex pair.
func (s *matchSide) edgeQubit(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return s.edgeQ[[2]int{i, j}]
}

// sortInts is an insertion sort for the short neighbour lists used here.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
