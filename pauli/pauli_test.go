package pauli_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/qec/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_RoundTrip verifies that a dense spelling parses into the
// expected letters and prints back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	op, err := pauli.Parse("XZZXI")
	require.NoError(t, err, "XZZXI is a valid spelling")
	assert.Equal(t, 5, op.Len(), "five letters span five qubits")
	assert.Equal(t, pauli.X, op.At(0), "qubit 0 carries X")
	assert.Equal(t, pauli.Z, op.At(1), "qubit 1 carries Z")
	assert.Equal(t, pauli.I, op.At(4), "qubit 4 carries I")
	assert.Equal(t, "XZZXI", op.String(), "String must invert Parse")
}

// TestParse_Invalid verifies the sentinel errors for malformed spellings.
func TestParse_Invalid(t *testing.T) {
	_, err := pauli.Parse("")
	assert.ErrorIs(t, err, pauli.ErrEmptyOperator, "empty spelling must error")

	_, err = pauli.Parse("XQZ")
	assert.ErrorIs(t, err, pauli.ErrInvalidSymbol, "Q is not a Pauli letter")
}

// TestSingle_Bounds verifies qubit-index validation on Single.
func TestSingle_Bounds(t *testing.T) {
	_, err := pauli.Single(3, 3, pauli.X)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex, "q == n is out of range")

	_, err = pauli.Single(3, -1, pauli.X)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex, "negative q is out of range")

	op, err := pauli.Single(3, 1, pauli.Y)
	require.NoError(t, err)
	assert.Equal(t, "IYI", op.String(), "Y acts on the middle qubit only")
}

// TestFromSupport_Duplicates verifies that a repeated qubit is rejected
// rather than silently cancelled.
func TestFromSupport_Duplicates(t *testing.T) {
	_, err := pauli.FromSupport(4, pauli.Z, 1, 1)
	assert.ErrorIs(t, err, pauli.ErrDuplicateQubit, "duplicate support entry must error")

	op, err := pauli.FromSupport(4, pauli.Z, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "ZIZI", op.String(), "support {0,2} with letter Z")
}

// TestMul_PhaseFreeTable checks the single-qubit products through full
// operators: any letter squares to I and distinct letters multiply to
// the third.
func TestMul_PhaseFreeTable(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"X", "X", "I"},
		{"Y", "Y", "I"},
		{"Z", "Z", "I"},
		{"X", "Y", "Z"},
		{"Y", "X", "Z"},
		{"X", "Z", "Y"},
		{"Z", "X", "Y"},
		{"Y", "Z", "X"},
		{"Z", "Y", "X"},
		{"I", "Z", "Z"},
		{"X", "I", "X"},
	}
	for _, tc := range cases {
		a, err := pauli.Parse(tc.a)
		require.NoError(t, err)
		b, err := pauli.Parse(tc.b)
		require.NoError(t, err)

		got, err := a.Mul(b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s * %s", tc.a, tc.b)
	}
}

// TestMul_LengthMismatch verifies that composing operators of different
// spans fails with ErrLengthMismatch.
func TestMul_LengthMismatch(t *testing.T) {
	a, _ := pauli.Parse("XX")
	b, _ := pauli.Parse("XXX")

	_, err := a.Mul(b)
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch, "2-qubit times 3-qubit must error")

	_, err = a.CommutesWith(b)
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch, "commutation across spans must error")
}

// TestMul_SelfInverse verifies that composing any operator with itself
// yields the identity, the property Correct relies on.
func TestMul_SelfInverse(t *testing.T) {
	op, err := pauli.Parse("XYZIZYX")
	require.NoError(t, err)

	sq, err := op.Mul(op)
	require.NoError(t, err)
	assert.True(t, sq.IsIdentity(), "every Pauli operator is its own inverse up to phase")
}

// TestCommutesWith_Symplectic walks the parity criterion: operators
// anticommute exactly when an odd number of qubits carry distinct
// non-identity letters.
func TestCommutesWith_Symplectic(t *testing.T) {
	cases := []struct {
		a, b     string
		commutes bool
	}{
		{"XI", "IZ", true},  // disjoint supports always commute
		{"XI", "ZI", false}, // one clashing qubit
		{"XX", "ZZ", true},  // two clashing qubits cancel
		{"XXX", "ZZZ", false},
		{"XZZXI", "IXZZX", true}, // neighbouring five-qubit generators
		{"YY", "XZ", true},       // Y clashes with both X and Z
		{"YI", "XI", false},
		{"XX", "XX", true}, // identical letters never clash
	}
	for _, tc := range cases {
		a, err := pauli.Parse(tc.a)
		require.NoError(t, err)
		b, err := pauli.Parse(tc.b)
		require.NoError(t, err)

		got, err := a.CommutesWith(b)
		require.NoError(t, err)
		assert.Equal(t, tc.commutes, got, "[%s, %s]", tc.a, tc.b)
	}
}

// TestWeightAndSupport verifies weight counting and ascending support.
func TestWeightAndSupport(t *testing.T) {
	op, err := pauli.Parse("IXIYZ")
	require.NoError(t, err)
	assert.Equal(t, 3, op.Weight(), "three non-identity letters")
	assert.Equal(t, []int{1, 3, 4}, op.Support(), "support lists acting qubits ascending")

	id, err := pauli.Identity(4)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())
	assert.Equal(t, 0, id.Weight())
	assert.Empty(t, id.Support())
}

// TestLess_CanonicalOrder pins the tie-break ordering: weight first, then
// earliest acting qubit, then X < Y < Z on the first differing qubit.
func TestLess_CanonicalOrder(t *testing.T) {
	spellings := []string{"IIX", "IXI", "ZII", "YII", "XII", "XXI", "III"}
	ops := make([]pauli.Operator, 0, len(spellings))
	for _, s := range spellings {
		op, err := pauli.Parse(s)
		require.NoError(t, err)
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].Less(ops[j]) })

	got := make([]string, 0, len(ops))
	for _, op := range ops {
		got = append(got, op.String())
	}
	want := []string{"III", "XII", "YII", "ZII", "IXI", "IIX", "XXI"}
	assert.Equal(t, want, got, "identity, then weight-1 by qubit and letter, then weight-2")
}

// TestClone_Isolation verifies that mutating a clone leaves the source intact.
func TestClone_Isolation(t *testing.T) {
	src, err := pauli.Parse("XYZ")
	require.NoError(t, err)

	dst := src.Clone()
	dst[0] = pauli.I
	assert.Equal(t, "XYZ", src.String(), "source must be unaffected by clone mutation")
	assert.Equal(t, "IYZ", dst.String())
}
