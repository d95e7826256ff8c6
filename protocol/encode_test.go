package protocol_test

import (
	"testing"

	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
	"github.com/katalvlaran/qec/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_Validation sweeps the logical-input guards.
func TestEncode_Validation(t *testing.T) {
	c := code.BitFlip()

	_, err := protocol.Encode(nil, []int{0})
	assert.ErrorIs(t, err, protocol.ErrNilCode)

	_, err = protocol.Encode(c, nil)
	assert.ErrorIs(t, err, protocol.ErrInvalidLogicalValue, "one value per logical qubit")

	_, err = protocol.Encode(c, []int{0, 1})
	assert.ErrorIs(t, err, protocol.ErrInvalidLogicalValue, "too many values")

	_, err = protocol.Encode(c, []int{2})
	assert.ErrorIs(t, err, protocol.ErrInvalidLogicalValue, "values must be bits")
}

// TestEncode_PreparesCodeword runs the encoding sequence through the frame
// simulator and checks the resulting codewords for both logical inputs.
func TestEncode_PreparesCodeword(t *testing.T) {
	c := code.BitFlip()
	sim, err := backend.NewFrameSimulator()
	require.NoError(t, err)

	for input, want := range map[int]string{0: "000", 1: "111"} {
		seq, eerr := protocol.Encode(c, []int{input})
		require.NoError(t, eerr)
		reg, perr := sim.Prepare(c.N)
		require.NoError(t, perr)
		reg, aerr := sim.Apply(reg, seq)
		require.NoError(t, aerr)
		counts, merr := sim.Measure(reg, 1)
		require.NoError(t, merr)
		assert.Equal(t, backend.Counts{want: 1}, counts, "input %d", input)
	}
}

// TestEncode_PhaseBasis verifies the dual repetition code encodes in the
// X basis: the logical 1 preparation is ZZZ, visible only there.
func TestEncode_PhaseBasis(t *testing.T) {
	c := code.PhaseFlip()
	sim, err := backend.NewFrameSimulator()
	require.NoError(t, err)

	seq, err := protocol.Encode(c, []int{1})
	require.NoError(t, err)
	reg, err := sim.Prepare(c.N)
	require.NoError(t, err)
	reg, err = sim.Apply(reg, seq)
	require.NoError(t, err)
	assert.True(t, reg.PhaseBasis(), "phase-flip readout happens in the X basis")
	counts, err := sim.Measure(reg, 1)
	require.NoError(t, err)
	assert.Equal(t, backend.Counts{"111": 1}, counts, "ZZZ flips every X-basis bit")
}

// TestLogicalValues_Parity pins the readout rule: the logical bit is the
// parity over the logical Z support.
func TestLogicalValues_Parity(t *testing.T) {
	c := code.BitFlip()

	vals, err := protocol.LogicalValues(c, []uint8{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, vals)

	vals, err = protocol.LogicalValues(c, []uint8{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, vals)

	_, err = protocol.LogicalValues(c, []uint8{1})
	assert.ErrorIs(t, err, protocol.ErrDataLength)
}

// TestCorrectedValues_FlipsReadout verifies the correction's classical
// effect on measured bits before the parity readout.
func TestCorrectedValues_FlipsReadout(t *testing.T) {
	c := code.BitFlip()
	// A measured 010 with correction X on qubit 1 reads back as logical 0.
	corr, err := pauli.Single(3, 1, pauli.X)
	require.NoError(t, err)
	vals, err := protocol.CorrectedValues(c, []uint8{0, 1, 0}, corr)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, vals)

	// A Z correction leaves Z-basis bits alone.
	zCorr, err := pauli.Single(3, 1, pauli.Z)
	require.NoError(t, err)
	vals, err = protocol.CorrectedValues(c, []uint8{0, 1, 0}, zCorr)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, vals, "Z does not flip computational bits")
}
