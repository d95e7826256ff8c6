package protocol_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
	"github.com/katalvlaran/qec/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingleFault_Validation sweeps the deterministic injection guards.
func TestSingleFault_Validation(t *testing.T) {
	c := code.FiveQubit()

	_, err := protocol.SingleFault(c, protocol.Fault{Qubit: 5, Type: pauli.X})
	assert.ErrorIs(t, err, protocol.ErrInvalidQubitIndex, "q == n is out of range")

	_, err = protocol.SingleFault(c, protocol.Fault{Qubit: -1, Type: pauli.X})
	assert.ErrorIs(t, err, protocol.ErrInvalidQubitIndex)

	_, err = protocol.SingleFault(c, protocol.Fault{Qubit: 0, Type: pauli.I})
	assert.ErrorIs(t, err, protocol.ErrInvalidErrorType, "the identity is not an injectable fault")

	op, err := protocol.SingleFault(c, protocol.Fault{Qubit: 2, Type: pauli.Z})
	require.NoError(t, err)
	assert.Equal(t, "IIZII", op.String())
}

// TestSampleChannel_TargetValidation verifies target range checking.
func TestSampleChannel_TargetValidation(t *testing.T) {
	c := code.BitFlip()
	m, err := channel.NewBitFlip(1)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, err = protocol.SampleChannel(c, m, 3, rng)
	assert.ErrorIs(t, err, protocol.ErrInvalidQubitIndex)

	op, err := protocol.SampleChannel(c, m, 1, rng)
	require.NoError(t, err)
	assert.Equal(t, "IXI", op.String(), "p=1 bit flip always fires on the target")
}

// TestSampleChannel_DepolarizingRate draws many per-qubit samples and
// requires the empirical non-identity rate to converge to p.
func TestSampleChannel_DepolarizingRate(t *testing.T) {
	c := code.Shor()
	const p = 0.15
	m, err := channel.NewDepolarizing(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	flips, draws := 0, 0
	for i := 0; i < 5000; i++ {
		op, serr := protocol.SampleChannel(c, m, protocol.TargetAll, rng)
		require.NoError(t, serr)
		flips += op.Weight()
		draws += c.N
	}
	assert.InDelta(t, p, float64(flips)/float64(draws), 0.01,
		"empirical flip rate must converge to the channel probability")
}

// TestSampleChannel_SingleTarget verifies that only the targeted qubit is
// ever hit.
func TestSampleChannel_SingleTarget(t *testing.T) {
	c := code.Steane()
	m, err := channel.NewDepolarizing(0.5)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 200; i++ {
		op, serr := protocol.SampleChannel(c, m, 3, rng)
		require.NoError(t, serr)
		for q := 0; q < c.N; q++ {
			if q != 3 {
				assert.Equal(t, pauli.I, op.At(q), "qubit %d must stay untouched", q)
			}
		}
	}
}
