package channel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructors_RejectBadParameters sweeps the validation edges of
// every constructor.
func TestConstructors_RejectBadParameters(t *testing.T) {
	cases := []struct {
		name  string
		build func() (channel.Model, error)
	}{
		{"depolarizing p<0", func() (channel.Model, error) { return channel.NewDepolarizing(-0.1) }},
		{"depolarizing p>1", func() (channel.Model, error) { return channel.NewDepolarizing(1.1) }},
		{"depolarizing NaN", func() (channel.Model, error) { return channel.NewDepolarizing(math.NaN()) }},
		{"bitflip p>1", func() (channel.Model, error) { return channel.NewBitFlip(2) }},
		{"phaseflip p<0", func() (channel.Model, error) { return channel.NewPhaseFlip(-1) }},
		{"bitphaseflip p>1", func() (channel.Model, error) { return channel.NewBitPhaseFlip(1.5) }},
		{"amplitude gamma>1", func() (channel.Model, error) { return channel.NewAmplitudeDamping(1.01) }},
		{"phase gamma<0", func() (channel.Model, error) { return channel.NewPhaseDamping(-0.2) }},
		{"thermal t1<=0", func() (channel.Model, error) { return channel.NewThermalRelaxation(0, 1, 0.1) }},
		{"thermal t2<=0", func() (channel.Model, error) { return channel.NewThermalRelaxation(1, 0, 0.1) }},
		{"thermal negative gate", func() (channel.Model, error) { return channel.NewThermalRelaxation(1, 1, -0.1) }},
		{"thermal t2 beyond 2t1", func() (channel.Model, error) { return channel.NewThermalRelaxation(10, 25, 0.1) }},
		{"custom sum>1", func() (channel.Model, error) { return channel.NewCustomPauli(0.5, 0.4, 0.2) }},
		{"custom negative", func() (channel.Model, error) { return channel.NewCustomPauli(-0.1, 0, 0) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			assert.ErrorIs(t, err, channel.ErrInvalidChannelParameter)
		})
	}
}

// TestProbabilities_Reductions pins the documented probability reductions.
func TestProbabilities_Reductions(t *testing.T) {
	dep, err := channel.NewDepolarizing(0.3)
	require.NoError(t, err)
	px, py, pz := dep.Probabilities()
	assert.InDelta(t, 0.1, px, 1e-12)
	assert.InDelta(t, 0.1, py, 1e-12)
	assert.InDelta(t, 0.1, pz, 1e-12)

	bf, err := channel.NewBitFlip(0.25)
	require.NoError(t, err)
	px, py, pz = bf.Probabilities()
	assert.Equal(t, 0.25, px)
	assert.Zero(t, py)
	assert.Zero(t, pz)

	// Amplitude damping: pX = pY = γ/4, pZ = (2-γ-2√(1-γ))/4, which is
	// O(γ²) and so tiny at small γ.
	amp, err := channel.NewAmplitudeDamping(0.2)
	require.NoError(t, err)
	px, py, pz = amp.Probabilities()
	assert.InDelta(t, 0.05, px, 1e-12)
	assert.InDelta(t, 0.05, py, 1e-12)
	assert.InDelta(t, (2-0.2-2*math.Sqrt(0.8))/4, pz, 1e-12)
	assert.Less(t, pz, px, "phase part stays subleading at small gamma")

	// Phase damping is a pure Z flip.
	pd, err := channel.NewPhaseDamping(1)
	require.NoError(t, err)
	px, py, pz = pd.Probabilities()
	assert.Zero(t, px)
	assert.Zero(t, py)
	assert.InDelta(t, 0.5, pz, 1e-12, "full dephasing is a fair Z coin")
}

// TestThermalRelaxation_Limits verifies the degenerate limits: zero gate
// time is noiseless and T2 = 2·T1 adds no dephasing beyond the T1 twirl.
func TestThermalRelaxation_Limits(t *testing.T) {
	noiseless, err := channel.NewThermalRelaxation(50, 70, 0)
	require.NoError(t, err)
	assert.Zero(t, noiseless.FlipProbability(), "zero duration leaves the state alone")

	pureT1, err := channel.NewThermalRelaxation(50, 100, 0.5)
	require.NoError(t, err)
	amp, err := channel.NewAmplitudeDamping(1 - math.Exp(-0.5/50))
	require.NoError(t, err)
	_, _, pzThermal := pureT1.Probabilities()
	_, _, pzAmp := amp.Probabilities()
	assert.InDelta(t, pzAmp, pzThermal, 1e-12, "T2 = 2·T1 reduces to the amplitude twirl")
}

// TestSample_Deterministic verifies sampling is reproducible for a fixed
// seed and empirically matches the channel probabilities.
func TestSample_Deterministic(t *testing.T) {
	m, err := channel.NewCustomPauli(0.2, 0.1, 0.3)
	require.NoError(t, err)

	draw := func() map[pauli.Symbol]int {
		rng := rand.New(rand.NewSource(42))
		counts := make(map[pauli.Symbol]int)
		for i := 0; i < 20000; i++ {
			counts[m.Sample(rng)]++
		}

		return counts
	}

	first, second := draw(), draw()
	assert.Equal(t, first, second, "same seed must reproduce the same stream")

	total := 20000.0
	assert.InDelta(t, 0.2, float64(first[pauli.X])/total, 0.02, "X rate")
	assert.InDelta(t, 0.1, float64(first[pauli.Y])/total, 0.02, "Y rate")
	assert.InDelta(t, 0.3, float64(first[pauli.Z])/total, 0.02, "Z rate")
	assert.InDelta(t, 0.4, float64(first[pauli.I])/total, 0.02, "identity rate")
}

// TestSample_ZeroChannel verifies the zero value never flips anything.
func TestSample_ZeroChannel(t *testing.T) {
	var m channel.Model
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Equal(t, pauli.I, m.Sample(rng))
	}
}

// TestParseKind_RoundTrip checks every catalogue spelling parses back to
// its kind and unknown names fail.
func TestParseKind_RoundTrip(t *testing.T) {
	for _, name := range channel.Names() {
		k, err := channel.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, k.String())
	}

	_, err := channel.ParseKind("coherent")
	assert.ErrorIs(t, err, channel.ErrUnknownChannel)
}

// TestParseYAML_BuildsModel decodes a thermal relaxation noise file.
func TestParseYAML_BuildsModel(t *testing.T) {
	doc := []byte("channel: thermal-relaxation\nt1: 50.0\nt2: 70.0\ngate_time: 0.1\n")
	m, err := channel.ParseYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, channel.ThermalRelaxation, m.Kind())
	assert.Greater(t, m.FlipProbability(), 0.0)
}

// TestParseYAML_RejectsUnknownFields verifies strict decoding.
func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	doc := []byte("channel: depolarizing\nprob: 0.1\n")
	_, err := channel.ParseYAML(doc)
	assert.Error(t, err, "unknown field 'prob' must be rejected")
}

// TestParseYAML_UnknownChannel verifies the sentinel surfaces through config.
func TestParseYAML_UnknownChannel(t *testing.T) {
	doc := []byte("channel: kraus\n")
	_, err := channel.ParseYAML(doc)
	assert.ErrorIs(t, err, channel.ErrUnknownChannel)
}
