package channel

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-facing description of a noise channel. Only the
// fields relevant to the chosen kind are read; Build reports which ones.
//
//	channel: thermal-relaxation
//	t1: 50.0
//	t2: 70.0
//	gate_time: 0.1
type Config struct {
	// Channel selects the kind by its CLI spelling.
	Channel string `yaml:"channel"`
	// P is the flip probability for the simple flip channels.
	P float64 `yaml:"p"`
	// Gamma is the damping rate for the damping channels.
	Gamma float64 `yaml:"gamma"`
	// T1, T2 and GateTime parameterize thermal relaxation, in shared units.
	T1       float64 `yaml:"t1"`
	T2       float64 `yaml:"t2"`
	GateTime float64 `yaml:"gate_time"`
	// PX, PY, PZ parameterize the custom Pauli channel.
	PX float64 `yaml:"px"`
	PY float64 `yaml:"py"`
	PZ float64 `yaml:"pz"`
}

// Build validates the configuration and constructs its Model.
// Returns ErrUnknownChannel for an unknown kind and passes through
// constructor validation errors.
func (c Config) Build() (Model, error) {
	kind, err := ParseKind(c.Channel)
	if err != nil {
		return Model{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownChannel, c.Channel, Names())
	}
	switch kind {
	case Depolarizing:
		return NewDepolarizing(c.P)
	case BitFlip:
		return NewBitFlip(c.P)
	case PhaseFlip:
		return NewPhaseFlip(c.P)
	case BitPhaseFlip:
		return NewBitPhaseFlip(c.P)
	case AmplitudeDamping:
		return NewAmplitudeDamping(c.Gamma)
	case PhaseDamping:
		return NewPhaseDamping(c.Gamma)
	case ThermalRelaxation:
		return NewThermalRelaxation(c.T1, c.T2, c.GateTime)
	default:
		return NewCustomPauli(c.PX, c.PY, c.PZ)
	}
}

// ParseYAML decodes a strict YAML document into a Model. Unknown fields
// are rejected so that typos in noise files fail loudly.
func ParseYAML(data []byte) (Model, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Model{}, fmt.Errorf("channel: decode noise config: %w", err)
	}

	return cfg.Build()
}
