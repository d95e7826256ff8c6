package code

import "fmt"

// Entry describes one catalogued code family: its registry name, a one-line
// summary, and a constructor closed over Params.
type Entry struct {
	// Name is the registry key used by ByName and the command line.
	Name string
	// Description is the catalogue one-liner.
	Description string
	// New builds the family member selected by p.
	New func(p Params) (*Code, error)
}

// registry lists every built-in family in presentation order: the two
// warm-up repetition codes, the four small block codes, then the two
// topological families.
var registry = []Entry{
	{
		Name:        "bitflip",
		Description: "three-qubit repetition code correcting a single bit flip",
		New:         func(Params) (*Code, error) { return BitFlip(), nil },
	},
	{
		Name:        "phaseflip",
		Description: "three-qubit repetition code correcting a single phase flip",
		New:         func(Params) (*Code, error) { return PhaseFlip(), nil },
	},
	{
		Name:        "shor",
		Description: "nine-qubit Shor code correcting any single-qubit error",
		New:         func(Params) (*Code, error) { return Shor(), nil },
	},
	{
		Name:        "fivequbit",
		Description: "five-qubit perfect code, the smallest correcting any single-qubit error",
		New:         func(Params) (*Code, error) { return FiveQubit(), nil },
	},
	{
		Name:        "steane",
		Description: "seven-qubit Steane code built from the [7,4] Hamming checks",
		New:         func(Params) (*Code, error) { return Steane(), nil },
	},
	{
		Name:        "baconshor",
		Description: "nine-qubit Bacon-Shor subsystem code with weight-2 gauge checks",
		New:         func(Params) (*Code, error) { return BaconShor(), nil },
	},
	{
		Name:        "surface",
		Description: "rotated planar surface code of odd distance d on a d×d grid",
		New:         func(p Params) (*Code, error) { return Surface(p.distance()) },
	},
	{
		Name:        "toric",
		Description: "toric code on an L×L periodic lattice with two logical qubits",
		New:         func(p Params) (*Code, error) { return Toric(p.lattice()) },
	},
}

// distance resolves the surface distance, defaulting when unset.
func (p Params) distance() int {
	if p.Distance == 0 {
		return DefaultSurfaceDistance
	}

	return p.Distance
}

// lattice resolves the toric lattice size, defaulting when unset.
func (p Params) lattice() int {
	if p.Lattice == 0 {
		return DefaultToricSize
	}

	return p.Lattice
}

// Names returns the registry keys in presentation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}

	return names
}

// Catalog returns a copy of the registry entries in presentation order.
func Catalog() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)

	return out
}

// ByName builds the named code with the given parameters.
// Returns ErrUnknownCode for a name outside the catalogue and passes
// through any construction error.
func ByName(name string, p Params) (*Code, error) {
	for _, e := range registry {
		if e.Name == name {
			return e.New(p)
		}
	}

	return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownCode, name, Names())
}
