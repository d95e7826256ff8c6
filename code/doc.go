// Package code catalogues quantum error-correcting codes as pure data.
//
// 🚀 What is a stabilizer code?
//
//	A stabilizer code stores k logical qubits inside n physical ones and
//	watches for errors by measuring a fixed set of commuting Pauli
//	operators, the checks. An error flips exactly the checks it
//	anticommutes with; the resulting bit vector is the syndrome and is
//	all a decoder ever sees.
//
// ✨ Built-in families:
//   - bitflip / phaseflip — three-qubit repetition warm-ups
//   - shor — [[9,1,3]], the original concatenated construction
//   - fivequbit — [[5,1,3]], the perfect code
//   - steane — [[7,1,3]], CSS from the Hamming [7,4] checks
//   - baconshor — [[9,1,3]] subsystem code with weight-2 gauge checks
//   - surface — rotated planar code of any odd distance d ≥ 3
//   - toric — periodic code of any size L ≥ 2 with two logical qubits
//
// ⚙️ Usage:
//
//	c, err := code.ByName("steane", code.Params{})
//	if err != nil { ... }
//	syn, _ := c.SyndromeOf(someError)
//
// Codes carry no behaviour beyond syndrome arithmetic: decoders, error
// channels and simulators all consume the same Check/Stabilizer data.
// Validate enforces every structural invariant (commutation, logical
// pairing, GF(2) ranks) and wraps ErrInvalidCodeSpec on any violation,
// so hand-built codes can be vetted before use.
//
// Determinism: constructors emit checks and logicals in a fixed documented
// order, and nothing in this package reads global state.
package code
