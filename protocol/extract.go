package protocol

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/decoder"
)

// SyndromeHistogram folds the raw backend outcome keys into the
// decoder-facing syndrome histogram: each outcome's syndrome group is
// parsed, gauge-folded per the code, and totalled under its bit-string
// key. No quantum state is consulted; this is pure classical decoding of
// what the backend measured.
func SyndromeHistogram(c *code.Code, counts backend.Counts) (map[string]int, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	hist := make(map[string]int, len(counts))
	for key, n := range counts {
		_, raw, err := backend.ParseOutcome(key)
		if err != nil {
			return nil, err
		}
		if len(raw) != len(c.Checks) {
			return nil, fmt.Errorf("%w: outcome %q carries %d syndrome bits for %d checks", backend.ErrMalformedOutcome, key, len(raw), len(c.Checks))
		}
		syn := decoder.Syndrome(c.FoldSyndrome(raw))
		hist[syn.Key()] += n
	}

	return hist, nil
}

// DominantSyndrome picks the most frequent syndrome out of a histogram,
// ties broken by key ascending so extraction is deterministic. For a
// deterministic fault every shot agrees and the pick is exact; under
// sampling noise it is the majority estimate.
// Returns ErrEmptyCounts for an empty histogram.
func DominantSyndrome(hist map[string]int) (decoder.Syndrome, error) {
	if len(hist) == 0 {
		return nil, ErrEmptyCounts
	}
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if hist[keys[i]] != hist[keys[j]] {
			return hist[keys[i]] > hist[keys[j]]
		}

		return keys[i] < keys[j]
	})

	return parseSyndrome(keys[0])
}

// parseSyndrome inverts Syndrome.Key.
func parseSyndrome(key string) (decoder.Syndrome, error) {
	syn := make(decoder.Syndrome, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '0':
		case '1':
			syn[i] = 1
		default:
			return nil, fmt.Errorf("%w: syndrome key %q", backend.ErrMalformedOutcome, key)
		}
	}

	return syn, nil
}
