package protocol

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/decoder"
	"github.com/katalvlaran/qec/pauli"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner owns the shared, read-only pieces of one experiment: the code,
// its decoder, the backend, and normalized options. Construction does all
// the expensive work (the decoder's table or graph template); Run only
// allocates per-shot transients, so one Runner serves any number of runs.
type Runner struct {
	c    *code.Code
	dec  decoder.Decoder
	be   backend.Backend
	opts Options
	log  *zap.Logger
}

// NewRunner wires an explicitly constructed decoder and backend into a
// runner. Options are validated and defaulted here, never mutated later.
// Returns ErrNilCode, ErrNilDecoder, ErrNilBackend, ErrDecoderMismatch,
// ErrShots or ErrInvalidLogicalValue on bad configuration.
func NewRunner(c *code.Code, dec decoder.Decoder, be backend.Backend, opts Options) (*Runner, error) {
	switch {
	case c == nil:
		return nil, ErrNilCode
	case dec == nil:
		return nil, ErrNilDecoder
	case be == nil:
		return nil, ErrNilBackend
	case dec.Code().Name != c.Name:
		return nil, fmt.Errorf("%w: decoder for %s, runner for %s", ErrDecoderMismatch, dec.Code().Name, c.Name)
	}
	if opts.Shots < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrShots, opts.Shots)
	}
	if opts.Shots == 0 {
		opts.Shots = DefaultShots
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Input == nil {
		opts.Input = make([]int, c.K)
	}
	if len(opts.Input) != c.K {
		return nil, fmt.Errorf("%w: got %d values for %d logical qubits", ErrInvalidLogicalValue, len(opts.Input), c.K)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{c: c, dec: dec, be: be, opts: opts, log: log}, nil
}

// New builds a runner with the code's stock decoder and a noiseless
// frame simulator, the configuration every command-line run uses.
func New(c *code.Code, opts Options) (*Runner, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	dec, err := decoder.New(c)
	if err != nil {
		return nil, err
	}
	sim, err := backend.NewFrameSimulator(backend.WithSeed(normalizeSeed(opts.Seed)))
	if err != nil {
		return nil, err
	}

	return NewRunner(c, dec, sim, opts)
}

// Run executes the full encode→inject→extract→decode→verify loop and
// aggregates the outcome statistics. With no noise model the injected
// error is fixed, so one backend measurement covers every shot; with a
// noise model each shot samples its own error and the shots fan out
// across the worker pool.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	id := uuid.New()
	log := r.log.With(zap.String("run_id", id.String()), zap.String("code", r.c.Name))

	var (
		res *Result
		err error
	)
	if r.opts.Noise == nil {
		res, err = r.runDeterministic(ctx, log)
	} else {
		res, err = r.runChannel(ctx, log)
	}
	if err != nil {
		return nil, err
	}
	res.RunID = id
	res.Code = r.c.Name
	res.Input = append([]int(nil), r.opts.Input...)
	res.Shots = r.opts.Shots
	res.LogicalErrors = res.Shots - res.Successes
	res.SuccessRate = float64(res.Successes) / float64(res.Shots)
	log.Info("run complete",
		zap.Int("shots", res.Shots),
		zap.Int("successes", res.Successes),
		zap.Int("logical_errors", res.LogicalErrors),
		zap.Float64("success_rate", res.SuccessRate))

	return res, nil
}

// runDeterministic measures the fixed error pattern once across all shots
// and decodes the dominant syndrome.
func (r *Runner) runDeterministic(ctx context.Context, log *zap.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	errOp, err := pauli.Identity(r.c.N)
	if err != nil {
		return nil, err
	}
	if r.opts.Fault != nil {
		if errOp, err = SingleFault(r.c, *r.opts.Fault); err != nil {
			return nil, err
		}
	}
	counts, err := r.measure(errOp, r.opts.Shots)
	if err != nil {
		return nil, err
	}
	synHist, err := SyndromeHistogram(r.c, counts)
	if err != nil {
		return nil, err
	}
	dominant, err := DominantSyndrome(synHist)
	if err != nil {
		return nil, err
	}
	corr, err := r.dec.Decode(dominant)
	if err != nil {
		return nil, err
	}
	outcome, err := Verify(r.c, errOp, corr)
	if err != nil {
		return nil, err
	}
	log.Debug("deterministic decode",
		zap.String("error", errOp.String()),
		zap.String("syndrome", dominant.Key()),
		zap.String("correction", corr.String()),
		zap.Stringer("outcome", outcome))
	successes, err := r.countSuccesses(counts, corr)
	if err != nil {
		return nil, err
	}

	return &Result{Successes: successes, Histogram: counts, Syndromes: synHist}, nil
}

// runChannel samples an independent error per shot and decodes each shot
// on its own, fanning the shots out across the worker pool. Per-shot RNG
// streams derive from the run seed and the shot index, so results do not
// depend on the worker count; partial histograms merge by addition.
func (r *Runner) runChannel(ctx context.Context, log *zap.Logger) (*Result, error) {
	type partial struct {
		successes int
		hist      backend.Counts
		syn       map[string]int
	}
	workers := r.opts.Workers
	if workers > r.opts.Shots {
		workers = r.opts.Shots
	}
	parts := make([]partial, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			p := &parts[w]
			p.hist = make(backend.Counts)
			p.syn = make(map[string]int)
			for shot := w; shot < r.opts.Shots; shot += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, err := r.runShot(shot, p.hist, p.syn)
				if err != nil {
					return err
				}
				if ok {
					p.successes++
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	res := &Result{Histogram: make(backend.Counts), Syndromes: make(map[string]int)}
	for _, p := range parts {
		res.Successes += p.successes
		res.Histogram.Merge(p.hist)
		for k, n := range p.syn {
			res.Syndromes[k] += n
		}
	}
	log.Debug("channel run merged",
		zap.Int("workers", workers),
		zap.Int("syndromes", len(res.Syndromes)))

	return res, nil
}

// runShot executes one sampled trial and reports logical recovery.
func (r *Runner) runShot(shot int, hist backend.Counts, synHist map[string]int) (bool, error) {
	rng := shotRNG(r.opts.Seed, shot)
	errOp, err := SampleChannel(r.c, *r.opts.Noise, r.opts.NoiseTarget, rng)
	if err != nil {
		return false, err
	}
	counts, err := r.measure(errOp, 1)
	if err != nil {
		return false, err
	}
	hist.Merge(counts)
	shotSyn, err := SyndromeHistogram(r.c, counts)
	if err != nil {
		return false, err
	}
	dominant, err := DominantSyndrome(shotSyn)
	if err != nil {
		return false, err
	}
	synHist[dominant.Key()]++
	corr, err := r.dec.Decode(dominant)
	if err != nil {
		return false, err
	}
	successes, err := r.countSuccesses(counts, corr)
	if err != nil {
		return false, err
	}

	return successes == 1, nil
}

// measure runs the backend once: prepare, encode, inject, declare checks,
// measure.
func (r *Runner) measure(errOp pauli.Operator, shots int) (backend.Counts, error) {
	seq, err := Encode(r.c, r.opts.Input)
	if err != nil {
		return nil, err
	}
	if !errOp.IsIdentity() {
		seq.ApplyPauli(errOp)
	}
	seq.MeasureChecks(checkOperators(r.c))
	reg, err := r.be.Prepare(r.c.N)
	if err != nil {
		return nil, err
	}
	if reg, err = r.be.Apply(reg, seq); err != nil {
		return nil, err
	}

	return r.be.Measure(reg, shots)
}

// countSuccesses applies the correction to every outcome's data bits and
// counts the shots whose logical readout matches the input.
func (r *Runner) countSuccesses(counts backend.Counts, corr pauli.Operator) (int, error) {
	successes := 0
	for key, n := range counts {
		data, _, err := backend.ParseOutcome(key)
		if err != nil {
			return 0, err
		}
		vals, err := CorrectedValues(r.c, data, corr)
		if err != nil {
			return 0, err
		}
		if equalInts(vals, r.opts.Input) {
			successes += n
		}
	}

	return successes, nil
}

// checkOperators extracts the measured check operators in syndrome order.
func checkOperators(c *code.Code) []pauli.Operator {
	ops := make([]pauli.Operator, len(c.Checks))
	for i, chk := range c.Checks {
		ops[i] = chk.Op
	}

	return ops
}

// equalInts compares two int slices element-wise.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
