// Public domain.

// Package fit runs orbit estimation over a trajectory set.  It owns
// scheduling, randomness and result aggregation; the numerical Gauss
// solver itself is behind the Solver interface.
package fit

import (
	"hash/fnv"
	"log/slog"
	"runtime"
	"sync"
	"time"

	xrand "golang.org/x/exp/rand"

	"orbdet/elements"
	"orbdet/environ"
	"orbdet/obs"
	"orbdet/traj"
)

// Params tunes a solver run.
type Params struct {
	// NoiseRealizations is the number of noisy copies of each
	// trajectory the solver draws when searching for a preliminary
	// orbit.  Zero means solve on the raw observations only.
	NoiseRealizations int

	// NoiseScale multiplies the per-observation uncertainties when
	// drawing noisy realizations.
	NoiseScale float64

	// MaxObsForTriplets caps how many observations of a trajectory
	// are considered when forming triplets.
	MaxObsForTriplets int

	// MaxTriplets caps how many candidate triplets are evaluated per
	// trajectory.
	MaxTriplets int

	// Parallel runs trajectories concurrently on Workers goroutines,
	// GOMAXPROCS if Workers is zero.  Results are identical either
	// way for a given seed.
	Parallel bool
	Workers  int
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		NoiseRealizations: 10,
		NoiseScale:        1,
		MaxObsForTriplets: 12,
		MaxTriplets:       30,
	}
}

// Solver finds a preliminary orbit for a single trajectory.  It returns
// the best result found with its residual RMS in arc seconds, or an
// error describing why no orbit could be determined.  Solve must be
// safe for concurrent use from multiple goroutines and must draw all
// randomness from rnd.
type Solver interface {
	Solve(t *traj.Trajectory, env *environ.Environment, rnd *xrand.Rand,
		p Params) (elements.GaussResult, float64, error)
}

// Outcome is the per-trajectory result of an estimation run.  Err nil
// means Gauss and RMS are valid.
type Outcome struct {
	Gauss elements.GaussResult
	RMS   float64
	Err   error
}

// FullOrbitResult maps each processed trajectory to its outcome.
// Trajectories skipped by cancellation have no entry.
type FullOrbitResult map[obs.ObjectID]Outcome

// Successes returns the outcomes with a determined orbit.
func (r FullOrbitResult) Successes() map[obs.ObjectID]Outcome {
	m := map[obs.ObjectID]Outcome{}
	for id, o := range r {
		if o.Err == nil {
			m[id] = o
		}
	}
	return m
}

// Failures returns the per-trajectory errors.
func (r FullOrbitResult) Failures() map[obs.ObjectID]error {
	m := map[obs.ObjectID]error{}
	for id, o := range r {
		if o.Err != nil {
			m[id] = o.Err
		}
	}
	return m
}

// Estimator binds an environment, a solver and tuning parameters for
// repeated runs.
type Estimator struct {
	env    *environ.Environment
	solver Solver
	params Params
	logger *slog.Logger
}

// NewEstimator constructs an estimator.  logger may be nil to disable
// logging.
func NewEstimator(env *environ.Environment, solver Solver, params Params,
	logger *slog.Logger) *Estimator {
	return &Estimator{env: env, solver: solver, params: params, logger: logger}
}

// EstimateAll solves every trajectory in the set and aggregates the
// outcomes.  A failed trajectory is recorded and logged but never
// aborts its siblings.
//
// seed fixes the run's randomness.  Each trajectory gets its own
// generator seeded from the run seed and the object designation, so
// results for a given seed are identical whether the run is parallel
// or sequential and whatever the worker count.  A nil seed draws a run
// seed from the clock.
func (e *Estimator) EstimateAll(ts *traj.TrajectorySet, seed *uint64) FullOrbitResult {
	return e.estimate(ts.All(), runSeed(seed))
}

// EstimateAllWithCancel is EstimateAll with cooperative cancellation.
// cancel is polled once before each trajectory; once it returns true
// the remaining trajectories are skipped and the outcomes accumulated
// so far are returned.  Processing is sequential so that the processed
// set is always a prefix of the set's iteration order.
func (e *Estimator) EstimateAllWithCancel(ts *traj.TrajectorySet, seed *uint64,
	cancel func() bool) FullOrbitResult {
	return e.sequential(ts.All(), runSeed(seed), cancel)
}

func runSeed(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}
	return uint64(time.Now().UnixNano())
}

// trajSeed derives the per-trajectory generator seed from the run seed
// and the object designation.
func trajSeed(master uint64, id obs.ObjectID) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id.String()))
	return master ^ h.Sum64()
}

func (e *Estimator) sequential(all []*traj.Trajectory, master uint64,
	cancel func() bool) FullOrbitResult {
	res := FullOrbitResult{}
	rnd := xrand.New(&xrand.PCGSource{})
	for _, t := range all {
		if cancel != nil && cancel() {
			break
		}
		rnd.Seed(trajSeed(master, t.ID))
		res[t.ID] = e.solveOne(t, rnd)
	}
	return res
}

func (e *Estimator) estimate(all []*traj.Trajectory, master uint64) FullOrbitResult {
	if !e.params.Parallel {
		return e.sequential(all, master, nil)
	}

	workers := e.params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	type keyed struct {
		id obs.ObjectID
		o  Outcome
	}
	jobs := make(chan *traj.Trajectory)
	results := make(chan keyed)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rnd := xrand.New(&xrand.PCGSource{})
			for t := range jobs {
				rnd.Seed(trajSeed(master, t.ID))
				results <- keyed{t.ID, e.solveOne(t, rnd)}
			}
		}()
	}
	go func() {
		for _, t := range all {
			jobs <- t
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()
	res := FullOrbitResult{}
	for k := range results {
		res[k.id] = k.o
	}
	return res
}

func (e *Estimator) solveOne(t *traj.Trajectory, rnd *xrand.Rand) Outcome {
	g, rms, err := e.solver.Solve(t, e.env, rnd, e.params)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("orbit estimation failed",
				"object", t.ID.String(),
				"observations", len(t.Obs),
				"error", err)
		}
		return Outcome{Err: err}
	}
	return Outcome{Gauss: g, RMS: rms}
}
