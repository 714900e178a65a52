// Package runner drives a full evaluation: it fans extraction calls out over
// a dataset, assembles per-case comparisons and flags, and reduces the batch
// into a run result once every case has completed.
package runner

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aerolens/flighteval/internal/compare"
	"github.com/aerolens/flighteval/internal/model"
	"github.com/aerolens/flighteval/internal/provider"
	"github.com/aerolens/flighteval/internal/score"
)

// Runner evaluates datasets against an extraction provider.
type Runner struct {
	provider    provider.Provider
	cmp         *compare.Comparator
	scorer      *score.Scorer
	concurrency int
}

// New creates a Runner. Concurrency below 1 is clamped to 1.
func New(p provider.Provider, cmp *compare.Comparator, scorer *score.Scorer, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{provider: p, cmp: cmp, scorer: scorer, concurrency: concurrency}
}

// Run evaluates every test case and returns the aggregated result. Cases
// are evaluated concurrently; a failed extraction scores as an empty record
// rather than aborting the batch. Aggregation starts only after the last
// case finishes, and result ordering follows the dataset.
func (r *Runner) Run(ctx context.Context, cases []model.TestCase) (*model.RunResult, error) {
	if len(cases) == 0 {
		return nil, eris.New("runner: dataset is empty")
	}

	zap.L().Info("runner: evaluating dataset",
		zap.Int("cases", len(cases)),
		zap.Int("concurrency", r.concurrency),
		zap.String("provider", r.provider.Name()),
	)

	evaluated := make([]model.EvaluationCase, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, tc := range cases {
		g.Go(func() error {
			evaluated[i] = r.evaluate(gctx, tc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "runner: evaluate cases")
	}

	result := r.scorer.Report(evaluated)

	zap.L().Info("runner: evaluation complete",
		zap.Int("cases", result.Summary.Cases),
		zap.Int("perfect", result.Summary.PerfectMatches),
		zap.Float64("overall", result.Overall),
	)
	return result, nil
}

// evaluate runs one case end to end: extract, compare, flag.
func (r *Runner) evaluate(ctx context.Context, tc model.TestCase) model.EvaluationCase {
	log := zap.L().With(zap.String("query", tc.Query))

	start := time.Now()
	extracted, err := r.provider.Extract(ctx, tc.Query)
	elapsed := time.Since(start)

	ec := model.EvaluationCase{
		Query:   tc.Query,
		Truth:   tc.Truth,
		Elapsed: elapsed,
	}
	if err != nil {
		// An unreachable provider scores like an extraction that found
		// nothing; the failure is preserved on the case for triage.
		log.Warn("runner: extraction failed", zap.Error(err))
		ec.Error = err.Error()
	} else {
		extracted.Normalize()
		ec.Extracted = extracted
	}

	ec.Comparisons = r.cmp.CompareRecord(ec.Extracted, &ec.Truth)
	ec.Flags = r.scorer.Flags(&ec)

	log.Debug("runner: case evaluated",
		zap.Duration("elapsed", elapsed),
		zap.Int("flags", len(ec.Flags)),
	)
	return ec
}
