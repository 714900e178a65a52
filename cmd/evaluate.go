package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aerolens/flighteval/internal/compare"
	"github.com/aerolens/flighteval/internal/cost"
	"github.com/aerolens/flighteval/internal/dataset"
	"github.com/aerolens/flighteval/internal/model"
	"github.com/aerolens/flighteval/internal/provider"
	"github.com/aerolens/flighteval/internal/runner"
	"github.com/aerolens/flighteval/internal/score"
	"github.com/aerolens/flighteval/pkg/anthropic"
)

var (
	evalDataset     string
	evalLimit       int
	evalConcurrency int
	evalFixtures    string
	evalNoSave      bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a ground-truth dataset against the extraction provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		path := evalDataset
		if path == "" {
			path = cfg.Dataset.Path
		}
		cases, err := dataset.Load(path, cfg.Dataset.Format)
		if err != nil {
			return eris.Wrap(err, "load dataset")
		}
		if evalLimit > 0 && len(cases) > evalLimit {
			cases = cases[:evalLimit]
		}

		prov, err := buildProvider()
		if err != nil {
			return err
		}
		defer logSpend(prov)

		cmp, err := compare.New(cfg.Scoring)
		if err != nil {
			return eris.Wrap(err, "scoring config")
		}
		scorer := score.New(cmp, cfg.Scoring)

		concurrency := evalConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Runner.Concurrency
		}

		var runID string
		if !evalNoSave {
			st, err := openStore(ctx)
			if err != nil {
				return eris.Wrap(err, "open store")
			}
			defer st.Close() //nolint:errcheck

			run, err := st.CreateRun(ctx, path, prov.Name())
			if err != nil {
				return eris.Wrap(err, "create run")
			}
			runID = run.ID

			result, runErr := runner.New(prov, cmp, scorer, concurrency).Run(ctx, cases)
			if runErr != nil {
				if failErr := st.FailRun(ctx, runID, runErr.Error()); failErr != nil {
					zap.L().Warn("failed to mark run failed", zap.Error(failErr))
				}
				return eris.Wrap(runErr, "evaluate")
			}
			if err := st.CompleteRun(ctx, runID, result); err != nil {
				return eris.Wrap(err, "save run result")
			}

			fmt.Printf("run %s\n\n%s", runID, renderResult(result))
			return nil
		}

		result, err := runner.New(prov, cmp, scorer, concurrency).Run(ctx, cases)
		if err != nil {
			return eris.Wrap(err, "evaluate")
		}
		fmt.Print(renderResult(result))
		return nil
	},
}

// buildProvider selects the extraction provider: pre-recorded fixtures when
// --fixtures is set, the Anthropic-backed provider otherwise.
func buildProvider() (provider.Provider, error) {
	if evalFixtures != "" {
		records, err := loadFixtures(evalFixtures)
		if err != nil {
			return nil, eris.Wrap(err, "load fixtures")
		}
		return provider.NewStatic(records), nil
	}

	if cfg.Anthropic.Key == "" {
		return nil, eris.New("anthropic.key is not configured; set FLIGHTEVAL_ANTHROPIC_KEY or pass --fixtures")
	}
	return provider.NewAnthropic(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic), nil
}

func init() {
	evaluateCmd.Flags().StringVar(&evalDataset, "dataset", "", "dataset path (defaults to config)")
	evaluateCmd.Flags().IntVar(&evalLimit, "limit", 0, "max number of cases to evaluate")
	evaluateCmd.Flags().IntVar(&evalConcurrency, "concurrency", 0, "parallel extraction calls (defaults to config)")
	evaluateCmd.Flags().StringVar(&evalFixtures, "fixtures", "", "score pre-recorded extractions from this YAML file instead of calling the provider")
	evaluateCmd.Flags().BoolVar(&evalNoSave, "no-save", false, "print the report without persisting the run")
	rootCmd.AddCommand(evaluateCmd)
}

// loadFixtures reads a query-to-extraction map for offline scoring.
func loadFixtures(path string) (map[string]*model.FlightRecord, error) {
	return dataset.LoadFixtures(path)
}

// logSpend reports the run's API cost from cumulative token usage.
func logSpend(prov provider.Provider) {
	a, ok := prov.(*provider.Anthropic)
	if !ok {
		return
	}
	u := a.Usage()
	if u.InputTokens == 0 && u.OutputTokens == 0 {
		return
	}
	spend := cost.NewCalculator(cost.DefaultRates()).Claude(cfg.Anthropic.Model, u.InputTokens, u.OutputTokens)
	zap.L().Info("extraction spend",
		zap.Int64("input_tokens", u.InputTokens),
		zap.Int64("output_tokens", u.OutputTokens),
		zap.Float64("usd", spend),
	)
}
